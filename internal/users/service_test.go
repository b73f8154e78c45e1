// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
	"github.com/taibuivan/cmsadmin/internal/platform/session"
	"github.com/taibuivan/cmsadmin/internal/users"
)

func newService(t *testing.T) (*cmstest.Backend, *users.Service) {
	t.Helper()
	backend := cmstest.New(t)
	return backend, users.NewService(users.NewAPIRepository(backend.Client()), cmstest.Logger())
}

func TestList(t *testing.T) {
	backend, service := newService(t)
	backend.SeedUser("Editor", "editor@cms.local", "secret1")

	list, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, cmstest.AdminEmail, list[0].Email)
	assert.Equal(t, []string{"Admin"}, list[0].Roles)
	assert.Empty(t, list[1].Roles)
	assert.False(t, list[1].CreatedAt.IsZero())
}

/*
TestSetRoles_ThenRead verifies role assignment round-trips and that the body
carries deduplicated IDs.
*/
func TestSetRoles_ThenRead(t *testing.T) {
	backend, service := newService(t)
	id := backend.SeedUser("Editor", "editor@cms.local", "secret1")

	require.NoError(t, service.SetRoles(context.Background(), id, []int{2, 1, 2}))

	requests := backend.RequestsTo(http.MethodPost, "/api/admin/users/"+id+"/roles")
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"roles":[1,2]}`, string(requests[0].Body))

	roles, err := service.Roles(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []users.Role{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Editor"}}, roles)
}

func TestSetRoles_EmptyRejectedLocally(t *testing.T) {
	backend, service := newService(t)

	err := service.SetRoles(context.Background(), "u1", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
	assert.Empty(t, backend.Requests())
}

func TestRoles_CatalogueAndCreate(t *testing.T) {
	backend, service := newService(t)

	require.NoError(t, service.CreateRole(context.Background(), "  Reviewer "))
	requests := backend.RequestsTo(http.MethodPost, "/api/admin/roles")
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"name":"Reviewer"}`, string(requests[0].Body))

	roles, err := service.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, users.Role{ID: 3, Name: "Reviewer"}, roles[2])
}

func TestList_RequiresToken(t *testing.T) {
	backend := cmstest.New(t)
	service := users.NewService(users.NewAPIRepository(backend.ClientWith(nil)), cmstest.Logger())

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
	assert.Equal(t, "missing token", err.Error())
}

/*
TestList_EditorForbidden verifies the admin routes reject a non-admin token
with a 403 that callers can recognise.
*/
func TestList_EditorForbidden(t *testing.T) {
	backend := cmstest.New(t)
	client := backend.ClientWith(session.NewMemoryStore(backend.TokenFor("editor-1", "Editor")))
	service := users.NewService(users.NewAPIRepository(client), cmstest.Logger())

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
	assert.Equal(t, "forbidden", err.Error())
}
