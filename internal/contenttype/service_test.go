// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/contenttype"
	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
)

func newService(t *testing.T) (*cmstest.Backend, *contenttype.Service) {
	t.Helper()
	backend := cmstest.New(t)
	repo := contenttype.NewAPIRepository(backend.Client())
	return backend, contenttype.NewService(repo, cmstest.Logger())
}

func TestService_ListAndGet(t *testing.T) {
	backend, service := newService(t)
	id := backend.SeedContentType("Blog Post", "blog-post",
		cmstest.ContentField{Name: "title", Kind: "text"},
		cmstest.ContentField{Name: "body", Kind: "wysiwyg", Options: json.RawMessage(`{"rows":8}`)},
	)
	backend.SeedContentType("Page", "page")

	list, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "blog-post", list[0].Slug)
	assert.Equal(t, "page", list[1].Slug)
	assert.NotNil(t, list[1].Fields)

	got, err := service.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "title", got.Fields[0].Name)
	assert.Equal(t, float64(8), got.Fields[1].Options["rows"])
}

/*
TestService_Get_NotFound verifies the backend's error text reaches the caller.
*/
func TestService_Get_NotFound(t *testing.T) {
	backend, service := newService(t)
	backend.Stub(http.MethodGet, "/api/content-types/missing", http.StatusNotFound, `{"message":"not found"}`)

	_, err := service.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Create_DerivesSlug(t *testing.T) {
	backend, service := newService(t)

	created, err := service.Create(context.Background(), contenttype.CreateInput{Name: "My Type"})
	require.NoError(t, err)

	assert.Equal(t, "my-type", created.Slug)
	assert.NotNil(t, created.Fields)

	requests := backend.RequestsTo(http.MethodPost, "/api/content-types")
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"name":"My Type","slug":"my-type"}`, string(requests[0].Body))
}

func TestService_Create_Validation(t *testing.T) {
	backend, service := newService(t)

	_, err := service.Create(context.Background(), contenttype.CreateInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
	assert.Empty(t, backend.Requests())
}

/*
TestService_Update_EmptyAcknowledgement verifies a body-less 200 is success
with no snapshot.
*/
func TestService_Update_EmptyAcknowledgement(t *testing.T) {
	backend, service := newService(t)
	id := backend.SeedContentType("Blog", "blog")

	updated, err := service.Update(context.Background(), id, contenttype.UpdateInput{Name: pointer.To("Journal")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	requests := backend.RequestsTo(http.MethodPut, "/api/content-types/"+id)
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"name":"Journal"}`, string(requests[0].Body))

	got, err := service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Journal", got.Name)
	assert.Equal(t, "blog", got.Slug)
}

func TestService_Update_NothingToUpdate(t *testing.T) {
	_, service := newService(t)

	_, err := service.Update(context.Background(), "ct-1", contenttype.UpdateInput{})
	assert.True(t, apperr.IsAppError(err))
}

func TestService_Delete(t *testing.T) {
	backend, service := newService(t)
	id := backend.SeedContentType("Blog", "blog")

	require.NoError(t, service.Delete(context.Background(), id))

	list, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Fields(t *testing.T) {
	backend, service := newService(t)
	id := backend.SeedContentType("Blog", "blog")

	field, err := service.AddField(context.Background(), id, contenttype.FieldInput{Name: " title "})
	require.NoError(t, err)
	assert.Equal(t, "title", field.Name)
	assert.Equal(t, contenttype.KindText, field.Kind)
	assert.Equal(t, id, field.ContentTypeID)

	requests := backend.RequestsTo(http.MethodPost, "/api/content-types/"+id+"/fields")
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"name":"title","kind":"text","options":{}}`, string(requests[0].Body))

	require.NoError(t, service.DeleteField(context.Background(), id, field.ID))
	assert.Empty(t, backend.ContentTypeFields(id))
}

func TestService_AddField_RejectsUnknownKind(t *testing.T) {
	backend, service := newService(t)

	_, err := service.AddField(context.Background(), "ct-1", contenttype.FieldInput{Name: "x", Kind: "select"})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, contenttype.FieldKindName, appErr.Details[0].Field)
	assert.Empty(t, backend.Requests())
}
