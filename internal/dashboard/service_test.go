// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/dashboard"
	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
)

func TestStats_CountsEachCollection(t *testing.T) {
	backend := cmstest.New(t)
	backend.SeedContentType("Blog", "blog")
	backend.SeedContentType("Page", "page")
	backend.SeedMedia(3)
	backend.SeedUser("Editor", "editor@cms.local", "secret1")

	service := dashboard.NewService(backend.Client(), cmstest.Logger())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{ContentTypes: 2, Media: 3, Users: 2}, stats)

	assert.Len(t, backend.RequestsTo(http.MethodGet, "/api/content-types"), 1)
	assert.Len(t, backend.RequestsTo(http.MethodGet, "/api/media"), 1)
	assert.Len(t, backend.RequestsTo(http.MethodGet, "/api/admin/users"), 1)
}

/*
TestStats_PartialFailure verifies one failing query leaves the others intact.
*/
func TestStats_PartialFailure(t *testing.T) {
	backend := cmstest.New(t)
	backend.SeedContentType("Blog", "blog")
	backend.SeedMedia(2)
	backend.Stub(http.MethodGet, "/api/admin/users", http.StatusForbidden, `{"error":"forbidden"}`)

	service := dashboard.NewService(backend.Client(), cmstest.Logger())

	stats, err := service.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
	assert.ErrorContains(t, err, "dashboard_count_users_failed")
	assert.Equal(t, dashboard.Stats{ContentTypes: 1, Media: 2, Users: 0}, stats)
}

func TestStats_AllFail(t *testing.T) {
	backend := cmstest.New(t)
	for _, path := range []string{"/api/content-types", "/api/media", "/api/admin/users"} {
		backend.Stub(http.MethodGet, path, http.StatusInternalServerError, `oops`)
	}

	service := dashboard.NewService(backend.Client(), cmstest.Logger())

	stats, err := service.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, dashboard.Stats{}, stats)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 3)
}
