// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/media"
	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

func newService(t *testing.T) (*cmstest.Backend, *media.Service) {
	t.Helper()
	backend := cmstest.New(t)
	return backend, media.NewService(media.NewAPIRepository(backend.Client()), cmstest.Logger())
}

func TestList_Paginates(t *testing.T) {
	backend, service := newService(t)
	backend.SeedMedia(12)

	assets, meta, err := service.List(context.Background(), pagination.Params{Limit: 5, Offset: 10})
	require.NoError(t, err)

	assert.Len(t, assets, 2)
	assert.Equal(t, "asset-10.png", assets[0].Filename)
	assert.Equal(t, "image/png", assets[0].Mime)
	assert.Equal(t, int64(128), assets[0].SizeBytes)
	assert.Equal(t, pagination.NewMeta(12, 5, 10), meta)
	assert.False(t, meta.HasMore())

	requests := backend.RequestsTo(http.MethodGet, "/api/media")
	require.Len(t, requests, 1)
	assert.Equal(t, "limit=5&offset=10", requests[0].Query)
}

/*
TestUpload_ThenPreviewAndDelete walks an asset through its lifecycle.
*/
func TestUpload_ThenPreviewAndDelete(t *testing.T) {
	backend, service := newService(t)

	uploaded, err := service.Upload(context.Background(), "/home/me/cover.jpg", strings.NewReader("JPEG"))
	require.NoError(t, err)
	assert.Equal(t, "cover.jpg", uploaded.Filename)
	assert.True(t, strings.HasSuffix(uploaded.URL, ".jpg"))
	assert.Equal(t, "upload", uploaded.Meta["source"])

	requests := backend.RequestsTo(http.MethodPost, "/api/media")
	require.Len(t, requests, 1)
	assert.True(t, strings.HasPrefix(requests[0].ContentType, "multipart/form-data"))

	preview, err := service.Preview(context.Background(), uploaded.ID)
	require.NoError(t, err)
	assert.Contains(t, preview.URL, "X-Amz-Expires")

	require.NoError(t, service.Delete(context.Background(), uploaded.ID))

	_, err = service.Preview(context.Background(), uploaded.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpload_Validation(t *testing.T) {
	backend, service := newService(t)

	_, err := service.Upload(context.Background(), "", nil)
	require.Error(t, err)
	assert.Len(t, apperr.As(err).Details, 2)
	assert.Empty(t, backend.Requests())
}

func TestDelete_Missing(t *testing.T) {
	_, service := newService(t)

	err := service.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "media tidak ditemukan", err.Error())
}
