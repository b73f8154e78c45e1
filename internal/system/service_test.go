// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package system_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
	"github.com/taibuivan/cmsadmin/internal/system"
)

func TestHealth(t *testing.T) {
	backend := cmstest.New(t)
	service := system.NewService(backend.ClientWith(nil), system.Dependencies{}, cmstest.Logger())

	require.NoError(t, service.Health(context.Background()))
	assert.Len(t, backend.RequestsTo(http.MethodGet, "/healthz"), 1)
}

func TestReadiness(t *testing.T) {
	backend := cmstest.New(t)
	storeErr := errors.New("session file unreadable")
	service := system.NewService(backend.ClientWith(nil), system.Dependencies{
		CheckStore: func(context.Context) error { return storeErr },
	}, cmstest.Logger())

	report := service.Readiness(context.Background())
	assert.False(t, report.Healthy())
	assert.Equal(t, []system.Check{
		{Name: "backend", IsOK: true},
		{Name: "session_store", IsOK: false, Error: "session file unreadable"},
	}, report.Checks)

	backend.Stub(http.MethodGet, "/healthz", http.StatusServiceUnavailable, `{"error":"db down"}`)
	healthy := system.NewService(backend.ClientWith(nil), system.Dependencies{}, cmstest.Logger())
	report = healthy.Readiness(context.Background())
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "db down", report.Checks[0].Error)
}
