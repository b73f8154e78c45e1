// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/config"
)

/*
TestLoad_Defaults verifies the values used when no variable is set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CMS_TOKEN_FILE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", cfg.BaseURL)
	assert.Equal(t, config.StoreFile, cfg.TokenStore)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.False(t, cfg.RateLimited())
	assert.Equal(t, "session.json", filepath.Base(cfg.TokenFile))
}

/*
TestLoad_Overrides verifies that environment variables win over defaults.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CMS_API_BASE_URL", "https://cms.example.com")
	t.Setenv("CMS_TOKEN_STORE", "memory")
	t.Setenv("CMS_TOKEN_FILE", "/tmp/token.json")
	t.Setenv("CMS_REQUEST_TIMEOUT", "3s")
	t.Setenv("CMS_RATE_LIMIT_RPS", "2.5")
	t.Setenv("CMS_OUTPUT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.BaseURL)
	assert.Equal(t, config.StoreMemory, cfg.TokenStore)
	assert.Equal(t, "/tmp/token.json", cfg.TokenFile)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.RateLimited())
	assert.Equal(t, config.OutputJSON, cfg.Output)
}

/*
TestValidate rejects combinations the env tags cannot express.
*/
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"file_store", config.Config{TokenStore: "file", Output: "table"}, false},
		{"redis_without_url", config.Config{TokenStore: "redis", Output: "table"}, true},
		{"redis_with_url", config.Config{TokenStore: "redis", RedisURL: "redis://localhost:6379/0", Output: "json"}, false},
		{"unknown_store", config.Config{TokenStore: "etcd", Output: "table"}, true},
		{"unknown_output", config.Config{TokenStore: "memory", Output: "yaml"}, true},
		{"negative_rate", config.Config{TokenStore: "memory", Output: "table", RateLimitRPS: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
