// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles client-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the API client and token store via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Token Store Backends

const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// # Output Formats

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// # Configuration Schema

// Config holds all runtime configuration for the cmsadmin client.
type Config struct {

	// Backend address; every endpoint path is appended to it.
	BaseURL string `env:"CMS_API_BASE_URL" envDefault:"http://localhost:8081"`

	// Bearer token persistence
	TokenStore string `env:"CMS_TOKEN_STORE" envDefault:"file"`
	TokenFile  string `env:"CMS_TOKEN_FILE"`
	RedisURL   string `env:"CMS_REDIS_URL"`

	// Transport tuning. A zero RateLimitRPS disables client-side throttling.
	RequestTimeout time.Duration `env:"CMS_REQUEST_TIMEOUT" envDefault:"15s"`
	RateLimitRPS   float64       `env:"CMS_RATE_LIMIT_RPS"  envDefault:"0"`
	RateLimitBurst int           `env:"CMS_RATE_LIMIT_BURST" envDefault:"1"`

	// Presentation
	Debug  bool   `env:"CMS_DEBUG"  envDefault:"false"`
	Output string `env:"CMS_OUTPUT" envDefault:"table"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// The token file lives under the operator's home unless overridden.
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: failed to resolve home directory: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".cmsadmin", "session.json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports inconsistent combinations that env tags cannot express.
func (c *Config) Validate() error {
	switch c.TokenStore {
	case StoreFile, StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: CMS_REDIS_URL is required when CMS_TOKEN_STORE=redis")
		}
	default:
		return fmt.Errorf("config: unknown token store %q", c.TokenStore)
	}

	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output)
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config: CMS_RATE_LIMIT_RPS must not be negative")
	}

	return nil
}

// RateLimited reports whether outgoing requests should be throttled.
func (c *Config) RateLimited() bool {
	return c.RateLimitRPS > 0
}
