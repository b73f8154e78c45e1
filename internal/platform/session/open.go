// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/cmsadmin/internal/platform/config"
	redisstore "github.com/taibuivan/cmsadmin/internal/platform/redis"
)

// Open builds the store selected by cfg.TokenStore.
//
// The returned closer releases backend resources (the Redis pool) and is
// always safe to call.
func Open(context context.Context, cfg *config.Config, logger *slog.Logger) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.TokenStore {
	case config.StoreMemory:
		return NewMemoryStore(""), noop, nil

	case config.StoreFile:
		logger.Debug("session_store_selected", slog.String("backend", "file"), slog.String("path", cfg.TokenFile))
		return NewFileStore(cfg.TokenFile), noop, nil

	case config.StoreRedis:
		client, err := redisstore.NewClient(context, cfg.RedisURL, logger)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisStore(client, ""), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("session: unknown token store %q", cfg.TokenStore)
	}
}
