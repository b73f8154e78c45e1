// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	redisstore "github.com/taibuivan/cmsadmin/internal/platform/redis"
)

// RedisStore keeps the slot under "cmsadmin:session:<namespace>:cms_token".
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store. The namespace separates operator
// profiles sharing one Redis; an empty namespace uses the bare slot name.
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	key := constants.RedisPrefixSession + constants.TokenStorageKey
	if namespace != "" {
		key = constants.RedisPrefixSession + namespace + ":" + constants.TokenStorageKey
	}
	return &RedisStore{client: client, key: key}
}

// Key returns the Redis key of the slot.
func (repository *RedisStore) Key() string {
	return repository.key
}

/*
Token reads the slot.

Returns:
  - string: The token, "" when the key is absent
  - error: Connectivity errors
*/
func (repository *RedisStore) Token(context context.Context) (string, error) {
	token, err := repository.client.Get(context, repository.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return token, nil
}

// SetToken stores the token without expiry; the backend decides when it stops
// being valid.
func (repository *RedisStore) SetToken(context context.Context, token string) error {
	if err := repository.client.Set(context, repository.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisStore) Clear(context context.Context) error {
	if err := repository.client.Del(context, repository.key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

// Ping checks the connection behind the store.
func (repository *RedisStore) Ping(context context.Context) error {
	return redisstore.Ping(context, repository.client)
}
