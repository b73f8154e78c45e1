// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session owns the single piece of persisted client state: the bearer
token stored under the fixed slot name [constants.TokenStorageKey].

Architecture:

  - Store: the contract shared by the API client (read) and the auth service
    (write/clear). It is passed explicitly through constructors; nothing reads
    the token from ambient global state.
  - Backends: in-memory (tests, one-shot scripts), file (default, one JSON
    object on disk), and Redis (shared across machines).

An empty string means "no session". Stores never return an error for an absent
slot; errors are reserved for storage failures.
*/
package session

import (
	"context"
	"strings"
	"sync"
)

// # Contract

// Store persists the bearer token slot.
type Store interface {
	// Token returns the stored token, or "" when the slot is empty or absent.
	Token(context context.Context) (string, error)

	// SetToken replaces the slot content.
	SetToken(context context.Context, token string) error

	// Clear removes the slot. Clearing an empty slot is not an error.
	Clear(context context.Context) error
}

// HasToken reports whether the store holds a non-empty token.
//
// A storage failure is reported as "no session"; the predicate never touches
// the network beyond the store itself.
func HasToken(context context.Context, store Store) bool {
	token, err := store.Token(context)
	return err == nil && strings.TrimSpace(token) != ""
}

// Pinger is implemented by stores that live behind a network connection.
type Pinger interface {
	Ping(context context.Context) error
}

// Check reports whether store is usable. Remote stores are pinged; local ones
// must answer a read.
func Check(context context.Context, store Store) error {
	if pinger, ok := store.(Pinger); ok {
		return pinger.Ping(context)
	}
	_, err := store.Token(context)
	return err
}

// # Memory Backend

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty in-process store, optionally pre-seeded.
func NewMemoryStore(initial string) *MemoryStore {
	return &MemoryStore{token: initial}
}

func (store *MemoryStore) Token(_ context.Context) (string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.token, nil
}

func (store *MemoryStore) SetToken(_ context.Context, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.token = token
	return nil
}

func (store *MemoryStore) Clear(_ context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.token = ""
	return nil
}
