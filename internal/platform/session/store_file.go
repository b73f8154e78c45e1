// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// FileStore keeps the slot in a small JSON object on disk:
//
//	{"cms_token": "<jwt>"}
//
// Writes go through a temporary file and a rename so a crash never leaves a
// truncated session file behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file is created
// lazily on the first SetToken.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the session file.
func (store *FileStore) Path() string {
	return store.path
}

func (store *FileStore) Token(_ context.Context) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	slots, err := store.read()
	if err != nil {
		return "", err
	}
	return slots[constants.TokenStorageKey], nil
}

func (store *FileStore) SetToken(_ context.Context, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	slots, err := store.read()
	if err != nil {
		return err
	}
	slots[constants.TokenStorageKey] = token
	return store.write(slots)
}

func (store *FileStore) Clear(_ context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	slots, err := store.read()
	if err != nil {
		return err
	}
	if _, ok := slots[constants.TokenStorageKey]; !ok {
		return nil
	}
	delete(slots, constants.TokenStorageKey)
	return store.write(slots)
}

// read loads the slot map. A missing file is an empty map.
func (store *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session_file_read_failed: %w", err)
	}

	slots := map[string]string{}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("session_file_corrupt: %w", err)
	}
	return slots, nil
}

// write persists the slot map with owner-only permissions.
func (store *FileStore) write(slots map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("session_file_mkdir_failed: %w", err)
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("session_file_encode_failed: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(store.path), ".session-*")
	if err != nil {
		return fmt.Errorf("session_file_write_failed: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("session_file_write_failed: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("session_file_write_failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session_file_write_failed: %w", err)
	}

	if err := os.Rename(tmpName, store.path); err != nil {
		return fmt.Errorf("session_file_rename_failed: %w", err)
	}
	return nil
}
