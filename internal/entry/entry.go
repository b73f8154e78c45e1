// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package entry manages content entries: instances of a content type whose
// data follows the type's fields.
//
// # Versions
//
// The backend records a version each time an entry's data changes, numbered
// from 1. [Service.Rollback] restores the data of an earlier version.
package entry

import (
	"encoding/json"
	"time"
)

// Status is the publication state of an entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func statusNames() []string {
	return []string{string(StatusDraft), string(StatusPublished), string(StatusArchived)}
}

// Entry is one piece of content.
type Entry struct {
	ID            string          `json:"id"`
	ContentTypeID string          `json:"contentTypeId"`
	Slug          string          `json:"slug"`
	Status        Status          `json:"status"`
	Data          json.RawMessage `json:"data"`
	PublishedAt   *time.Time      `json:"publishedAt,omitempty"`
	CreatedBy     *string         `json:"createdBy,omitempty"`
	UpdatedBy     *string         `json:"updatedBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Raw mirrors the backend model, serialized with capitalized keys. It is
// exported for the public package, which reads the same model.
type Raw struct {
	ID            string          `json:"ID"`
	ContentTypeID string          `json:"ContentTypeID"`
	Slug          string          `json:"Slug"`
	Status        Status          `json:"Status"`
	Data          json.RawMessage `json:"Data"`
	PublishedAt   *time.Time      `json:"PublishedAt"`
	CreatedBy     *string         `json:"CreatedBy"`
	UpdatedBy     *string         `json:"UpdatedBy"`
	CreatedAt     time.Time       `json:"CreatedAt"`
	UpdatedAt     time.Time       `json:"UpdatedAt"`
}

// Map converts the wire shape. Missing data becomes an empty object.
func Map(raw Raw) Entry {
	entry := Entry(raw)
	if len(entry.Data) == 0 || string(entry.Data) == "null" {
		entry.Data = json.RawMessage(`{}`)
	}
	return entry
}

// CreateInput is the payload of a new entry. A blank status means draft.
type CreateInput struct {
	Slug   string         `json:"slug"`
	Status Status         `json:"status"`
	Data   map[string]any `json:"data"`
}

// UpdateInput changes only the provided attributes.
type UpdateInput struct {
	Status *Status        `json:"status,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Global field names for validation
const (
	FieldType    = "content_type"
	FieldID      = "id"
	FieldSlug    = "slug"
	FieldStatus  = "status"
	FieldVersion = "version"
)
