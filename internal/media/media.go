// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package media manages uploaded assets: listing, uploading, signed previews
// and deletion.
package media

import (
	"encoding/json"
	"time"
)

// Asset is an uploaded file as stored by the backend.
type Asset struct {
	ID        string          `json:"id"`
	Filename  string          `json:"filename"`
	Mime      string          `json:"mime"`
	SizeBytes int64           `json:"sizeBytes"`
	URL       string          `json:"url"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	CreatedBy *string         `json:"createdBy,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// rawAsset mirrors the backend model, serialized with capitalized keys.
type rawAsset struct {
	ID        string          `json:"ID"`
	Filename  string          `json:"Filename"`
	Mime      string          `json:"Mime"`
	SizeBytes int64           `json:"SizeBytes"`
	URL       string          `json:"URL"`
	Meta      json.RawMessage `json:"Meta"`
	CreatedBy *string         `json:"CreatedBy"`
	CreatedAt time.Time       `json:"CreatedAt"`
}

func mapAsset(raw rawAsset) Asset {
	return Asset(raw)
}

// Uploaded is the backend's answer to an upload. Unlike listings it is not
// wrapped in an envelope and uses lowercase keys.
type Uploaded struct {
	ID       string         `json:"id"`
	Filename string         `json:"filename"`
	URL      string         `json:"url"`
	Meta     map[string]any `json:"meta"`
}

// Preview is a time-limited download link.
type Preview struct {
	URL string `json:"preview_url"`
}

// Global field names for validation
const (
	FieldID       = "id"
	FieldFilename = "filename"
)
