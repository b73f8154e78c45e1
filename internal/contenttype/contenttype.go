// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package contenttype manages content types (named schemas such as "Blog Post")
// and their ordered fields.
//
// # Shapes
//
// The backend serializes its models with capitalized keys ([RawContentType]).
// Everything above the repository works on the domain shape ([ContentType]),
// produced by the mapper in mapper.go.
package contenttype

import "time"

// # Field Kinds

// FieldKind is the data type of a content field.
type FieldKind string

const (
	KindText    FieldKind = "text"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindDate    FieldKind = "date"
	KindMedia   FieldKind = "media"
	KindJSON    FieldKind = "json"
	KindWYSIWYG FieldKind = "wysiwyg"
)

// Kinds lists every field kind in display order.
func Kinds() []FieldKind {
	return []FieldKind{KindText, KindNumber, KindBoolean, KindDate, KindMedia, KindJSON, KindWYSIWYG}
}

// Valid reports whether k is one of [Kinds].
func (k FieldKind) Valid() bool {
	for _, kind := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func kindNames() []string {
	names := make([]string, 0, 7)
	for _, kind := range Kinds() {
		names = append(names, string(kind))
	}
	return names
}

// # Domain Shape

// ContentType is a named schema describing a category of content.
type ContentType struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Fields    []ContentField `json:"fields"`
}

// ContentField is one typed attribute of a [ContentType].
type ContentField struct {
	ID            string         `json:"id"`
	ContentTypeID string         `json:"contentTypeId"`
	Name          string         `json:"name"`
	Kind          FieldKind      `json:"kind"`
	Options       map[string]any `json:"options"`
}

// # Wire Shape

// RawContentType mirrors the backend payload. Only the mapper reads it.
type RawContentType struct {
	ID        string            `json:"ID"`
	Name      string            `json:"Name"`
	Slug      string            `json:"Slug"`
	CreatedAt time.Time         `json:"CreatedAt"`
	UpdatedAt time.Time         `json:"UpdatedAt"`
	Fields    []RawContentField `json:"Fields"`
}

// RawContentField mirrors a backend field payload.
type RawContentField struct {
	ID            string         `json:"ID"`
	ContentTypeID string         `json:"ContentTypeID"`
	Name          string         `json:"Name"`
	Kind          string         `json:"Kind"`
	Options       map[string]any `json:"Options"`
}

// # Inputs

// CreateInput is the payload of a new content type. An empty Slug is derived
// from Name.
type CreateInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UpdateInput changes only the provided attributes.
type UpdateInput struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// FieldInput is the payload of a new field.
type FieldInput struct {
	Name    string         `json:"name"`
	Kind    FieldKind      `json:"kind"`
	Options map[string]any `json:"options"`
}

// Global field names for validation
const (
	FieldName     = "name"
	FieldSlug     = "slug"
	FieldKindName = "kind"
	FieldID       = "field_id"
)
