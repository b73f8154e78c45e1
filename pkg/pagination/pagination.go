// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for offset-paginated lists.
//
// # Overview
//
// It standardizes how a window is requested via query parameters ("limit",
// "offset", "sort") and how the metadata returned next to the items is exposed.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit mirrors the backend's page size when none is requested.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
)

// Params holds the requested window.
type Params struct {
	Limit  int
	Offset int
	// Sort is passed through verbatim (e.g. "-published_at"). Empty leaves
	// the backend default.
	Sort string
}

// Normalize clamps invalid or excessive values.
//
// # Clamping
//
// A non-positive limit becomes [DefaultLimit], an excessive one [MaxLimit];
// a negative offset becomes 0.
func (p Params) Normalize() Params {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Values encodes the normalized window as query parameters.
func (p Params) Values() url.Values {
	p = p.Normalize()

	values := url.Values{}
	values.Set("limit", strconv.Itoa(p.Limit))
	values.Set("offset", strconv.Itoa(p.Offset))
	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}
	return values
}

// Meta is the pagination metadata returned next to list items.
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewMeta constructs pagination metadata.
func NewMeta(total, limit, offset int) Meta {
	return Meta{Total: total, Limit: limit, Offset: offset}
}

// HasMore reports whether items exist past the current window.
func (m Meta) HasMore() bool {
	return m.Limit > 0 && m.Offset+m.Limit < m.Total
}

// Next returns the params of the following window.
func (m Meta) Next() Params {
	return Params{Limit: m.Limit, Offset: m.Offset + m.Limit}
}
