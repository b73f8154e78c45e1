// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import "github.com/taibuivan/cmsadmin/pkg/pagination"

// Envelope is the backend's standard single-payload wrapper: {"data": ...}.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// PageEnvelope is the wrapper of offset-paginated lists.
type PageEnvelope[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Meta returns the pagination block of the envelope.
func (envelope PageEnvelope[T]) Meta() pagination.Meta {
	return pagination.NewMeta(envelope.Total, envelope.Limit, envelope.Offset)
}
