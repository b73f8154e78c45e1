// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"context"

	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

// Repository is the remote collection of entries, addressed by content-type slug.
type Repository interface {
	List(context context.Context, typeSlug string, params pagination.Params) ([]Entry, pagination.Meta, error)
	Get(context context.Context, typeSlug, id string) (*Entry, error)
	Create(context context.Context, typeSlug string, input CreateInput) (*Entry, error)
	Update(context context.Context, typeSlug, id string, input UpdateInput) error
	Delete(context context.Context, typeSlug, id string) error
	Publish(context context.Context, typeSlug, id string) error
	Rollback(context context.Context, typeSlug, id string, version int) error
}
