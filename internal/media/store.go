// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"io"

	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

type Repository interface {
	List(context context.Context, params pagination.Params) ([]Asset, pagination.Meta, error)
	Upload(context context.Context, filename string, content io.Reader) (*Uploaded, error)
	Preview(context context.Context, id string) (*Preview, error)
	Delete(context context.Context, id string) error
}
