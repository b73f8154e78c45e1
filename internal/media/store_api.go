// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"io"
	"net/url"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
	"github.com/taibuivan/cmsadmin/pkg/slice"
)

// APIRepository implements [Repository] over the backend REST API.
type APIRepository struct {
	api apiclient.Uploader
}

func NewAPIRepository(api apiclient.Uploader) *APIRepository {
	return &APIRepository{api: api}
}

func (repository *APIRepository) List(context context.Context, params pagination.Params) ([]Asset, pagination.Meta, error) {
	var envelope apiclient.PageEnvelope[rawAsset]
	if err := repository.api.Get(context, constants.PathMedia, params.Values(), &envelope); err != nil {
		return nil, pagination.Meta{}, err
	}
	return slice.Map(envelope.Data, mapAsset), envelope.Meta(), nil
}

func (repository *APIRepository) Upload(context context.Context, filename string, content io.Reader) (*Uploaded, error) {
	var uploaded Uploaded
	if err := repository.api.Upload(context, constants.PathMedia, filename, content, &uploaded); err != nil {
		return nil, err
	}
	return &uploaded, nil
}

func (repository *APIRepository) Preview(context context.Context, id string) (*Preview, error) {
	var preview Preview
	if err := repository.api.Get(context, constants.PathMediaPreview+"/"+url.PathEscape(id), nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

func (repository *APIRepository) Delete(context context.Context, id string) error {
	return repository.api.Delete(context, constants.PathMedia+"/"+url.PathEscape(id), nil)
}
