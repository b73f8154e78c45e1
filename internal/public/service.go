// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package public reads published entries through the unauthenticated routes,
// the same view site visitors get.
package public

import (
	"context"
	"net/url"

	"github.com/taibuivan/cmsadmin/internal/entry"
	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/internal/platform/validate"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
	"github.com/taibuivan/cmsadmin/pkg/slice"
)

// LandingType is the content type previewed on the admin landing page.
const LandingType = "post"

type Service struct {
	api apiclient.Requester
}

func NewService(api apiclient.Requester) *Service {
	return &Service{api: api}
}

// ListPublished returns one page of published entries of typeSlug. A non-empty
// params.Sort is forwarded verbatim.
func (service *Service) ListPublished(context context.Context, typeSlug string, params pagination.Params) ([]entry.Entry, pagination.Meta, error) {
	validator := &validate.Validator{}
	if err := validator.Required(entry.FieldType, typeSlug).Err(); err != nil {
		return nil, pagination.Meta{}, err
	}

	var envelope apiclient.PageEnvelope[entry.Raw]
	if err := service.api.Get(context, constants.PathPublic+"/"+url.PathEscape(typeSlug), params.Values(), &envelope); err != nil {
		return nil, pagination.Meta{}, err
	}
	return slice.Map(envelope.Data, entry.Map), envelope.Meta(), nil
}

// GetPublished returns one published entry. Drafts answer as not found.
func (service *Service) GetPublished(context context.Context, typeSlug, id string) (*entry.Entry, error) {
	validator := &validate.Validator{}
	if err := validator.Required(entry.FieldType, typeSlug).Required(entry.FieldID, id).Err(); err != nil {
		return nil, err
	}

	var envelope apiclient.Envelope[entry.Raw]
	endpoint := constants.PathPublic + "/" + url.PathEscape(typeSlug) + "/" + url.PathEscape(id)
	if err := service.api.Get(context, endpoint, nil, &envelope); err != nil {
		return nil, err
	}
	published := entry.Map(envelope.Data)
	return &published, nil
}

// Latest previews the newest landing posts.
func (service *Service) Latest(context context.Context, limit int) ([]entry.Entry, error) {
	entries, _, err := service.ListPublished(context, LandingType, pagination.Params{Limit: limit})
	return entries, err
}
