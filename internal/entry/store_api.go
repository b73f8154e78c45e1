// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"context"
	"net/url"
	"strconv"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
	"github.com/taibuivan/cmsadmin/pkg/slice"
)

// APIRepository implements [Repository] over the backend REST API.
type APIRepository struct {
	api apiclient.Requester
}

func NewAPIRepository(api apiclient.Requester) *APIRepository {
	return &APIRepository{api: api}
}

func collectionPath(typeSlug string) string {
	return constants.PathEntries + "/" + url.PathEscape(typeSlug)
}

func entryPath(typeSlug, id string) string {
	return collectionPath(typeSlug) + "/" + url.PathEscape(id)
}

func (repository *APIRepository) List(context context.Context, typeSlug string, params pagination.Params) ([]Entry, pagination.Meta, error) {
	var envelope apiclient.PageEnvelope[Raw]
	if err := repository.api.Get(context, collectionPath(typeSlug), params.Values(), &envelope); err != nil {
		return nil, pagination.Meta{}, err
	}
	return slice.Map(envelope.Data, Map), envelope.Meta(), nil
}

func (repository *APIRepository) Get(context context.Context, typeSlug, id string) (*Entry, error) {
	var envelope apiclient.Envelope[Raw]
	if err := repository.api.Get(context, entryPath(typeSlug, id), nil, &envelope); err != nil {
		return nil, err
	}
	entry := Map(envelope.Data)
	return &entry, nil
}

func (repository *APIRepository) Create(context context.Context, typeSlug string, input CreateInput) (*Entry, error) {
	var envelope apiclient.Envelope[Raw]
	if err := repository.api.Post(context, collectionPath(typeSlug), input, &envelope); err != nil {
		return nil, err
	}
	entry := Map(envelope.Data)
	return &entry, nil
}

func (repository *APIRepository) Update(context context.Context, typeSlug, id string, input UpdateInput) error {
	return repository.api.Put(context, entryPath(typeSlug, id), input, nil)
}

func (repository *APIRepository) Delete(context context.Context, typeSlug, id string) error {
	return repository.api.Delete(context, entryPath(typeSlug, id), nil)
}

func (repository *APIRepository) Publish(context context.Context, typeSlug, id string) error {
	return repository.api.Post(context, entryPath(typeSlug, id)+"/publish", nil, nil)
}

func (repository *APIRepository) Rollback(context context.Context, typeSlug, id string, version int) error {
	return repository.api.Post(context, entryPath(typeSlug, id)+"/rollback/"+strconv.Itoa(version), nil, nil)
}
