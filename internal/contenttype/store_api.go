// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype

import (
	"context"
	"net/url"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// APIRepository implements [Repository] over the backend REST API. Each method
// is one request followed by one mapper call.
type APIRepository struct {
	api apiclient.Requester
}

// NewAPIRepository constructs a new [APIRepository].
func NewAPIRepository(api apiclient.Requester) *APIRepository {
	return &APIRepository{api: api}
}

func contentTypePath(id string) string {
	return constants.PathContentTypes + "/" + url.PathEscape(id)
}

func fieldsPath(contentTypeID string) string {
	return contentTypePath(contentTypeID) + "/fields"
}

// # Content Types

// List fetches every content type in backend order.
func (repository *APIRepository) List(context context.Context) ([]ContentType, error) {
	var envelope apiclient.Envelope[[]RawContentType]
	if err := repository.api.Get(context, constants.PathContentTypes, nil, &envelope); err != nil {
		return nil, err
	}
	return MapContentTypes(envelope.Data), nil
}

// Get fetches one content type with its fields.
func (repository *APIRepository) Get(context context.Context, id string) (*ContentType, error) {
	var envelope apiclient.Envelope[RawContentType]
	if err := repository.api.Get(context, contentTypePath(id), nil, &envelope); err != nil {
		return nil, err
	}
	contentType := MapContentType(envelope.Data)
	return &contentType, nil
}

// Create posts a new content type and returns the stored snapshot.
func (repository *APIRepository) Create(context context.Context, input CreateInput) (*ContentType, error) {
	var envelope apiclient.Envelope[RawContentType]
	if err := repository.api.Post(context, constants.PathContentTypes, input, &envelope); err != nil {
		return nil, err
	}
	contentType := MapContentType(envelope.Data)
	return &contentType, nil
}

// Update sends the provided attributes. The backend acknowledges with an empty
// body, in which case the returned snapshot is nil.
func (repository *APIRepository) Update(context context.Context, id string, input UpdateInput) (*ContentType, error) {
	var envelope apiclient.Envelope[*RawContentType]
	if err := repository.api.Put(context, contentTypePath(id), input, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, nil
	}
	contentType := MapContentType(*envelope.Data)
	return &contentType, nil
}

// Delete removes a content type.
func (repository *APIRepository) Delete(context context.Context, id string) error {
	return repository.api.Delete(context, contentTypePath(id), nil)
}

// # Fields

// AddField appends a field to an existing content type.
func (repository *APIRepository) AddField(context context.Context, contentTypeID string, input FieldInput) (*ContentField, error) {
	var envelope apiclient.Envelope[RawContentField]
	if err := repository.api.Post(context, fieldsPath(contentTypeID), input, &envelope); err != nil {
		return nil, err
	}
	field := MapContentField(envelope.Data)
	return &field, nil
}

// DeleteField removes one field.
func (repository *APIRepository) DeleteField(context context.Context, contentTypeID, fieldID string) error {
	return repository.api.Delete(context, fieldsPath(contentTypeID)+"/"+url.PathEscape(fieldID), nil)
}
