// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/cmsadmin/internal/platform/validate"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
	"github.com/taibuivan/cmsadmin/pkg/slug"
)

// Service validates operator input and forwards it to the [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]ContentType, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id string) (*ContentType, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// Create stores a new content type. A blank slug is derived from the name.
func (service *Service) Create(context context.Context, input CreateInput) (*ContentType, error) {
	input.Name = strings.TrimSpace(input.Name)
	if strings.TrimSpace(input.Slug) == "" {
		input.Slug = slug.Derive(input.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldSlug, input.Slug).MaxLen(FieldSlug, input.Slug, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("content_type_created", slog.String("id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

// Update changes name and/or slug. The returned snapshot is nil when the
// backend acknowledges without echoing the record.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*ContentType, error) {
	validator := &validate.Validator{}
	validator.Required(FieldID, id)
	if input.Name != nil {
		validator.Required(FieldName, *input.Name)
	}
	if input.Slug != nil {
		validator.Required(FieldSlug, *input.Slug)
	}
	validator.Custom(FieldName, input.Name == nil && input.Slug == nil, "Nothing to update")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("content_type_updated",
		slog.String("id", id),
		slog.String("name", pointer.Val(input.Name)),
		slog.String("slug", pointer.Val(input.Slug)),
	)
	return updated, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("content_type_deleted", slog.String("id", id))
	return nil
}

// # Fields

// AddField appends a field to a stored content type. A blank kind means text.
func (service *Service) AddField(context context.Context, contentTypeID string, input FieldInput) (*ContentField, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Kind == "" {
		input.Kind = KindText
	}
	if input.Options == nil {
		input.Options = map[string]any{}
	}

	validator := &validate.Validator{}
	validator.Required(FieldID, contentTypeID)
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.OneOf(FieldKindName, string(input.Kind), kindNames()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	field, err := service.repo.AddField(context, contentTypeID, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("content_field_added",
		slog.String("content_type_id", contentTypeID),
		slog.String("field_id", field.ID),
		slog.String("kind", string(field.Kind)),
	)
	return field, nil
}

func (service *Service) DeleteField(context context.Context, contentTypeID, fieldID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldID, contentTypeID).Required(FieldID, fieldID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteField(context, contentTypeID, fieldID); err != nil {
		return err
	}

	service.logger.Warn("content_field_deleted",
		slog.String("content_type_id", contentTypeID),
		slog.String("field_id", fieldID),
	)
	return nil
}
