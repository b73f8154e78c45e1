// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/cmsadmin/internal/platform/validate"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
)

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

func (service *Service) List(context context.Context, typeSlug string, params pagination.Params) ([]Entry, pagination.Meta, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldType, typeSlug).Err(); err != nil {
		return nil, pagination.Meta{}, err
	}
	return service.repo.List(context, typeSlug, params.Normalize())
}

func (service *Service) Get(context context.Context, typeSlug, id string) (*Entry, error) {
	if err := validateAddress(typeSlug, id); err != nil {
		return nil, err
	}
	return service.repo.Get(context, typeSlug, id)
}

// Create stores a new entry under the content type typeSlug.
func (service *Service) Create(context context.Context, typeSlug string, input CreateInput) (*Entry, error) {
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Status == "" {
		input.Status = StatusDraft
	}
	if input.Data == nil {
		input.Data = map[string]any{}
	}

	validator := &validate.Validator{}
	validator.Required(FieldType, typeSlug)
	validator.Required(FieldSlug, input.Slug).Slug(FieldSlug, input.Slug)
	validator.OneOf(FieldStatus, string(input.Status), statusNames()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, typeSlug, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("entry_created", slog.String("type", typeSlug), slog.String("id", created.ID))
	return created, nil
}

// Update replaces the data and/or status. A data change records a new version.
func (service *Service) Update(context context.Context, typeSlug, id string, input UpdateInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldType, typeSlug).Required(FieldID, id)
	if input.Status != nil {
		validator.OneOf(FieldStatus, string(*input.Status), statusNames()...)
	}
	validator.Custom(FieldStatus, input.Status == nil && input.Data == nil, "Nothing to update")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, typeSlug, id, input); err != nil {
		return err
	}

	service.logger.Info("entry_updated",
		slog.String("type", typeSlug),
		slog.String("id", id),
		slog.String("status", string(pointer.Fallback(input.Status, "unchanged"))),
		slog.Bool("data_changed", input.Data != nil),
	)
	return nil
}

func (service *Service) Delete(context context.Context, typeSlug, id string) error {
	if err := validateAddress(typeSlug, id); err != nil {
		return err
	}

	if err := service.repo.Delete(context, typeSlug, id); err != nil {
		return err
	}

	service.logger.Warn("entry_deleted", slog.String("type", typeSlug), slog.String("id", id))
	return nil
}

func (service *Service) Publish(context context.Context, typeSlug, id string) error {
	if err := validateAddress(typeSlug, id); err != nil {
		return err
	}

	if err := service.repo.Publish(context, typeSlug, id); err != nil {
		return err
	}

	service.logger.Info("entry_published", slog.String("type", typeSlug), slog.String("id", id))
	return nil
}

// Rollback restores the data of version (1-based).
func (service *Service) Rollback(context context.Context, typeSlug, id string, version int) error {
	validator := &validate.Validator{}
	validator.Required(FieldType, typeSlug).Required(FieldID, id)
	validator.Custom(FieldVersion, version < 1, "Version must be 1 or greater")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Rollback(context, typeSlug, id, version); err != nil {
		return err
	}

	service.logger.Info("entry_rolled_back", slog.String("type", typeSlug), slog.String("id", id), slog.Int("version", version))
	return nil
}

func validateAddress(typeSlug, id string) error {
	validator := &validate.Validator{}
	return validator.Required(FieldType, typeSlug).Required(FieldID, id).Err()
}
