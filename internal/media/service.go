// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/taibuivan/cmsadmin/internal/platform/validate"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
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

// List returns one page of assets and the pagination metadata.
func (service *Service) List(context context.Context, params pagination.Params) ([]Asset, pagination.Meta, error) {
	return service.repo.List(context, params.Normalize())
}

// Upload sends content as the multipart "file" part. Only the base name of
// filename is transmitted.
func (service *Service) Upload(context context.Context, filename string, content io.Reader) (*Uploaded, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFilename, filename)
	validator.Custom(FieldFilename, content == nil, "File content is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	uploaded, err := service.repo.Upload(context, filepath.Base(filename), content)
	if err != nil {
		return nil, err
	}

	service.logger.Info("media_uploaded", slog.String("id", uploaded.ID), slog.String("filename", uploaded.Filename))
	return uploaded, nil
}

// Preview returns a signed, time-limited link to the asset.
func (service *Service) Preview(context context.Context, id string) (*Preview, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.Preview(context, id)
}

func (service *Service) Delete(context context.Context, id string) error {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("media_deleted", slog.String("id", id))
	return nil
}
