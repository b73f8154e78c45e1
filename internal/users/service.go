// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/cmsadmin/internal/platform/validate"
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

func (service *Service) List(context context.Context) ([]User, error) {
	return service.repo.List(context)
}

func (service *Service) Roles(context context.Context, userID string) ([]Role, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldUserID, userID).Err(); err != nil {
		return nil, err
	}
	return service.repo.Roles(context, userID)
}

// SetRoles replaces the roles of a user. The list must be non-empty; duplicate
// IDs are sent once.
func (service *Service) SetRoles(context context.Context, userID string, roleIDs []int) error {
	unique := slices.Compact(slices.Sorted(slices.Values(roleIDs)))

	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID)
	validator.Custom(FieldRoles, len(unique) == 0, "At least one role is required")
	validator.Custom(FieldRoles, len(unique) > 0 && unique[0] <= 0, "Role IDs must be positive")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.SetRoles(context, userID, unique); err != nil {
		return err
	}

	service.logger.Info("user_roles_set", slog.String("user_id", userID), slog.Any("roles", unique))
	return nil
}

func (service *Service) ListRoles(context context.Context) ([]Role, error) {
	return service.repo.ListRoles(context)
}

func (service *Service) CreateRole(context context.Context, name string) error {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 50)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateRole(context, name); err != nil {
		return err
	}

	service.logger.Info("role_created", slog.String("name", name))
	return nil
}
