// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"net/url"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/pkg/slice"
)

// APIRepository implements [Repository] over the admin routes.
type APIRepository struct {
	api apiclient.Requester
}

func NewAPIRepository(api apiclient.Requester) *APIRepository {
	return &APIRepository{api: api}
}

func userRolesPath(userID string) string {
	return constants.PathAdminUsers + "/" + url.PathEscape(userID) + "/roles"
}

func (repository *APIRepository) List(context context.Context) ([]User, error) {
	var envelope apiclient.Envelope[[]User]
	if err := repository.api.Get(context, constants.PathAdminUsers, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []User{}, nil
	}
	return envelope.Data, nil
}

func (repository *APIRepository) Roles(context context.Context, userID string) ([]Role, error) {
	var response struct {
		Roles []rawRole `json:"roles"`
	}
	if err := repository.api.Get(context, userRolesPath(userID), nil, &response); err != nil {
		return nil, err
	}
	return slice.Map(response.Roles, mapRole), nil
}

func (repository *APIRepository) SetRoles(context context.Context, userID string, roleIDs []int) error {
	body := map[string][]int{"roles": roleIDs}
	return repository.api.Post(context, userRolesPath(userID), body, nil)
}

// ListRoles reads the role catalogue, which the backend returns as a bare array.
func (repository *APIRepository) ListRoles(context context.Context) ([]Role, error) {
	var roles []rawRole
	if err := repository.api.Get(context, constants.PathAdminRoles, nil, &roles); err != nil {
		return nil, err
	}
	return slice.Map(roles, mapRole), nil
}

func (repository *APIRepository) CreateRole(context context.Context, name string) error {
	return repository.api.Post(context, constants.PathAdminRoles, map[string]string{"name": name}, nil)
}
