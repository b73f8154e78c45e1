// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// APIRepository implements [Repository] over the backend REST API.
type APIRepository struct {
	api apiclient.Requester
}

// NewAPIRepository constructs a new [APIRepository].
func NewAPIRepository(api apiclient.Requester) *APIRepository {
	return &APIRepository{api: api}
}

// Login posts the credentials to the login route.
func (repository *APIRepository) Login(context context.Context, input LoginInput) (*Session, error) {
	var response payload
	if err := repository.api.Post(context, constants.PathLogin, input, &response); err != nil {
		return nil, err
	}
	return response.session(), nil
}

// Register creates an account. The username doubles as the display name.
func (repository *APIRepository) Register(context context.Context, input RegisterInput) (*Session, error) {
	body := map[string]string{
		"email":    input.Email,
		"username": input.Username,
		"name":     input.Username,
		"password": input.Password,
	}

	var response payload
	if err := repository.api.Post(context, constants.PathRegister, body, &response); err != nil {
		return nil, err
	}
	return response.session(), nil
}
