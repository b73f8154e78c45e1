// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/cmsadmin/internal/platform/sec"
	"github.com/taibuivan/cmsadmin/internal/platform/session"
	"github.com/taibuivan/cmsadmin/internal/platform/validate"
)

// ErrNoSession is returned by identity queries when no token is stored.
var ErrNoSession = errors.New("not logged in")

// Service implements the operator's session lifecycle.
type Service struct {
	repository Repository
	store      session.Store
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, store session.Store, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		store:      store,
		logger:     logger,
		now:        time.Now,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput holds the data required to create an account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Login exchanges credentials for a token and stores it.
//
// # Returns
//   - The [Session] as answered by the backend.
//   - A validation [apperr.AppError] when input is malformed; nothing is sent.
//   - The backend's [apperr.RequestError] otherwise (401 for bad credentials).
//
// A response without a token is returned as is and nothing is stored.
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	input.Email = strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	result, err := service.repository.Login(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.persist(context, result); err != nil {
		return nil, err
	}

	service.logger.Info("auth_login_succeeded", slog.String("email", input.Email), slog.Bool("token_stored", result.Token != ""))
	return result, nil
}

// Register creates an account and, when the backend answers with a token,
// stores it so the operator is signed in right away.
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldUsername, input.Username).MaxLen(FieldUsername, input.Username, 100)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 6)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	result, err := service.repository.Register(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.persist(context, result); err != nil {
		return nil, err
	}

	service.logger.Info("auth_register_succeeded", slog.String("email", input.Email), slog.Bool("token_stored", result.Token != ""))
	return result, nil
}

// Logout removes the stored token. The backend is not contacted.
func (service *Service) Logout(context context.Context) error {
	if err := service.store.Clear(context); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("auth_logout")
	return nil
}

// IsAuthenticated reports whether a non-empty token is stored. It does not
// check the token's validity.
func (service *Service) IsAuthenticated(context context.Context) bool {
	return session.HasToken(context, service.store)
}

// CurrentUser decodes the stored token. The signature is not verified.
func (service *Service) CurrentUser(context context.Context) (*Identity, error) {
	token, err := service.store.Token(context)
	if err != nil {
		return nil, fmt.Errorf("auth_service_read_token_failed: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrNoSession
	}

	claims, err := sec.ParseUnverified(token)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:    claims.UserID(),
		Role:      claims.UserRole(),
		ExpiresAt: claims.Expiry(),
		Expired:   claims.Expired(service.now()),
	}, nil
}

// HasRole reports whether the stored token grants at least role. Missing,
// undecodable or expired tokens grant nothing.
func (service *Service) HasRole(context context.Context, role sec.UserRole) bool {
	identity, err := service.CurrentUser(context)
	if err != nil || identity.Expired {
		return false
	}
	return identity.Role.AtLeast(role)
}

func (service *Service) persist(context context.Context, result *Session) error {
	if result.Token == "" {
		return nil
	}
	if err := service.store.SetToken(context, result.Token); err != nil {
		return fmt.Errorf("auth_service_store_token_failed: %w", err)
	}
	return nil
}
