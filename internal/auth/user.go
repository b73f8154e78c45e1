// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth signs the operator in and out of the CMS backend and answers
// questions about the current session.
//
// # Session
//
// The only client-side state is the bearer token kept in a [session.Store]
// under "cms_token". Login and registration write it; logout removes it.
// Nothing else is cached: the user profile returned at login is handed back
// to the caller, and identity questions are answered from the token claims.
package auth

import (
	"time"

	"github.com/taibuivan/cmsadmin/internal/platform/sec"
)

// User is the profile returned alongside a token.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the outcome of a successful login or registration.
type Session struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// Identity is what the stored token says about its bearer.
type Identity struct {
	UserID    string       `json:"user_id"`
	Role      sec.UserRole `json:"role"`
	ExpiresAt time.Time    `json:"expires_at"`
	Expired   bool         `json:"expired"`
}

// payload is the backend's auth response. Login answers at the top level;
// registration wraps the same fields in a "data" envelope.
type payload struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	User      *User    `json:"user"`
	Data      *payload `json:"data"`
}

// session flattens the payload. The top-level token wins when both exist.
func (p *payload) session() *Session {
	if p.Token == "" && p.Data != nil {
		return p.Data.session()
	}
	return &Session{Token: p.Token, TokenType: p.TokenType, User: p.User}
}

// Global field names for validation
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)
