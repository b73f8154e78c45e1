// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec reads the claims carried by the backend's session tokens.
//
// # Trust
//
// The signing secret lives on the backend only. Claims decoded here are used
// for display and for hiding operations the backend would reject anyway; they
// never replace the server-side check.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a backend access token.
type SessionClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

// UserID returns the subject claim.
func (claims *SessionClaims) UserID() string {
	return claims.Subject
}

// UserRole returns the normalized role claim.
func (claims *SessionClaims) UserRole() UserRole {
	return ParseRole(claims.Role)
}

// Expiry returns the expiry, or the zero time when the token carries none.
func (claims *SessionClaims) Expiry() time.Time {
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (claims *SessionClaims) Expired(at time.Time) bool {
	expiry := claims.Expiry()
	return !expiry.IsZero() && !at.Before(expiry)
}

// ParseUnverified decodes the claims of a token without checking its signature.
func ParseUnverified(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("sec: failed to decode token: %w", err)
	}

	return claims, nil
}
