// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cmstest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/cmsadmin/internal/platform/ctxkey"
	"github.com/taibuivan/cmsadmin/internal/platform/sec"
)

// # Authorization
//
// The chain mirrors the backend. Anonymous calls to protected routes get 401;
// a role below the route's minimum gets 403.

// authenticate verifies the bearer token and stores its claims on the
// request context. A request without a token proceeds anonymously.
func (backend *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		header := request.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(writer, request)
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
			writeError(writer, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		claims := &sec.SessionClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(Secret), nil
		})
		if err != nil {
			writeError(writer, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(request.Context(), ctxkey.KeyClaims, claims)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// requireAuth blocks anonymous requests. It must run after authenticate.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if claimsFrom(request.Context()) == nil {
			writeError(writer, http.StatusUnauthorized, "missing token")
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// requireRole blocks requests whose role is below the given one.
func requireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := claimsFrom(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "missing token")
				return
			}
			if !claims.UserRole().AtLeast(role) {
				writeError(writer, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func claimsFrom(ctx context.Context) *sec.SessionClaims {
	claims, _ := ctx.Value(ctxkey.KeyClaims).(*sec.SessionClaims)
	return claims
}
