// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the admin client.

It defines default timeouts, storage keys, and the backend endpoint paths that
are shared between the API client, the feature services, and the CLI.

Categories:

  - Client Timing: Request deadlines used when the environment does not override them.
  - Session: The fixed storage slot name of the bearer token.
  - Endpoints: Relative paths of the CMS backend REST API.

Using this package keeps magic strings out of the feature services.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "cmsadmin"
	AppVersion = "0.1.0-dev"
)

// # Client Timing

const (
	// DefaultBaseURL is the backend address used when CMS_API_BASE_URL is unset.
	DefaultBaseURL = "http://localhost:8081"

	// DefaultRequestTimeout bounds a single round-trip to the backend.
	DefaultRequestTimeout = 15 * time.Second

	// DashboardTimeout bounds the three concurrent dashboard count queries.
	DashboardTimeout = 20 * time.Second
)

// # Session

const (
	// TokenStorageKey is the name of the persistent slot holding the bearer token.
	TokenStorageKey = "cms_token"

	// RedisPrefixSession namespaces the token slot when Redis backs the store.
	RedisPrefixSession = "cmsadmin:session:"

	// BearerScheme is the Authorization scheme attached to authenticated calls.
	BearerScheme = "Bearer"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldMessage = "message"
	FieldToken   = "token"
)

// # Endpoints

const (
	PathHealth        = "/healthz"
	PathLogin         = "/api/auth/login"
	PathRegister      = "/api/auth/register"
	PathContentTypes  = "/api/content-types"
	PathMedia         = "/api/media"
	PathMediaPreview  = "/api/media/preview"
	PathAdminUsers    = "/api/admin/users"
	PathAdminRoles    = "/api/admin/roles"
	PathEntries       = "/api/entries"
	PathPublic        = "/api/public"
	UploadFormFileKey = "file"
)
