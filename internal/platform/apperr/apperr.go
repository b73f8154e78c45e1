// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for cmsadmin.

Two error shapes leave the client:

  - AppError: a locally produced failure (input validation) carrying a
    machine-readable Code and per-field details. No request was sent.
  - RequestError: a failed round-trip to the backend, tagged by [Kind] and
    carrying the HTTP status, a best-effort message, and the raw body so
    callers can tell an expired session (401) from a server failure (5xx).

Every error a feature service returns is one of these two, possibly wrapped.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is a client-side failure detected before any request was issued.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "VALIDATION_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show the operator.
	Message string `json:"error"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the operator-facing message.
func (e *AppError) Error() string { return e.Message }

// ValidationError creates an [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: msg,
		Details: details,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsForbidden reports whether err is a backend 403.
func IsForbidden(err error) bool {
	return StatusOf(err) == http.StatusForbidden
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsServerError reports whether err is a backend 5xx.
func IsServerError(err error) bool {
	return StatusOf(err) >= http.StatusInternalServerError
}

// StatusOf returns the HTTP status carried by err, or 0 when err did not come
// from a backend response.
func StatusOf(err error) int {
	if re := AsRequest(err); re != nil {
		return re.Status
	}
	return 0
}
