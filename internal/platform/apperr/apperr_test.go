// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
)

/*
TestFromResponse_Message covers every branch of message resolution.
*/
func TestFromResponse_Message(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message_field", http.StatusNotFound, `{"message":"not found"}`, "not found"},
		{"error_field", http.StatusBadRequest, `{"error":"invalid uuid"}`, "invalid uuid"},
		{"message_wins", http.StatusConflict, `{"message":"dup","error":"other"}`, "dup"},
		{"empty_object", http.StatusForbidden, `{}`, "HTTP 403"},
		{"blank_message", http.StatusUnauthorized, `{"message":"  "}`, "HTTP 401"},
		{"unparseable", http.StatusInternalServerError, `<html>oops</html>`, apperr.FallbackMessage},
		{"empty_body", http.StatusBadGateway, ``, apperr.FallbackMessage},
		{"json_array", http.StatusInternalServerError, `[1,2]`, "HTTP 500"},
		{"json_string", http.StatusBadGateway, `"boom"`, "HTTP 502"},
		{"json_null", http.StatusServiceUnavailable, `null`, "HTTP 503"},
		{"message_not_string", http.StatusBadRequest, `{"message":42}`, "HTTP 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperr.FromResponse(http.MethodGet, "/api/x", tt.status, []byte(tt.body))

			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, apperr.KindHTTP, err.Kind)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, tt.body, string(err.Body))
		})
	}
}

/*
TestStatusPredicates verifies that callers can branch on the status through wrapping.
*/
func TestStatusPredicates(t *testing.T) {
	unauthorized := fmt.Errorf("contenttype_list_failed: %w",
		apperr.FromResponse(http.MethodGet, "/api/content-types", http.StatusUnauthorized, nil))

	assert.True(t, apperr.IsUnauthorized(unauthorized))
	assert.False(t, apperr.IsServerError(unauthorized))
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(unauthorized))

	server := apperr.FromResponse(http.MethodGet, "/api/media", http.StatusServiceUnavailable, nil)
	assert.True(t, apperr.IsServerError(server))
	assert.False(t, apperr.IsForbidden(server))

	assert.True(t, apperr.IsForbidden(apperr.FromResponse(http.MethodGet, "/", http.StatusForbidden, nil)))
	assert.True(t, apperr.IsNotFound(apperr.FromResponse(http.MethodGet, "/", http.StatusNotFound, nil)))
	assert.Equal(t, 0, apperr.StatusOf(errors.New("plain")))
}

/*
TestNetwork_UnwrapsCause verifies that cancellation stays detectable.
*/
func TestNetwork_UnwrapsCause(t *testing.T) {
	err := apperr.Network(http.MethodGet, "/api/media", context.Canceled)

	assert.Equal(t, apperr.KindNetwork, err.Kind)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, apperr.StatusOf(err))
}

/*
TestValidationError verifies the local validation shape.
*/
func TestValidationError(t *testing.T) {
	var err error = apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "name", Message: "This field is required"})

	require.True(t, apperr.IsAppError(err))
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 1)
	assert.Nil(t, apperr.AsRequest(err))
}
