// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage is used when a failed response body cannot be parsed.
const FallbackMessage = "An error occurred"

// Kind tags the stage at which a request failed.
type Kind string

const (
	// KindHTTP means the backend answered with a non-success status.
	KindHTTP Kind = "http"
	// KindNetwork means the request never produced a response.
	KindNetwork Kind = "network"
	// KindDecode means a success response carried a body that was not valid JSON.
	KindDecode Kind = "decode"
)

// RequestError is the single error type for failed backend round-trips.
type RequestError struct {
	Kind    Kind
	Method  string
	Path    string
	Status  int
	Message string
	Body    []byte
	Cause   error
}

// Error implements the error interface. It returns the message only, as the
// operator sees it.
func (e *RequestError) Error() string { return e.Message }

// Unwrap allows [errors.Is] to reach context cancellation and transport errors.
func (e *RequestError) Unwrap() error { return e.Cause }

// FromResponse builds a [KindHTTP] error from a non-success status and its body.
//
// # Message Resolution
//
//  1. Body is not valid JSON: [FallbackMessage].
//  2. Body is an object with a non-empty "message": that value.
//  3. Body is an object with a non-empty "error": that value (the backend's envelope).
//  4. Otherwise, including JSON that is not an object: "HTTP <status>".
func FromResponse(method, path string, status int, body []byte) *RequestError {
	return &RequestError{
		Kind:    KindHTTP,
		Method:  method,
		Path:    path,
		Status:  status,
		Message: messageFromBody(status, body),
		Body:    body,
	}
}

// Network wraps a transport failure (DNS, refused connection, cancelled context).
func Network(method, path string, cause error) *RequestError {
	return &RequestError{
		Kind:    KindNetwork,
		Method:  method,
		Path:    path,
		Message: fmt.Sprintf("request failed: %v", cause),
		Cause:   cause,
	}
}

// Decode wraps a success response whose body could not be decoded.
func Decode(method, path string, status int, body []byte, cause error) *RequestError {
	return &RequestError{
		Kind:    KindDecode,
		Method:  method,
		Path:    path,
		Status:  status,
		Message: fmt.Sprintf("invalid response body: %v", cause),
		Body:    body,
		Cause:   cause,
	}
}

// AsRequest extracts the [*RequestError] from err's chain. It returns nil if not found.
func AsRequest(err error) *RequestError {
	var re *RequestError
	if errors.As(err, &re) {
		return re
	}
	return nil
}

// messageFromBody resolves the human-readable message of an error body.
func messageFromBody(status int, body []byte) string {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return FallbackMessage
	}

	payload, _ := parsed.(map[string]any)
	for _, key := range []string{"message", "error"} {
		if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	return fmt.Sprintf("HTTP %d", status)
}
