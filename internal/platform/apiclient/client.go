// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apiclient is the single gateway between cmsadmin and the CMS backend.

It exposes exactly four JSON verbs (GET, POST, PUT, DELETE) plus a multipart
upload, each returning either a decoded JSON body or an [*apperr.RequestError].

Contract per call:

  - Input: a path relative to the base URL, an optional JSON body, optional
    query parameters, and a [context.Context] whose cancellation aborts the
    in-flight request.
  - Headers: "Authorization: Bearer <token>" whenever the session store holds
    a non-empty token; "Content-Type: application/json" on every JSON verb,
    multipart encoding on uploads.
  - Success: any 2xx. The body is decoded into the caller's target without
    schema validation; an empty body leaves the target untouched.
  - Failure: every non-2xx, transport failure, or undecodable success body is
    an [*apperr.RequestError]. Nothing is retried.

The session is explicit: the client reads the token from the [TokenSource]
given to [New] and never from ambient global storage.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/config"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/internal/platform/ctxutil"
)

// maxBodyBytes caps how much of a response body is buffered.
const maxBodyBytes = 32 << 20

// # Contracts

// TokenSource yields the bearer token for outgoing requests. An empty token
// means the request is sent anonymously.
type TokenSource interface {
	Token(context context.Context) (string, error)
}

// Requester is the verb set feature repositories depend on. [*Client]
// satisfies it.
type Requester interface {
	Get(context context.Context, endpoint string, params url.Values, out any) error
	Post(context context.Context, endpoint string, body any, out any) error
	Put(context context.Context, endpoint string, body any, out any) error
	Delete(context context.Context, endpoint string, out any) error
}

// Uploader is implemented by requesters that can send multipart files.
type Uploader interface {
	Requester
	Upload(context context.Context, endpoint, filename string, content io.Reader, out any) error
}

var _ Uploader = (*Client)(nil)

// Client issues authenticated JSON requests against one backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	userAgent  string
}

// Option customizes a [Client] at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The default timeout is
// kept unless the replacement sets its own.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		replacement := *httpClient
		if replacement.Timeout == 0 {
			replacement.Timeout = client.httpClient.Timeout
		}
		client.httpClient = &replacement
	}
}

// WithTimeout bounds every round-trip. Zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(client *Client) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// # Construction

// New returns a client rooted at baseURL.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base URL %q", baseURL)
	}

	client := &Client{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		httpClient: &http.Client{Timeout: constants.DefaultRequestTimeout},
		tokens:     tokens,
		userAgent:  constants.AppName + "/" + constants.AppVersion,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// NewFromConfig wires a client from the loaded configuration.
func NewFromConfig(cfg *config.Config, tokens TokenSource) (*Client, error) {
	return New(cfg.BaseURL, tokens,
		WithTimeout(cfg.RequestTimeout),
		WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
}

// BaseURL returns the normalized backend address.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// # Verbs

// Get issues a GET with optional query parameters and decodes the body into out.
func (client *Client) Get(context context.Context, endpoint string, params url.Values, out any) error {
	return client.doJSON(context, http.MethodGet, endpoint, params, nil, out)
}

// Post issues a POST. A nil body sends no payload.
func (client *Client) Post(context context.Context, endpoint string, body any, out any) error {
	return client.doJSON(context, http.MethodPost, endpoint, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (client *Client) Put(context context.Context, endpoint string, body any, out any) error {
	return client.doJSON(context, http.MethodPut, endpoint, nil, body, out)
}

// Delete issues a DELETE. out may be nil when the response carries nothing useful.
func (client *Client) Delete(context context.Context, endpoint string, out any) error {
	return client.doJSON(context, http.MethodDelete, endpoint, nil, nil, out)
}

// # Transport

// doJSON encodes body and delegates to do.
func (client *Client) doJSON(context context.Context, method, endpoint string, params url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient_encode_failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	return client.do(context, method, endpoint, params, reader, "application/json", out)
}

// do performs one round-trip and maps the outcome onto the error taxonomy.
func (client *Client) do(context context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string, out any) error {
	logger := ctxutil.GetLogger(context)
	started := time.Now()

	if client.limiter != nil {
		if err := client.limiter.Wait(context); err != nil {
			return apperr.Network(method, endpoint, err)
		}
	}

	request, err := client.newRequest(context, method, endpoint, params, body, contentType)
	if err != nil {
		return err
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		logger.DebugContext(context, "api_request_failed",
			slog.String("method", method),
			slog.String("path", endpoint),
			slog.Any("error", err),
		)
		return apperr.Network(method, endpoint, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return apperr.Network(method, endpoint, err)
	}

	logger.DebugContext(context, "api_request",
		slog.String("method", method),
		slog.String("path", endpoint),
		slog.Int("status", response.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
	)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return apperr.FromResponse(method, endpoint, response.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperr.Decode(method, endpoint, response.StatusCode, payload, err)
	}

	return nil
}

// newRequest builds the outgoing request with the standard header set.
func (client *Client) newRequest(context context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := client.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	request, err := http.NewRequestWithContext(context, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient_request_build_failed: %w", err)
	}

	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", client.userAgent)

	if requestID := ctxutil.GetRequestID(context); requestID != "" {
		request.Header.Set("X-Request-ID", requestID)
	}

	if client.tokens != nil {
		token, err := client.tokens.Token(context)
		if err != nil {
			return nil, fmt.Errorf("apiclient_token_read_failed: %w", err)
		}
		if token = strings.TrimSpace(token); token != "" {
			request.Header.Set("Authorization", constants.BearerScheme+" "+token)
		}
	}

	return request, nil
}
