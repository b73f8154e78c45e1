// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cmstest runs an in-process imitation of the CMS backend for tests.

It speaks the backend's wire format (capitalized model keys, {"data": ...}
envelopes, {"error": ...} failures, HS256 bearer tokens) over a real
[httptest.Server], records every request it receives, and lets a test stub
any route with a canned response.

Usage:

	backend := cmstest.New(t)
	service := media.NewService(media.NewAPIRepository(backend.Client()), cmstest.Logger())
*/
package cmstest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/sec"
	"github.com/taibuivan/cmsadmin/internal/platform/session"
)

// Secret signs the tokens the fake backend issues.
const Secret = "cmstest-secret"

// Default operator seeded into every backend.
const (
	AdminEmail    = "admin@cms.local"
	AdminPassword = "admin123"
	AdminName     = "Admin"
	AdminRole     = "Admin"
)

// # Recording

// Request is one call observed by the backend.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

type stub struct {
	status int
	body   string
}

// Backend is the fake server plus its in-memory state.
type Backend struct {
	t      testing.TB
	server *httptest.Server

	mu           sync.Mutex
	requests     []Request
	stubs        map[string]stub
	contentTypes []*ContentType
	media        []*MediaAsset
	users        []*User
	roles        []*Role
	userRoles    map[string][]int
	entries      map[string][]*Entry
	passwords    map[string]string
}

// New starts a backend seeded with one admin account and registers cleanup.
func New(t testing.TB) *Backend {
	t.Helper()

	backend := &Backend{
		t:         t,
		stubs:     map[string]stub{},
		userRoles: map[string][]int{},
		entries:   map[string][]*Entry{},
		passwords: map[string]string{},
		roles:     []*Role{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Editor"}},
	}

	admin := &User{ID: uuid.NewString(), Name: AdminName, Email: AdminEmail, CreatedAt: now(), UpdatedAt: now()}
	backend.users = append(backend.users, admin)
	backend.passwords[AdminEmail] = AdminPassword
	backend.userRoles[admin.ID] = []int{1}

	backend.server = httptest.NewServer(backend.router())
	t.Cleanup(backend.server.Close)

	return backend
}

// URL returns the base URL of the running backend.
func (backend *Backend) URL() string {
	return backend.server.URL
}

// Token issues a valid bearer token for the seeded admin.
func (backend *Backend) Token() string {
	backend.mu.Lock()
	admin := backend.users[0]
	backend.mu.Unlock()
	return backend.issue(admin.ID, AdminRole, time.Hour)
}

// TokenFor issues a valid bearer token for an arbitrary subject and role.
func (backend *Backend) TokenFor(userID, role string) string {
	return backend.issue(userID, role, time.Hour)
}

// Client returns an API client authenticated as the seeded admin.
func (backend *Backend) Client() *apiclient.Client {
	return backend.ClientWith(session.NewMemoryStore(backend.Token()))
}

// ClientWith returns an API client reading its token from tokens.
func (backend *Backend) ClientWith(tokens apiclient.TokenSource) *apiclient.Client {
	client, err := apiclient.New(backend.URL(), tokens, apiclient.WithHTTPClient(backend.server.Client()))
	if err != nil {
		backend.t.Fatalf("cmstest: build client: %v", err)
	}
	return client
}

// Logger returns a logger that drops every record.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Requests returns a copy of every request seen so far.
func (backend *Backend) Requests() []Request {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return append([]Request(nil), backend.requests...)
}

// RequestsTo returns the requests matching method and exact path.
func (backend *Backend) RequestsTo(method, path string) []Request {
	var matched []Request
	for _, request := range backend.Requests() {
		if request.Method == method && request.Path == path {
			matched = append(matched, request)
		}
	}
	return matched
}

// Reset forgets recorded requests; state is kept.
func (backend *Backend) Reset() {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.requests = nil
}

// Stub makes every request to method+path answer status with a raw body until
// [Backend.Unstub] is called for the same route. Any status works, so a stub
// can also replace a success response.
func (backend *Backend) Stub(method, path string, status int, body string) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.stubs[method+" "+path] = stub{status: status, body: body}
}

// Unstub removes a response installed by [Backend.Stub].
func (backend *Backend) Unstub(method, path string) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	delete(backend.stubs, method+" "+path)
}

// # Router

func (backend *Backend) router() http.Handler {
	router := chi.NewRouter()
	router.Use(backend.record, backend.inject)

	router.Get("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", backend.handleLogin)
		api.Post("/auth/register", backend.handleRegister)

		api.Get("/public/{slug}", backend.handleListPublished)
		api.Get("/public/{slug}/{id}", backend.handleGetPublished)

		api.Group(func(protected chi.Router) {
			protected.Use(backend.authenticate, requireAuth)

			protected.Route("/content-types", func(ct chi.Router) {
				ct.Get("/", backend.handleListContentTypes)
				ct.Post("/", backend.handleCreateContentType)
				ct.Get("/{id}", backend.handleGetContentType)
				ct.Put("/{id}", backend.handleUpdateContentType)
				ct.Delete("/{id}", backend.handleDeleteContentType)
				ct.Post("/{id}/fields", backend.handleAddField)
				ct.Delete("/{id}/fields/{fieldID}", backend.handleDeleteField)
			})

			protected.Route("/entries/{slug}", func(entries chi.Router) {
				entries.Get("/", backend.handleListEntries)
				entries.Post("/", backend.handleCreateEntry)
				entries.Get("/{id}", backend.handleGetEntry)
				entries.Put("/{id}", backend.handleUpdateEntry)
				entries.Delete("/{id}", backend.handleDeleteEntry)
				entries.Post("/{id}/publish", backend.handlePublishEntry)
				entries.Post("/{id}/rollback/{version}", backend.handleRollbackEntry)
			})

			protected.Route("/media", func(media chi.Router) {
				media.Get("/", backend.handleListMedia)
				media.Post("/", backend.handleUploadMedia)
				media.Get("/preview/{id}", backend.handlePreviewMedia)
				media.Delete("/{id}", backend.handleDeleteMedia)
			})

			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(requireRole(sec.RoleAdmin))
				admin.Get("/users", backend.handleListUsers)
				admin.Get("/users/{id}/roles", backend.handleGetUserRoles)
				admin.Post("/users/{id}/roles", backend.handleSetUserRoles)
				admin.Get("/roles", backend.handleListRoles)
				admin.Post("/roles", backend.handleCreateRole)
			})
		})
	})

	return router
}

// record captures the request before any handler consumes the body.
func (backend *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := readBody(request)

		backend.mu.Lock()
		backend.requests = append(backend.requests, Request{
			Method:        request.Method,
			Path:          request.URL.Path,
			Query:         request.URL.RawQuery,
			Authorization: request.Header.Get("Authorization"),
			ContentType:   request.Header.Get("Content-Type"),
			RequestID:     request.Header.Get("X-Request-ID"),
			Body:          body,
		})
		backend.mu.Unlock()

		next.ServeHTTP(writer, request)
	})
}

// inject answers with the stubbed response when one is installed for the route.
func (backend *Backend) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		backend.mu.Lock()
		forced, ok := backend.stubs[request.Method+" "+request.URL.Path]
		backend.mu.Unlock()

		if ok {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(forced.status)
			_, _ = writer.Write([]byte(forced.body))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// issue signs a token with the claims the real backend uses.
func (backend *Backend) issue(userID, role string, ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(Secret))
	if err != nil {
		backend.t.Fatalf("cmstest: sign token: %v", err)
	}
	return signed
}

// # Helpers

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// readBody drains the body and puts an identical reader back for the handler.
func readBody(request *http.Request) ([]byte, error) {
	if request.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(request.Body)
	_ = request.Body.Close()
	request.Body = io.NopCloser(bytes.NewReader(data))
	return data, err
}

func writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

func writeError(writer http.ResponseWriter, status int, message string) {
	writeJSON(writer, status, map[string]string{"error": message})
}

func decode(request *http.Request, target any) error {
	return json.NewDecoder(request.Body).Decode(target)
}
