// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/cmstest"
)

// console runs invocations against one fake backend and one token file.
type console struct {
	t         *testing.T
	backend   *cmstest.Backend
	tokenFile string
}

func newConsole(t *testing.T) *console {
	t.Helper()
	backend := cmstest.New(t)
	tokenFile := filepath.Join(t.TempDir(), "session.json")

	t.Setenv("CMS_API_BASE_URL", backend.URL())
	t.Setenv("CMS_TOKEN_STORE", "file")
	t.Setenv("CMS_TOKEN_FILE", tokenFile)
	t.Setenv("CMS_OUTPUT", "table")
	t.Setenv("CMS_DEBUG", "false")

	return &console{t: t, backend: backend, tokenFile: tokenFile}
}

// exec runs one invocation and returns the exit code and both streams.
func (console *console) exec(stdin string, args ...string) (int, string, string) {
	console.t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (console *console) login() {
	console.t.Helper()
	code, _, stderr := console.exec("", "login", "--email", cmstest.AdminEmail, "--password", cmstest.AdminPassword)
	require.Equal(console.t, 0, code, stderr)
}

/*
TestRun_GuardRequiresLogin verifies a protected command fails locally
without a stored token and never reaches the backend.
*/
func TestRun_GuardRequiresLogin(t *testing.T) {
	console := newConsole(t)

	code, stdout, stderr := console.exec("", "types", "list")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not logged in")
	assert.Empty(t, console.backend.Requests())
}

/*
TestRun_LoginStoresToken verifies a successful login persists the token and
prints the user without it.
*/
func TestRun_LoginStoresToken(t *testing.T) {
	console := newConsole(t)

	code, stdout, stderr := console.exec("", "login", "--email", cmstest.AdminEmail, "--password", cmstest.AdminPassword)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, cmstest.AdminEmail)

	stored, err := os.ReadFile(console.tokenFile)
	require.NoError(t, err)
	assert.Contains(t, string(stored), "cms_token")
	assert.NotContains(t, stdout, "eyJ")
}

/*
TestRun_LoginPasswordFromStdin verifies the password fallback to stdin.
*/
func TestRun_LoginPasswordFromStdin(t *testing.T) {
	console := newConsole(t)

	code, _, stderr := console.exec(cmstest.AdminPassword+"\n", "login", "--email", cmstest.AdminEmail)
	require.Equal(t, 0, code, stderr)

	code, _, _ = console.exec("", "whoami")
	assert.Equal(t, 0, code)
}

/*
TestRun_LoginRejected verifies a failed login prints the backend message and
leaves no session behind.
*/
func TestRun_LoginRejected(t *testing.T) {
	console := newConsole(t)

	code, _, stderr := console.exec("", "login", "--email", cmstest.AdminEmail, "--password", "wrong")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid credentials")
	assert.NotContains(t, stderr, "session has expired")
	_, err := os.Stat(console.tokenFile)
	assert.True(t, os.IsNotExist(err))
}

/*
TestRun_CreateTypeWithFields verifies the create flow posts the type and then
each field in order, and that the result is listed afterwards.
*/
func TestRun_CreateTypeWithFields(t *testing.T) {
	console := newConsole(t)
	console.login()

	code, stdout, stderr := console.exec("", "types", "create", "--name", "Blog Post", "--fields", "title:text, body:wysiwyg")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "blog-post")
	assert.Contains(t, stdout, "wysiwyg")

	require.Len(t, console.backend.RequestsTo(http.MethodPost, "/api/content-types"), 1)

	code, stdout, stderr = console.exec("", "-o", "json", "types", "list")
	require.Equal(t, 0, code, stderr)

	var listed struct {
		Data []struct {
			Slug   string `json:"slug"`
			Fields []struct {
				Name string `json:"name"`
				Kind string `json:"kind"`
			} `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "blog-post", listed.Data[0].Slug)
	require.Len(t, listed.Data[0].Fields, 2)
	assert.Equal(t, "title", listed.Data[0].Fields[0].Name)
	assert.Equal(t, "body", listed.Data[0].Fields[1].Name)
}

/*
TestRun_CreateTypeReportsUnsentFields verifies a failed field add prints the
created type and names every field that was not stored.
*/
func TestRun_CreateTypeReportsUnsentFields(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Stub(http.MethodPost, "/api/content-types", http.StatusCreated,
		`{"data":{"ID":"ct-archive","Name":"Archive","Slug":"archive","Fields":null}}`)
	console.backend.Stub(http.MethodPost, "/api/content-types/ct-archive/fields", http.StatusInternalServerError, `{"error":"boom"}`)

	code, stdout, stderr := console.exec("", "types", "create", "--name", "Archive", "--fields", "first,second:number")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "ct-archive")
	assert.Contains(t, stderr, `error: field "first": boom`)
	assert.Contains(t, stderr, "Not added: first:text, second:number.")
	assert.Contains(t, stderr, "types field add ct-archive")
}

/*
TestRun_CreateTypeASCIISlug verifies the accent-free slug option.
*/
func TestRun_CreateTypeASCIISlug(t *testing.T) {
	console := newConsole(t)
	console.login()

	code, stdout, stderr := console.exec("", "types", "create", "--name", "Café Menu", "--ascii-slug")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "cafe-menu")
}

/*
TestRun_WhoAmI verifies the decoded identity of the seeded admin.
*/
func TestRun_WhoAmI(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Reset()

	code, stdout, stderr := console.exec("", "whoami")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "admin")
	assert.Contains(t, stdout, "yes")
	assert.Empty(t, console.backend.Requests())
}

/*
TestRun_ValidationFailsLocally verifies invalid input is rejected before any
request is sent.
*/
func TestRun_ValidationFailsLocally(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Reset()

	code, _, stderr := console.exec("", "types", "create", "--fields", "title:colour")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")
	assert.Empty(t, console.backend.Requests())
}

/*
TestRun_UnauthorizedClearsSession verifies a backend 401 on a protected
command drops the stored token so the next command asks for a login.
*/
func TestRun_UnauthorizedClearsSession(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Stub(http.MethodGet, "/api/content-types", http.StatusUnauthorized, `{"error":"token expired"}`)

	code, _, stderr := console.exec("", "types", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "token expired")
	assert.Contains(t, stderr, "login")

	code, _, stderr = console.exec("", "types", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not logged in")
}

/*
TestRun_JSONErrors verifies failures are written as an error envelope on
stderr in JSON mode.
*/
func TestRun_JSONErrors(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Stub(http.MethodGet, "/api/media", http.StatusInternalServerError, `oops`)

	code, stdout, stderr := console.exec("", "--output", "json", "media", "list")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)

	var envelope struct {
		Error  string `json:"error"`
		Code   string `json:"code"`
		Status int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &envelope))
	assert.Equal(t, "REQUEST_HTTP", envelope.Code)
	assert.Equal(t, http.StatusInternalServerError, envelope.Status)
}

/*
TestRun_PublicWithoutSession verifies anonymous commands work without login.
*/
func TestRun_PublicWithoutSession(t *testing.T) {
	console := newConsole(t)

	code, stdout, stderr := console.exec("", "public", "list", "post")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "of 0")

	requests := console.backend.RequestsTo(http.MethodGet, "/api/public/post")
	require.Len(t, requests, 1)
	assert.Empty(t, requests[0].Authorization)
}

/*
TestRun_Logout verifies logout forgets the token without calling the backend.
*/
func TestRun_Logout(t *testing.T) {
	console := newConsole(t)
	console.login()
	console.backend.Reset()

	code, stdout, _ := console.exec("", "logout")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Logged out.")
	assert.Empty(t, console.backend.Requests())

	code, _, _ = console.exec("", "whoami")
	assert.Equal(t, 1, code)
}

/*
TestRun_Version verifies the version command needs no configuration.
*/
func TestRun_Version(t *testing.T) {
	t.Setenv("CMS_TOKEN_STORE", "bogus")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "cmsadmin")
}
