// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

/*
TestPassword_FlagWins verifies stdin is not touched when the flag is set.
*/
func TestPassword_FlagWins(t *testing.T) {
	app := newApp(strings.NewReader("from-stdin\n"), &bytes.Buffer{}, &bytes.Buffer{})

	password, err := app.password("from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", password)
}

/*
TestPassword_FileStdinReadsLine verifies a redirected file is read as a line,
without a prompt, since it is not a terminal.
*/
func TestPassword_FileStdinReadsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\r\nignored\n"), 0o600))

	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	require.False(t, term.IsTerminal(int(file.Fd())))

	var stderr bytes.Buffer
	app := newApp(file, &bytes.Buffer{}, &stderr)

	password, err := app.password("")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
	assert.Empty(t, stderr.String())
}

/*
TestPassword_EmptyStdin verifies an exhausted reader yields an empty password
for the validator to reject.
*/
func TestPassword_EmptyStdin(t *testing.T) {
	app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	password, err := app.password("")
	require.NoError(t, err)
	assert.Empty(t, password)
}
