// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/auth"
	"github.com/taibuivan/cmsadmin/internal/contenttype"
	"github.com/taibuivan/cmsadmin/internal/dashboard"
	"github.com/taibuivan/cmsadmin/internal/entry"
	"github.com/taibuivan/cmsadmin/internal/media"
	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/config"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/internal/platform/ctxutil"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/internal/platform/session"
	"github.com/taibuivan/cmsadmin/internal/public"
	"github.com/taibuivan/cmsadmin/internal/system"
	"github.com/taibuivan/cmsadmin/internal/users"
	"github.com/taibuivan/cmsadmin/pkg/uuid"
)

// annotationSession marks commands that run without a stored token
// (optional) or without any wiring at all (none).
const (
	annotationSession = "session"
	sessionOptional   = "optional"
	sessionNone       = "none"
)

var errNotLoggedIn = errors.New("not logged in; run `cmsadmin login` first")

// app holds everything a command needs once the invocation is set up.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags struct {
		baseURL string
		output  string
		debug   bool
	}

	cfg     *config.Config
	logger  *slog.Logger
	printer *respond.Printer
	store   session.Store
	closers []func() error

	auth         *auth.Service
	contentTypes *contenttype.Service
	dashboard    *dashboard.Service
	media        *media.Service
	users        *users.Service
	entries      *entry.Service
	public       *public.Service
	system       *system.Service
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		printer: respond.New(stdout, stderr, respond.FormatTable),
	}
}

// setup loads configuration and wires the services. It runs before every
// command.
func (app *app) setup(command *cobra.Command) error {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := command.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = app.flags.baseURL
	}
	if flags.Changed("output") {
		cfg.Output = app.flags.output
	}
	if flags.Changed("debug") {
		cfg.Debug = app.flags.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg
	app.printer = respond.New(app.stdout, app.stderr, cfg.Output)

	// ── 2. Logger ─────────────────────────────────────────────────────────
	requestID := uuid.New()
	app.logger = newLogger(app.stderr, cfg.Debug).With(slog.String("request_id", requestID))

	ctx := ctxutil.WithRequestID(command.Context(), requestID)
	ctx = ctxutil.WithLogger(ctx, app.logger)
	command.SetContext(ctx)

	app.logger.Debug("configuration_loaded",
		slog.String("base_url", cfg.BaseURL),
		slog.String("token_store", cfg.TokenStore),
		slog.String("command", command.CommandPath()),
	)

	// ── 3. Session Store ──────────────────────────────────────────────────
	store, closeStore, err := session.Open(ctx, cfg, app.logger)
	if err != nil {
		return err
	}
	app.store = store
	app.closers = append(app.closers, closeStore)

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	client, err := apiclient.NewFromConfig(cfg, store)
	if err != nil {
		return err
	}

	app.auth = auth.NewService(auth.NewAPIRepository(client), store, app.logger)
	app.contentTypes = contenttype.NewService(contenttype.NewAPIRepository(client), app.logger)
	app.dashboard = dashboard.NewService(client, app.logger)
	app.media = media.NewService(media.NewAPIRepository(client), app.logger)
	app.users = users.NewService(users.NewAPIRepository(client), app.logger)
	app.entries = entry.NewService(entry.NewAPIRepository(client), app.logger)
	app.public = public.NewService(client)
	app.system = system.NewService(client, system.Dependencies{
		CheckStore: func(context context.Context) error {
			return session.Check(context, store)
		},
	}, app.logger)

	// ── 5. Route Guard ────────────────────────────────────────────────────
	if command.Annotations[annotationSession] != sessionOptional && !app.auth.IsAuthenticated(ctx) {
		return errNotLoggedIn
	}
	return nil
}

// fail prints err. A backend 401 on an authenticated command also drops the
// stored token.
func (app *app) fail(command *cobra.Command, err error) {
	app.printer.Error(err)

	if app.store == nil || !apperr.IsUnauthorized(err) {
		return
	}
	if command != nil && command.Annotations[annotationSession] == sessionOptional {
		return
	}

	if clearErr := app.store.Clear(context.Background()); clearErr != nil {
		app.logger.Error("session_clear_failed", slog.Any("error", clearErr))
	}
	app.printer.Notice("Your session has expired or was rejected. Run `%s login` to sign in again.", constants.AppName)
}

func (app *app) close() {
	for _, closer := range app.closers {
		if err := closer(); err != nil && app.logger != nil {
			app.logger.Error("close_failed", slog.Any("error", err))
		}
	}
}

// newLogger builds the JSON logger. Results own stdout, so records go to
// stderr, and only warnings unless debugging.
func newLogger(writer io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// optional marks a command as usable without a session.
func optional(command *cobra.Command) *cobra.Command {
	if command.Annotations == nil {
		command.Annotations = map[string]string{}
	}
	command.Annotations[annotationSession] = sessionOptional
	return command
}

func usageError(format string, args ...any) error {
	return apperr.ValidationError(fmt.Sprintf(format, args...))
}
