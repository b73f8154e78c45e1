// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taibuivan/cmsadmin/internal/auth"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/internal/platform/sec"
)

func newLoginCommand(app *app) *cobra.Command {
	var input auth.LoginInput

	command := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long:  "Sign in with email and password. Without --password the password is read from the first line of stdin.",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			password, err := app.password(input.Password)
			if err != nil {
				return err
			}
			input.Password = password

			result, err := app.auth.Login(command.Context(), input)
			if err != nil {
				return err
			}
			return app.printSession(result)
		},
	}

	command.Flags().StringVar(&input.Email, "email", "", "account email")
	command.Flags().StringVar(&input.Password, "password", "", "account password")
	return optional(command)
}

func newRegisterCommand(app *app) *cobra.Command {
	var input auth.RegisterInput

	command := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in with it",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			password, err := app.password(input.Password)
			if err != nil {
				return err
			}
			input.Password = password

			result, err := app.auth.Register(command.Context(), input)
			if err != nil {
				return err
			}
			return app.printSession(result)
		},
	}

	command.Flags().StringVar(&input.Email, "email", "", "account email")
	command.Flags().StringVar(&input.Username, "username", "", "account username")
	command.Flags().StringVar(&input.Password, "password", "", "account password")
	return optional(command)
}

func newLogoutCommand(app *app) *cobra.Command {
	return optional(&cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			if err := app.auth.Logout(command.Context()); err != nil {
				return err
			}
			return app.printer.Message("Logged out.")
		},
	})
}

func newWhoAmICommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show what the stored token says about you",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			identity, err := app.auth.CurrentUser(command.Context())
			if err != nil {
				return err
			}
			return app.printer.OK(identity, respond.Table{
				Columns: []string{"USER", "ROLE", "ADMIN", "EXPIRES", "EXPIRED"},
				Rows: [][]string{{
					identity.UserID,
					orDash(string(identity.Role)),
					yesNo(app.auth.HasRole(command.Context(), sec.RoleAdmin)),
					formatTime(identity.ExpiresAt),
					yesNo(identity.Expired),
				}},
			})
		},
	}
}

// password returns flagValue when set. Otherwise it prompts on a terminal
// without echo, or reads the first line of piped stdin.
func (app *app) password(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if file, ok := app.stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fmt.Fprint(app.stderr, "Password: ")
		secret, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(app.stderr)
		if err != nil {
			return "", fmt.Errorf("cmsadmin_password_read_failed: %w", err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(app.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (app *app) printSession(result *auth.Session) error {
	if result.Token == "" {
		app.printer.Notice("The backend did not return a token; you are not signed in.")
	}
	if result.User == nil {
		return app.printer.Message("Done.")
	}
	return app.printer.OK(result.User, respond.Table{
		Columns: []string{"ID", "NAME", "EMAIL", "ROLE"},
		Rows:    [][]string{{result.User.ID, result.User.Name, result.User.Email, orDash(result.User.Role)}},
	})
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
