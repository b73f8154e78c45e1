// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

func newRootCommand(app *app) *cobra.Command {
	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Administer a CMS backend: content types, entries, media and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if command.Annotations[annotationSession] == sessionNone || command.Name() == "help" {
				return nil
			}
			return app.setup(command)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&app.flags.baseURL, "base-url", "", "backend address (overrides CMS_API_BASE_URL)")
	flags.StringVarP(&app.flags.output, "output", "o", "", "output format: table or json (overrides CMS_OUTPUT)")
	flags.BoolVar(&app.flags.debug, "debug", false, "log requests to stderr (overrides CMS_DEBUG)")

	root.AddCommand(
		newVersionCommand(app),
		newLoginCommand(app),
		newRegisterCommand(app),
		newLogoutCommand(app),
		newWhoAmICommand(app),
		newHealthCommand(app),
		newDashboardCommand(app),
		newTypesCommand(app),
		newMediaCommand(app),
		newUsersCommand(app),
		newRolesCommand(app),
		newEntriesCommand(app),
		newPublicCommand(app),
	)
	return root
}

func newVersionCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the client version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionNone},
		RunE: func(command *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(app.stdout, "%s %s\n", constants.AppName, constants.AppVersion)
			return err
		},
	}
}

// # Formatting Helpers

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatTime(*value)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
