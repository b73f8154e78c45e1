// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
)

var errUnhealthy = errors.New("one or more checks failed")

func newHealthCommand(app *app) *cobra.Command {
	return optional(&cobra.Command{
		Use:   "health",
		Short: "Check the backend and the session store",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			report := app.system.Readiness(command.Context())

			table := respond.Table{Columns: []string{"CHECK", "OK", "ERROR"}}
			for _, check := range report.Checks {
				table.Rows = append(table.Rows, []string{check.Name, yesNo(check.IsOK), orDash(check.Error)})
			}
			if err := app.printer.OK(report, table); err != nil {
				return err
			}

			if !report.Healthy() {
				return errUnhealthy
			}
			return nil
		},
	})
}

// newDashboardCommand prints the landing counts. A failed count is shown as 0
// and reported after the table.
func newDashboardCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show content type, media and user counts",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(command.Context(), constants.DashboardTimeout)
			defer cancel()

			stats, statsErr := app.dashboard.Stats(ctx)

			table := respond.Table{
				Columns: []string{"CONTENT TYPES", "MEDIA", "USERS"},
				Rows: [][]string{{
					strconv.Itoa(stats.ContentTypes), strconv.Itoa(stats.Media), strconv.Itoa(stats.Users),
				}},
			}
			if err := app.printer.OK(stats, table); err != nil {
				return err
			}
			return statsErr
		},
	}
}
