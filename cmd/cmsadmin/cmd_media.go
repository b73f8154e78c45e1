// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

func newMediaCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "media",
		Short: "Manage uploaded files",
	}

	var page pagination.Params
	list := &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			assets, meta, err := app.media.List(command.Context(), page)
			if err != nil {
				return err
			}

			table := respond.Table{Columns: []string{"ID", "FILENAME", "MIME", "SIZE", "CREATED"}}
			for _, asset := range assets {
				table.Rows = append(table.Rows, []string{
					asset.ID, asset.Filename, orDash(asset.Mime), strconv.FormatInt(asset.SizeBytes, 10), formatTime(asset.CreatedAt),
				})
			}
			return app.printer.Paginated(assets, meta, table)
		},
	}
	addPageFlags(list, &page)

	command.AddCommand(
		list,
		&cobra.Command{
			Use:   "upload <path>",
			Short: "Upload a local file",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()

				uploaded, err := app.media.Upload(command.Context(), file.Name(), file)
				if err != nil {
					return err
				}
				return app.printer.OK(uploaded, respond.Table{
					Columns: []string{"ID", "FILENAME", "URL"},
					Rows:    [][]string{{uploaded.ID, uploaded.Filename, uploaded.URL}},
				})
			},
		},
		&cobra.Command{
			Use:   "preview <id>",
			Short: "Print a signed, time-limited link to a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				preview, err := app.media.Preview(command.Context(), args[0])
				if err != nil {
					return err
				}
				return app.printer.OK(preview, respond.Table{Rows: [][]string{{preview.URL}}})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				if err := app.media.Delete(command.Context(), args[0]); err != nil {
					return err
				}
				return app.printer.Message("Media %s deleted.", args[0])
			},
		},
	)
	return command
}

func addPageFlags(command *cobra.Command, page *pagination.Params) {
	command.Flags().IntVar(&page.Limit, "limit", pagination.DefaultLimit, "items per page")
	command.Flags().IntVar(&page.Offset, "offset", 0, "items to skip")
}
