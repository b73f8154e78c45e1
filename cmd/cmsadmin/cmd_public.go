// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/public"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

// newPublicCommand reads published content. No session is needed.
func newPublicCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "public",
		Short: "Read published content anonymously",
	}

	var page pagination.Params
	list := optional(&cobra.Command{
		Use:   "list <type-slug>",
		Short: "List published entries of a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			entries, meta, err := app.public.ListPublished(command.Context(), args[0], page)
			if err != nil {
				return err
			}
			return app.printer.Paginated(entries, meta, entryTable(entries...))
		},
	})
	addPageFlags(list, &page)
	list.Flags().StringVar(&page.Sort, "sort", "", "sort key, e.g. -published_at")

	var limit int
	latest := optional(&cobra.Command{
		Use:   "latest",
		Short: "Show the newest " + public.LandingType + " entries",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			entries, err := app.public.Latest(command.Context(), limit)
			if err != nil {
				return err
			}
			return app.printer.OK(entries, entryTable(entries...))
		},
	})
	latest.Flags().IntVar(&limit, "limit", 3, "number of entries")

	command.AddCommand(
		list,
		optional(&cobra.Command{
			Use:   "get <type-slug> <id>",
			Short: "Show one published entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(command *cobra.Command, args []string) error {
				found, err := app.public.GetPublished(command.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return app.printer.OK(found, entryTable(*found))
			},
		}),
		latest,
	)
	return command
}
