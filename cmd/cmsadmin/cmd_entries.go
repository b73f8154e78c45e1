// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/entry"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
)

func newEntriesCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "entries",
		Short: "Manage the entries of a content type",
	}

	var page pagination.Params
	list := &cobra.Command{
		Use:   "list <type-slug>",
		Short: "List entries of a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			entries, meta, err := app.entries.List(command.Context(), args[0], page)
			if err != nil {
				return err
			}
			return app.printer.Paginated(entries, meta, entryTable(entries...))
		},
	}
	addPageFlags(list, &page)
	list.Flags().StringVar(&page.Sort, "sort", "", "sort key, e.g. -published_at")

	command.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <type-slug> <id>",
			Short: "Show one entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(command *cobra.Command, args []string) error {
				found, err := app.entries.Get(command.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return app.printer.OK(found, entryTable(*found))
			},
		},
		newEntriesCreateCommand(app),
		newEntriesUpdateCommand(app),
		&cobra.Command{
			Use:   "delete <type-slug> <id>",
			Short: "Delete an entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(command *cobra.Command, args []string) error {
				if err := app.entries.Delete(command.Context(), args[0], args[1]); err != nil {
					return err
				}
				return app.printer.Message("Entry %s deleted.", args[1])
			},
		},
		&cobra.Command{
			Use:   "publish <type-slug> <id>",
			Short: "Publish an entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(command *cobra.Command, args []string) error {
				if err := app.entries.Publish(command.Context(), args[0], args[1]); err != nil {
					return err
				}
				return app.printer.Message("Entry %s published.", args[1])
			},
		},
		&cobra.Command{
			Use:   "rollback <type-slug> <id> <version>",
			Short: "Restore an earlier version of an entry",
			Args:  cobra.ExactArgs(3),
			RunE: func(command *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[2])
				if err != nil {
					return usageError("version must be a number, got %q", args[2])
				}
				if err := app.entries.Rollback(command.Context(), args[0], args[1], version); err != nil {
					return err
				}
				return app.printer.Message("Entry %s rolled back to version %d.", args[1], version)
			},
		},
	)
	return command
}

func newEntriesCreateCommand(app *app) *cobra.Command {
	var slug, status, data string

	command := &cobra.Command{
		Use:   "create <type-slug>",
		Short: "Create an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			fields, err := parseData(data)
			if err != nil {
				return err
			}

			created, err := app.entries.Create(command.Context(), args[0], entry.CreateInput{
				Slug:   slug,
				Status: entry.Status(status),
				Data:   fields,
			})
			if err != nil {
				return err
			}
			return app.printer.OK(created, entryTable(*created))
		},
	}

	command.Flags().StringVar(&slug, "slug", "", "entry slug")
	command.Flags().StringVar(&status, "status", string(entry.StatusDraft), "draft, published or archived")
	command.Flags().StringVar(&data, "data", "{}", "entry fields as a JSON object")
	return command
}

func newEntriesUpdateCommand(app *app) *cobra.Command {
	var status, data string

	command := &cobra.Command{
		Use:   "update <type-slug> <id>",
		Short: "Change the status or data of an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			var input entry.UpdateInput
			if command.Flags().Changed("status") {
				input.Status = pointer.To(entry.Status(status))
			}
			if command.Flags().Changed("data") {
				fields, err := parseData(data)
				if err != nil {
					return err
				}
				input.Data = fields
			}

			if err := app.entries.Update(command.Context(), args[0], args[1], input); err != nil {
				return err
			}
			return app.printer.Message("Entry %s updated.", args[1])
		},
	}

	command.Flags().StringVar(&status, "status", "", "draft, published or archived")
	command.Flags().StringVar(&data, "data", "", "replacement fields as a JSON object")
	return command
}

// parseData decodes the --data flag. Only a JSON object is accepted.
func parseData(raw string) (map[string]any, error) {
	fields := map[string]any{}
	if raw == "" {
		return fields, nil
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, usageError("--data must be a JSON object: %v", err)
	}
	return fields, nil
}

func entryTable(entries ...entry.Entry) respond.Table {
	table := respond.Table{Columns: []string{"ID", "SLUG", "STATUS", "PUBLISHED", "UPDATED"}}
	for _, item := range entries {
		table.Rows = append(table.Rows, []string{
			item.ID, item.Slug, string(item.Status), formatOptionalTime(item.PublishedAt), formatTime(item.UpdatedAt),
		})
	}
	return table
}
