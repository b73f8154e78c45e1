// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/contenttype"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
	"github.com/taibuivan/cmsadmin/pkg/query"
	"github.com/taibuivan/cmsadmin/pkg/slug"
)

func newTypesCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:     "types",
		Aliases: []string{"content-types"},
		Short:   "Manage content types and their fields",
	}

	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List content types",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				list, err := app.contentTypes.List(command.Context())
				if err != nil {
					return err
				}

				table := respond.Table{Columns: []string{"ID", "NAME", "SLUG", "FIELDS", "UPDATED"}}
				for _, contentType := range list {
					table.Rows = append(table.Rows, []string{
						contentType.ID, contentType.Name, contentType.Slug,
						strconv.Itoa(len(contentType.Fields)), formatTime(contentType.UpdatedAt),
					})
				}
				return app.printer.OK(list, table)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a content type and its fields",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				contentType, err := app.contentTypes.Get(command.Context(), args[0])
				if err != nil {
					return err
				}
				return app.printer.OK(contentType, contentTypeTable(contentType))
			},
		},
		newTypesCreateCommand(app),
		newTypesUpdateCommand(app),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a content type",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				if err := app.contentTypes.Delete(command.Context(), args[0]); err != nil {
					return err
				}
				return app.printer.Message("Content type %s deleted.", args[0])
			},
		},
		&cobra.Command{
			Use:   "kinds",
			Short: "List the available field kinds",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				kinds := contenttype.Kinds()
				table := respond.Table{Columns: []string{"KIND"}}
				for _, kind := range kinds {
					table.Rows = append(table.Rows, []string{string(kind)})
				}
				return app.printer.OK(kinds, table)
			},
		},
		newFieldCommand(app),
	)
	return command
}

func newTypesCreateCommand(app *app) *cobra.Command {
	var name, slugFlag, fields string
	var ascii bool

	command := &cobra.Command{
		Use:   "create",
		Short: "Create a content type, optionally with fields",
		Long: `Create a content type. The slug is derived from the name unless --slug is given.
Fields are added in order after the type exists, e.g. --fields "title:text,body:wysiwyg".
A field without a kind is text.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			editor := contenttype.NewEditor(app.contentTypes, nil)
			editor.SetName(name)
			switch {
			case slugFlag != "":
				editor.SetSlug(slugFlag)
			case ascii:
				editor.SetSlug(slug.From(name))
			}

			for _, pair := range query.StringSlice(fields) {
				fieldName, kind := query.Pair(pair, string(contenttype.KindText))
				if _, err := editor.AddField(command.Context(), fieldName, contenttype.FieldKind(kind)); err != nil {
					return err
				}
			}

			created, err := editor.Submit(command.Context())
			if created != nil {
				if printErr := app.printer.OK(created, contentTypeTable(created)); printErr != nil && err == nil {
					return printErr
				}
			}
			if pending := editor.Pending(); err != nil && created != nil && len(pending) > 0 {
				names := make([]string, 0, len(pending))
				for _, field := range pending {
					names = append(names, field.Name+":"+string(field.Kind))
				}
				app.printer.Notice("Not added: %s. Retry with `%s types field add %s --name <name> --kind <kind>`.",
					strings.Join(names, ", "), constants.AppName, created.ID)
			}
			return err
		},
	}

	command.Flags().StringVar(&name, "name", "", "display name")
	command.Flags().StringVar(&slugFlag, "slug", "", "URL identifier (derived from the name when empty)")
	command.Flags().BoolVar(&ascii, "ascii-slug", false, "derive an accent-free ASCII slug from the name")
	command.Flags().StringVar(&fields, "fields", "", "comma-separated name:kind pairs")
	return command
}

func newTypesUpdateCommand(app *app) *cobra.Command {
	var name, slug string

	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a content type or change its slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			var input contenttype.UpdateInput
			if command.Flags().Changed("name") {
				input.Name = pointer.To(name)
			}
			if command.Flags().Changed("slug") {
				input.Slug = pointer.To(slug)
			}

			updated, err := app.contentTypes.Update(command.Context(), args[0], input)
			if err != nil {
				return err
			}
			if updated == nil {
				return app.printer.Message("Content type %s updated.", args[0])
			}
			return app.printer.OK(updated, contentTypeTable(updated))
		},
	}

	command.Flags().StringVar(&name, "name", "", "new display name")
	command.Flags().StringVar(&slug, "slug", "", "new URL identifier")
	return command
}

func newFieldCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "field",
		Short: "Add or remove fields of a stored content type",
	}

	var name, kind string
	add := &cobra.Command{
		Use:   "add <type-id>",
		Short: "Append a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			editor, err := app.openEditor(command, args[0])
			if err != nil {
				return err
			}

			field, err := editor.AddField(command.Context(), name, contenttype.FieldKind(kind))
			if err != nil {
				return err
			}
			if field == nil {
				return usageError("--name must not be blank")
			}
			return app.printer.OK(field, fieldTable([]contenttype.ContentField{*field}))
		},
	}
	add.Flags().StringVar(&name, "name", "", "field name")
	add.Flags().StringVar(&kind, "kind", string(contenttype.KindText), "field kind ("+kindList()+")")

	remove := &cobra.Command{
		Use:     "delete <type-id> <field-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a field",
		Args:    cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			editor, err := app.openEditor(command, args[0])
			if err != nil {
				return err
			}

			if err := editor.DeleteField(command.Context(), args[1]); err != nil {
				return err
			}
			return app.printer.OK(editor.Fields(), fieldTable(editor.Fields()))
		},
	}

	command.AddCommand(add, remove)
	return command
}

func (app *app) openEditor(command *cobra.Command, id string) (*contenttype.Editor, error) {
	stored, err := app.contentTypes.Get(command.Context(), id)
	if err != nil {
		return nil, err
	}
	return contenttype.NewEditor(app.contentTypes, stored), nil
}

func contentTypeTable(contentType *contenttype.ContentType) respond.Table {
	table := respond.Table{Columns: []string{"TYPE", "SLUG", "ID", "FIELD", "KIND", "FIELD ID"}}
	head := []string{contentType.Name, contentType.Slug, contentType.ID}

	if len(contentType.Fields) == 0 {
		table.Rows = append(table.Rows, append(head, "-", "-", "-"))
		return table
	}
	for i, field := range contentType.Fields {
		row := []string{"", "", ""}
		if i == 0 {
			row = head
		}
		table.Rows = append(table.Rows, append(row, field.Name, string(field.Kind), field.ID))
	}
	return table
}

func fieldTable(fields []contenttype.ContentField) respond.Table {
	table := respond.Table{Columns: []string{"FIELD ID", "NAME", "KIND", "TYPE ID"}}
	for _, field := range fields {
		table.Rows = append(table.Rows, []string{field.ID, field.Name, string(field.Kind), field.ContentTypeID})
	}
	return table
}

func kindList() string {
	names := make([]string, 0, len(contenttype.Kinds()))
	for _, kind := range contenttype.Kinds() {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}
