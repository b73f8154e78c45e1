// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/internal/users"
	"github.com/taibuivan/cmsadmin/pkg/query"
)

func newUsersCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "users",
		Short: "Administer accounts (admin only)",
	}

	var roleList string
	setRoles := &cobra.Command{
		Use:   "set-roles <user-id>",
		Short: "Replace the roles of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			roleIDs, err := query.IntSlice(query.StringSlice(roleList))
			if err != nil {
				return usageError("--roles: %v", err)
			}

			if err := app.users.SetRoles(command.Context(), args[0], roleIDs); err != nil {
				return err
			}
			return app.printer.Message("Roles of %s updated.", args[0])
		},
	}
	setRoles.Flags().StringVar(&roleList, "roles", "", "comma-separated role IDs, e.g. 1,2")

	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List accounts",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				list, err := app.users.List(command.Context())
				if err != nil {
					return err
				}

				table := respond.Table{Columns: []string{"ID", "NAME", "EMAIL", "ROLES", "CREATED"}}
				for _, user := range list {
					table.Rows = append(table.Rows, []string{
						user.ID, user.Name, user.Email, orDash(strings.Join(user.Roles, ",")), formatTime(user.CreatedAt),
					})
				}
				return app.printer.OK(list, table)
			},
		},
		&cobra.Command{
			Use:   "roles <user-id>",
			Short: "Show the roles of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				roles, err := app.users.Roles(command.Context(), args[0])
				if err != nil {
					return err
				}
				return app.printer.OK(roles, roleTable(roles))
			},
		},
		setRoles,
	)
	return command
}

func newRolesCommand(app *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "roles",
		Short: "Manage the role catalogue (admin only)",
	}

	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List roles",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				roles, err := app.users.ListRoles(command.Context())
				if err != nil {
					return err
				}
				return app.printer.OK(roles, roleTable(roles))
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a role",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				if err := app.users.CreateRole(command.Context(), args[0]); err != nil {
					return err
				}
				return app.printer.Message("Role %s created.", strings.TrimSpace(args[0]))
			},
		},
	)
	return command
}

func roleTable(roles []users.Role) respond.Table {
	table := respond.Table{Columns: []string{"ID", "NAME"}}
	for _, role := range roles {
		table.Rows = append(table.Rows, []string{strconv.Itoa(role.ID), role.Name})
	}
	return table
}
