// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import "context"

type Repository interface {
	List(context context.Context) ([]User, error)
	Roles(context context.Context, userID string) ([]Role, error)
	SetRoles(context context.Context, userID string, roleIDs []int) error

	ListRoles(context context.Context) ([]Role, error)
	CreateRole(context context.Context, name string) error
}
