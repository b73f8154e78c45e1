// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "strings"

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Full access including user and role management
	RoleAdmin UserRole = "admin"

	// Can manage content types, entries and media
	RoleEditor UserRole = "editor"
)

// ParseRole normalizes a role name as issued by the backend ("Admin",
// "editor"). Unknown names are kept lowercased and rank below every known role.
func ParseRole(name string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(name)))
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level() && r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 20
	default:
		return 0
	}
}
