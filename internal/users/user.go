// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package users administers backend accounts and the roles assigned to them.
// Every route it calls requires an admin token.
package users

import "time"

// User is an account as listed by the admin API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role is a named permission set.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// rawRole mirrors the backend model, serialized with capitalized keys.
type rawRole struct {
	ID   int    `json:"ID"`
	Name string `json:"Name"`
}

func mapRole(raw rawRole) Role {
	return Role(raw)
}

// Global field names for validation
const (
	FieldUserID = "user_id"
	FieldRoles  = "roles"
	FieldName   = "name"
)
