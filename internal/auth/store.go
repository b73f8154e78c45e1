// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// Repository exchanges credentials for a session with the backend.
type Repository interface {
	Login(context context.Context, input LoginInput) (*Session, error)
	Register(context context.Context, input RegisterInput) (*Session, error)
}
