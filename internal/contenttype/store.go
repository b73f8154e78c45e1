// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype

import "context"

// Repository is the remote collection of content types.
type Repository interface {
	List(context context.Context) ([]ContentType, error)
	Get(context context.Context, id string) (*ContentType, error)
	Create(context context.Context, input CreateInput) (*ContentType, error)
	Update(context context.Context, id string, input UpdateInput) (*ContentType, error)
	Delete(context context.Context, id string) error

	AddField(context context.Context, contentTypeID string, input FieldInput) (*ContentField, error)
	DeleteField(context context.Context, contentTypeID, fieldID string) error
}
