// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype

import (
	"maps"

	"github.com/taibuivan/cmsadmin/pkg/slice"
)

// # Wire → Domain

// MapContentType converts a backend payload into the domain shape.
//
// A null field collection becomes an empty, non-nil slice. Field order is
// preserved.
func MapContentType(raw RawContentType) ContentType {
	return ContentType{
		ID:        raw.ID,
		Name:      raw.Name,
		Slug:      raw.Slug,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
		Fields:    slice.Map(raw.Fields, MapContentField),
	}
}

// MapContentField converts one backend field. Null options become an empty map.
func MapContentField(raw RawContentField) ContentField {
	return ContentField{
		ID:            raw.ID,
		ContentTypeID: raw.ContentTypeID,
		Name:          raw.Name,
		Kind:          FieldKind(raw.Kind),
		Options:       cloneOptions(raw.Options),
	}
}

// MapContentTypes converts a list, keeping order.
func MapContentTypes(raw []RawContentType) []ContentType {
	return slice.Map(raw, MapContentType)
}

// # Domain → Wire

// ToRaw is the inverse of [MapContentType].
func ToRaw(contentType ContentType) RawContentType {
	return RawContentType{
		ID:        contentType.ID,
		Name:      contentType.Name,
		Slug:      contentType.Slug,
		CreatedAt: contentType.CreatedAt,
		UpdatedAt: contentType.UpdatedAt,
		Fields:    slice.Map(contentType.Fields, ToRawField),
	}
}

// ToRawField is the inverse of [MapContentField].
func ToRawField(field ContentField) RawContentField {
	return RawContentField{
		ID:            field.ID,
		ContentTypeID: field.ContentTypeID,
		Name:          field.Name,
		Kind:          string(field.Kind),
		Options:       cloneOptions(field.Options),
	}
}

func cloneOptions(options map[string]any) map[string]any {
	if options == nil {
		return map[string]any{}
	}
	return maps.Clone(options)
}
