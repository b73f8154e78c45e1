// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contenttype

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/validate"
	"github.com/taibuivan/cmsadmin/pkg/pointer"
	"github.com/taibuivan/cmsadmin/pkg/slice"
	"github.com/taibuivan/cmsadmin/pkg/slug"
	"github.com/taibuivan/cmsadmin/pkg/uuid"
)

// Editor holds the state of the content-type form: a name, a slug and an
// ordered field list.
//
// # Modes
//
// An editor opened without an existing type is in create mode: fields are
// kept locally under generated IDs and sent only by [Editor.Submit]. An editor
// opened on a stored type is in edit mode: every field addition or removal is
// a request issued immediately.
//
// Fields that a create-mode submit could not store stay queued (see
// [Editor.Pending]) and are sent by the next [Editor.Submit].
//
// # Concurrency
//
// Editor is not safe for concurrent use.
type Editor struct {
	service  *Service
	original *ContentType
	name     string
	slug     string
	fields   []ContentField
	unsent   []ContentField
}

// NewEditor opens the form. A nil existing type starts create mode.
func NewEditor(service *Service, existing *ContentType) *Editor {
	editor := &Editor{service: service, fields: []ContentField{}}
	if existing != nil {
		editor.load(*existing)
	}
	return editor
}

// Creating reports whether the form describes a type not yet stored.
func (editor *Editor) Creating() bool {
	return editor.original == nil
}

func (editor *Editor) Name() string { return editor.name }
func (editor *Editor) Slug() string { return editor.slug }

// Fields returns a copy of the current field list.
func (editor *Editor) Fields() []ContentField {
	return slices.Clone(editor.fields)
}

// Pending returns the queued fields the backend has not stored yet, in the
// order they will be sent.
func (editor *Editor) Pending() []ContentField {
	if editor.Creating() {
		return slices.Clone(editor.fields)
	}
	return slices.Clone(editor.unsent)
}

// SetName updates the name. In create mode the slug follows the name.
func (editor *Editor) SetName(name string) {
	editor.name = name
	if editor.Creating() {
		editor.slug = slug.Derive(name)
	}
}

// SetSlug overrides the slug.
func (editor *Editor) SetSlug(value string) {
	editor.slug = value
}

// AddField appends a field. A name that is blank after trimming is ignored and
// yields (nil, nil).
func (editor *Editor) AddField(context context.Context, name string, kind FieldKind) (*ContentField, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if kind == "" {
		kind = KindText
	}

	if editor.Creating() {
		validator := &validate.Validator{}
		if err := validator.OneOf(FieldKindName, string(kind), kindNames()...).Err(); err != nil {
			return nil, err
		}

		field := ContentField{ID: uuid.Local(), Name: name, Kind: kind, Options: map[string]any{}}
		editor.fields = append(editor.fields, field)
		return &field, nil
	}

	stored, err := editor.service.AddField(context, editor.original.ID, FieldInput{Name: name, Kind: kind})
	if err != nil {
		return nil, err
	}

	editor.fields = append(editor.fields, *stored)
	return stored, nil
}

// DeleteField removes one field. In edit mode it issues exactly one DELETE and
// drops the field locally only once that succeeds; the list is not refetched.
// A queued field that was never stored is dropped without a request.
func (editor *Editor) DeleteField(context context.Context, fieldID string) error {
	if slices.ContainsFunc(editor.unsent, func(field ContentField) bool { return field.ID == fieldID }) {
		editor.unsent = slice.Filter(editor.unsent, func(field ContentField) bool { return field.ID != fieldID })
		return nil
	}

	if !slices.ContainsFunc(editor.fields, func(field ContentField) bool { return field.ID == fieldID }) {
		return apperr.ValidationError("Field is not part of this content type",
			apperr.FieldError{Field: FieldID, Message: fieldID})
	}

	if !editor.Creating() {
		if err := editor.service.DeleteField(context, editor.original.ID, fieldID); err != nil {
			return err
		}
	}

	editor.fields = slice.Filter(editor.fields, func(field ContentField) bool { return field.ID != fieldID })
	return nil
}

// Submit stores the form.
//
// In edit mode the name and slug are updated. In create mode the type is
// created. Queued fields are then added in order. A failing field add stops
// the sequence and returns the snapshot so far together with the error; the
// created type is not removed and the failing field and those after it stay
// queued for the next Submit. Either way the editor switches to edit mode on
// the stored type.
func (editor *Editor) Submit(context context.Context) (*ContentType, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, editor.name).Required(FieldSlug, editor.slug)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if editor.Creating() {
		created, err := editor.service.Create(context, CreateInput{Name: editor.name, Slug: editor.slug})
		if err != nil {
			return nil, err
		}
		editor.unsent = editor.fields
		editor.load(*created)
	} else if err := editor.submitUpdate(context); err != nil {
		return nil, err
	}

	return editor.flush(context)
}

func (editor *Editor) submitUpdate(context context.Context) error {
	updated, err := editor.service.Update(context, editor.original.ID, UpdateInput{
		Name: pointer.To(strings.TrimSpace(editor.name)),
		Slug: pointer.To(strings.TrimSpace(editor.slug)),
	})
	if err != nil {
		return err
	}

	snapshot := *editor.original
	if updated != nil {
		snapshot = *updated
	} else {
		snapshot.Name = strings.TrimSpace(editor.name)
		snapshot.Slug = strings.TrimSpace(editor.slug)
	}
	snapshot.Fields = slices.Clone(editor.fields)

	editor.load(snapshot)
	return nil
}

// flush adds the queued fields in order, dropping each from the queue once
// stored.
func (editor *Editor) flush(context context.Context) (*ContentType, error) {
	for len(editor.unsent) > 0 {
		field := editor.unsent[0]
		stored, err := editor.service.AddField(context, editor.original.ID, FieldInput{Name: field.Name, Kind: field.Kind, Options: field.Options})
		if err != nil {
			editor.original.Fields = slices.Clone(editor.fields)
			return editor.snapshot(), fmt.Errorf("field %q: %w", field.Name, err)
		}
		editor.fields = append(editor.fields, *stored)
		editor.unsent = editor.unsent[1:]
	}

	editor.unsent = nil
	editor.original.Fields = slices.Clone(editor.fields)
	return editor.snapshot(), nil
}

// load switches the editor to edit mode on contentType.
func (editor *Editor) load(contentType ContentType) {
	if contentType.Fields == nil {
		contentType.Fields = []ContentField{}
	}
	editor.original = &contentType
	editor.name = contentType.Name
	editor.slug = contentType.Slug
	editor.fields = slices.Clone(contentType.Fields)
}

func (editor *Editor) snapshot() *ContentType {
	snapshot := *editor.original
	snapshot.Fields = slices.Clone(editor.fields)
	return &snapshot
}
