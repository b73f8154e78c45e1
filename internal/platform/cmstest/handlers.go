// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cmstest

import (
	"encoding/json"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/cmsadmin/pkg/convert"
)

// # Wire Models
//
// These mirror the backend's persistence models, which are serialized without
// JSON tags and therefore carry capitalized keys.

type ContentType struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    []ContentField
}

type ContentField struct {
	ID            string
	ContentTypeID string
	Name          string
	Kind          string
	Options       json.RawMessage
}

type MediaAsset struct {
	ID        string
	Filename  string
	Mime      string
	SizeBytes int64
	URL       string
	Meta      json.RawMessage
	CreatedBy *string
	CreatedAt time.Time
}

// User is serialized through the backend's snake_case projection.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID   int
	Name string
}

type Entry struct {
	ID            string
	ContentTypeID string
	Slug          string
	Status        string
	Data          json.RawMessage
	PublishedAt   *time.Time
	CreatedBy     *string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	versions []json.RawMessage
}

// allowedKinds mirrors the backend's field kind check.
var allowedKinds = []string{"text", "string", "number", "bool", "boolean", "date", "json", "select", "image", "media", "wysiwyg"}

// # Seeding

// SeedContentType stores a content type directly and returns its ID.
func (backend *Backend) SeedContentType(name, slug string, fields ...ContentField) string {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	ct := &ContentType{ID: uuid.NewString(), Name: name, Slug: slug, CreatedAt: now(), UpdatedAt: now()}
	for _, field := range fields {
		if field.ID == "" {
			field.ID = uuid.NewString()
		}
		field.ContentTypeID = ct.ID
		ct.Fields = append(ct.Fields, field)
	}
	backend.contentTypes = append(backend.contentTypes, ct)
	return ct.ID
}

// SeedMedia stores n media assets.
func (backend *Backend) SeedMedia(n int) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	for i := 0; i < n; i++ {
		name := "asset-" + strconv.Itoa(i) + ".png"
		backend.media = append(backend.media, &MediaAsset{
			ID: uuid.NewString(), Filename: name, Mime: "image/png", SizeBytes: 128,
			URL: name, Meta: json.RawMessage(`{}`), CreatedAt: now(),
		})
	}
}

// SeedUser stores an extra user with a password.
func (backend *Backend) SeedUser(name, email, password string) string {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	user := &User{ID: uuid.NewString(), Name: name, Email: email, CreatedAt: now(), UpdatedAt: now()}
	backend.users = append(backend.users, user)
	backend.passwords[email] = password
	return user.ID
}

// ContentTypeFields returns the stored fields of a content type.
func (backend *Backend) ContentTypeFields(id string) []ContentField {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	if ct := backend.findContentType(id); ct != nil {
		return append([]ContentField(nil), ct.Fields...)
	}
	return nil
}

// # Auth

func (backend *Backend) handleLogin(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(request, &in); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}

	backend.mu.Lock()
	password, known := backend.passwords[in.Email]
	user := backend.findUserByEmail(in.Email)
	backend.mu.Unlock()

	if !known || password != in.Password || user == nil {
		writeError(writer, http.StatusUnauthorized, "invalid credentials")
		return
	}

	role := "Editor"
	if in.Email == AdminEmail {
		role = AdminRole
	}

	writeJSON(writer, http.StatusOK, map[string]any{
		"user":       map[string]any{"id": user.ID, "name": user.Name, "email": user.Email, "role": role},
		"token":      backend.issue(user.ID, role, time.Hour),
		"token_type": "Bearer",
	})
}

func (backend *Backend) handleRegister(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(request, &in); err != nil || in.Email == "" || len(in.Password) < 6 {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}
	if in.Name == "" {
		in.Name = in.Username
	}

	backend.mu.Lock()
	if backend.findUserByEmail(in.Email) != nil {
		backend.mu.Unlock()
		writeError(writer, http.StatusInternalServerError, "email already registered")
		return
	}
	user := &User{ID: uuid.NewString(), Name: in.Name, Email: in.Email, CreatedAt: now(), UpdatedAt: now()}
	backend.users = append(backend.users, user)
	backend.passwords[in.Email] = in.Password
	backend.userRoles[user.ID] = []int{2}
	backend.mu.Unlock()

	writeJSON(writer, http.StatusCreated, map[string]any{
		"success": true,
		"data": map[string]any{
			"token": backend.issue(user.ID, "editor", time.Hour),
			"user":  map[string]any{"id": user.ID, "name": user.Name, "email": user.Email, "role": "editor"},
		},
	})
}

// # Content Types

func (backend *Backend) handleListContentTypes(writer http.ResponseWriter, _ *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	list := make([]ContentType, 0, len(backend.contentTypes))
	for _, ct := range backend.contentTypes {
		list = append(list, *ct)
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": list})
}

func (backend *Backend) handleCreateContentType(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := decode(request, &in); err != nil || in.Name == "" || in.Slug == "" {
		writeError(writer, http.StatusBadRequest, "Key: 'Name' Error:Field validation for 'Name' failed on the 'required' tag")
		return
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	for _, existing := range backend.contentTypes {
		if existing.Slug == in.Slug || existing.Name == in.Name {
			writeError(writer, http.StatusInternalServerError, "duplicate key value violates unique constraint")
			return
		}
	}

	// Fields stay nil so the response carries "Fields": null, as gorm does.
	ct := &ContentType{ID: uuid.NewString(), Name: in.Name, Slug: in.Slug, CreatedAt: now(), UpdatedAt: now()}
	backend.contentTypes = append(backend.contentTypes, ct)
	writeJSON(writer, http.StatusCreated, map[string]any{"data": ct})
}

func (backend *Backend) handleGetContentType(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	ct := backend.findContentType(chi.URLParam(request, "id"))
	if ct == nil {
		writeError(writer, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": ct})
}

func (backend *Backend) handleUpdateContentType(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := decode(request, &in); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	ct := backend.findContentType(chi.URLParam(request, "id"))
	if ct == nil {
		writeError(writer, http.StatusInternalServerError, "record not found")
		return
	}
	if in.Name != "" {
		ct.Name = in.Name
	}
	if in.Slug != "" {
		ct.Slug = in.Slug
	}
	ct.UpdatedAt = now()

	// The backend acknowledges updates without a body.
	writer.WriteHeader(http.StatusOK)
}

func (backend *Backend) handleDeleteContentType(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	id := chi.URLParam(request, "id")
	backend.contentTypes = slices.DeleteFunc(backend.contentTypes, func(ct *ContentType) bool { return ct.ID == id })
	writer.WriteHeader(http.StatusNoContent)
}

func (backend *Backend) handleAddField(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Name    string         `json:"name"`
		Kind    string         `json:"kind"`
		Options map[string]any `json:"options"`
	}
	if err := decode(request, &in); err != nil || in.Name == "" || in.Kind == "" {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}
	if !slices.Contains(allowedKinds, in.Kind) {
		writeError(writer, http.StatusBadRequest, "invalid field kind")
		return
	}

	options := json.RawMessage(`{}`)
	if in.Options != nil {
		options, _ = json.Marshal(in.Options)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	ct := backend.findContentType(chi.URLParam(request, "id"))
	if ct == nil {
		writeError(writer, http.StatusInternalServerError, "content type not found")
		return
	}

	field := ContentField{ID: uuid.NewString(), ContentTypeID: ct.ID, Name: in.Name, Kind: in.Kind, Options: options}
	ct.Fields = append(ct.Fields, field)
	writeJSON(writer, http.StatusOK, map[string]any{"data": field})
}

func (backend *Backend) handleDeleteField(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	ct := backend.findContentType(chi.URLParam(request, "id"))
	if ct == nil {
		writeError(writer, http.StatusNotFound, "content type not found")
		return
	}

	fieldID := chi.URLParam(request, "fieldID")
	before := len(ct.Fields)
	ct.Fields = slices.DeleteFunc(ct.Fields, func(field ContentField) bool { return field.ID == fieldID })
	if len(ct.Fields) == before {
		writeError(writer, http.StatusNotFound, "field not found")
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// # Media

func (backend *Backend) handleListMedia(writer http.ResponseWriter, request *http.Request) {
	limit, offset := window(request, 10)

	backend.mu.Lock()
	defer backend.mu.Unlock()

	items := page(backend.media, limit, offset)
	writeJSON(writer, http.StatusOK, map[string]any{"data": items, "total": len(backend.media), "limit": limit, "offset": offset})
}

func (backend *Backend) handleUploadMedia(writer http.ResponseWriter, request *http.Request) {
	file, header, err := request.FormFile("file")
	if err != nil {
		writeError(writer, http.StatusBadRequest, "file tidak ditemukan")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, "gagal membaca file")
		return
	}

	asset := &MediaAsset{
		ID:        uuid.NewString(),
		Filename:  header.Filename,
		Mime:      header.Header.Get("Content-Type"),
		SizeBytes: int64(len(data)),
		URL:       uuid.NewString() + extension(header.Filename),
		Meta:      json.RawMessage(`{"source":"upload"}`),
		CreatedAt: now(),
	}

	backend.mu.Lock()
	backend.media = append(backend.media, asset)
	backend.mu.Unlock()

	writeJSON(writer, http.StatusOK, map[string]any{
		"id": asset.ID, "filename": asset.Filename, "url": asset.URL, "meta": map[string]any{"source": "upload"},
	})
}

func (backend *Backend) handlePreviewMedia(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	id := chi.URLParam(request, "id")
	for _, asset := range backend.media {
		if asset.ID == id {
			writeJSON(writer, http.StatusOK, map[string]any{"preview_url": backend.server.URL + "/signed/" + asset.URL + "?X-Amz-Expires=3600"})
			return
		}
	}
	writeError(writer, http.StatusNotFound, "file tidak ditemukan")
}

func (backend *Backend) handleDeleteMedia(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	id := chi.URLParam(request, "id")
	before := len(backend.media)
	backend.media = slices.DeleteFunc(backend.media, func(asset *MediaAsset) bool { return asset.ID == id })
	if len(backend.media) == before {
		writeError(writer, http.StatusNotFound, "media tidak ditemukan")
		return
	}
	writeJSON(writer, http.StatusOK, map[string]any{"message": "media berhasil dihapus"})
}

// # Users & Roles

func (backend *Backend) handleListUsers(writer http.ResponseWriter, _ *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	list := make([]User, 0, len(backend.users))
	for _, user := range backend.users {
		projected := *user
		projected.Roles = []string{}
		for _, roleID := range backend.userRoles[user.ID] {
			if role := backend.findRole(roleID); role != nil {
				projected.Roles = append(projected.Roles, role.Name)
			}
		}
		list = append(list, projected)
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": list})
}

func (backend *Backend) handleGetUserRoles(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	roles := []Role{}
	for _, roleID := range backend.userRoles[chi.URLParam(request, "id")] {
		if role := backend.findRole(roleID); role != nil {
			roles = append(roles, *role)
		}
	}
	writeJSON(writer, http.StatusOK, map[string]any{"roles": roles})
}

func (backend *Backend) handleSetUserRoles(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Roles []int `json:"roles"`
	}
	if err := decode(request, &body); err != nil {
		writeError(writer, http.StatusBadRequest, "payload tidak valid")
		return
	}
	if len(body.Roles) == 0 {
		writeError(writer, http.StatusBadRequest, "roles tidak boleh kosong")
		return
	}

	backend.mu.Lock()
	backend.userRoles[chi.URLParam(request, "id")] = body.Roles
	backend.mu.Unlock()

	writeJSON(writer, http.StatusOK, map[string]any{"message": "berhasil mengatur role"})
}

func (backend *Backend) handleListRoles(writer http.ResponseWriter, _ *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	// The roles endpoint answers with a bare array.
	writeJSON(writer, http.StatusOK, backend.roles)
}

func (backend *Backend) handleCreateRole(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decode(request, &body); err != nil || body.Name == "" {
		writeError(writer, http.StatusBadRequest, "nama role wajib diisi")
		return
	}

	backend.mu.Lock()
	backend.roles = append(backend.roles, &Role{ID: len(backend.roles) + 1, Name: body.Name})
	backend.mu.Unlock()

	writeJSON(writer, http.StatusCreated, map[string]any{"message": "berhasil membuat role"})
}

// # Entries

func (backend *Backend) handleListEntries(writer http.ResponseWriter, request *http.Request) {
	limit, offset := window(request, 20)

	backend.mu.Lock()
	defer backend.mu.Unlock()

	all := backend.entries[chi.URLParam(request, "slug")]
	writeJSON(writer, http.StatusOK, map[string]any{"data": page(all, limit, offset), "total": len(all), "limit": limit, "offset": offset})
}

func (backend *Backend) handleCreateEntry(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Slug   string          `json:"slug"`
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := decode(request, &in); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}
	if in.Status == "" {
		in.Status = "draft"
	}
	if len(in.Data) == 0 {
		in.Data = json.RawMessage(`{}`)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	slug := chi.URLParam(request, "slug")
	ct := backend.findContentTypeBySlug(slug)
	if ct == nil {
		writeError(writer, http.StatusInternalServerError, "record not found")
		return
	}

	entry := &Entry{
		ID: uuid.NewString(), ContentTypeID: ct.ID, Slug: in.Slug, Status: in.Status, Data: in.Data,
		CreatedAt: now(), UpdatedAt: now(), versions: []json.RawMessage{in.Data},
	}
	backend.entries[slug] = append(backend.entries[slug], entry)
	writeJSON(writer, http.StatusCreated, map[string]any{"data": entry})
}

func (backend *Backend) handleGetEntry(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := backend.findEntry(chi.URLParam(request, "slug"), chi.URLParam(request, "id"))
	if entry == nil {
		writeError(writer, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": entry})
}

func (backend *Backend) handleUpdateEntry(writer http.ResponseWriter, request *http.Request) {
	var in struct {
		Status *string         `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := decode(request, &in); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid payload")
		return
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := backend.findEntry(chi.URLParam(request, "slug"), chi.URLParam(request, "id"))
	if entry == nil {
		writeError(writer, http.StatusInternalServerError, "record not found")
		return
	}
	if len(in.Data) > 0 {
		entry.Data = in.Data
		entry.versions = append(entry.versions, in.Data)
	}
	if in.Status != nil {
		entry.Status = *in.Status
	}
	entry.UpdatedAt = now()
	writer.WriteHeader(http.StatusOK)
}

func (backend *Backend) handleDeleteEntry(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	slug, id := chi.URLParam(request, "slug"), chi.URLParam(request, "id")
	backend.entries[slug] = slices.DeleteFunc(backend.entries[slug], func(entry *Entry) bool { return entry.ID == id })
	writer.WriteHeader(http.StatusNoContent)
}

func (backend *Backend) handlePublishEntry(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := backend.findEntry(chi.URLParam(request, "slug"), chi.URLParam(request, "id"))
	if entry == nil {
		writeError(writer, http.StatusInternalServerError, "record not found")
		return
	}
	published := now()
	entry.Status = "published"
	entry.PublishedAt = &published
	writer.WriteHeader(http.StatusOK)
}

func (backend *Backend) handleRollbackEntry(writer http.ResponseWriter, request *http.Request) {
	version, err := strconv.Atoi(chi.URLParam(request, "version"))
	if err != nil || version <= 0 {
		writeError(writer, http.StatusBadRequest, "invalid version")
		return
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := backend.findEntry(chi.URLParam(request, "slug"), chi.URLParam(request, "id"))
	if entry == nil || version > len(entry.versions) {
		writeError(writer, http.StatusInternalServerError, "version not found")
		return
	}
	entry.Data = entry.versions[version-1]
	entry.UpdatedAt = now()
	writer.WriteHeader(http.StatusOK)
}

// # Public

func (backend *Backend) handleListPublished(writer http.ResponseWriter, request *http.Request) {
	limit, offset := window(request, 10)

	backend.mu.Lock()
	defer backend.mu.Unlock()

	var published []*Entry
	for _, entry := range backend.entries[chi.URLParam(request, "slug")] {
		if entry.Status == "published" {
			published = append(published, entry)
		}
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": page(published, limit, offset), "total": len(published), "limit": limit, "offset": offset})
}

func (backend *Backend) handleGetPublished(writer http.ResponseWriter, request *http.Request) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	entry := backend.findEntry(chi.URLParam(request, "slug"), chi.URLParam(request, "id"))
	if entry == nil || entry.Status != "published" {
		writeError(writer, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(writer, http.StatusOK, map[string]any{"data": entry})
}

// # Lookups (callers hold backend.mu)

func (backend *Backend) findContentType(id string) *ContentType {
	for _, ct := range backend.contentTypes {
		if ct.ID == id {
			return ct
		}
	}
	return nil
}

func (backend *Backend) findContentTypeBySlug(slug string) *ContentType {
	for _, ct := range backend.contentTypes {
		if ct.Slug == slug {
			return ct
		}
	}
	return nil
}

func (backend *Backend) findUserByEmail(email string) *User {
	for _, user := range backend.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

func (backend *Backend) findRole(id int) *Role {
	for _, role := range backend.roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

func (backend *Backend) findEntry(slug, id string) *Entry {
	for _, entry := range backend.entries[slug] {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

func window(request *http.Request, defaultLimit int) (int, int) {
	query := request.URL.Query()
	return convert.AtLeast(query.Get("limit"), 1, defaultLimit), convert.AtLeast(query.Get("offset"), 0, 0)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ""
}
