// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	require.NoError(t, st.Seed())
	return st
}

func TestExportCarriesAllCollections(t *testing.T) {
	st := seededStore(t)

	doc := Export(st)

	assert.Equal(t, ExportVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportID)
	require.NotNil(t, doc.ExportedAt)

	assert.Len(t, doc.Works, 6)
	assert.Len(t, doc.BlogPosts, 4)
	assert.Len(t, doc.Categories, 8)
	assert.Len(t, doc.Skills, 4)
	assert.Len(t, doc.Users, 2)
	assert.Equal(t, "M. M. Tarikul Islam Parag", doc.Profile.Name)
	assert.NotEmpty(t, doc.SiteSettings.Title)
	assert.NotEmpty(t, doc.ContactInfo.Email)
}

func TestExportStripsPasswords(t *testing.T) {
	st := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, ExportToWriter(&buf, st))

	out := buf.String()
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "argon2id")
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seededStore(t)
	var buf bytes.Buffer
	require.NoError(t, ExportToWriter(&buf, src))

	dst := store.New()
	require.NoError(t, NewImporter(dst).ImportFromReader(&buf))

	assert.Len(t, dst.Works(), 6)
	assert.Len(t, dst.BlogPosts(), 4)
	assert.Len(t, dst.Users(), 2)
	assert.Equal(t, src.SiteSettings().Title, dst.SiteSettings().Title)
	assert.Equal(t, src.Profile().Name, dst.Profile().Name)

	// Id counters continue past the imported maximum.
	w := dst.AddWork(model.Work{Title: "After import"})
	assert.Equal(t, int64(7), w.ID)

	// Imported accounts carry no credentials.
	u, ok := dst.UserByEmail(store.DemoAdminEmail)
	require.True(t, ok)
	assert.Empty(t, u.PasswordHash)
}

func TestImportMissingKeysRejected(t *testing.T) {
	doc := map[string]any{
		"works":     []any{},
		"blogPosts": []any{},
		// profile, siteSettings, skills, contactInfo, users, categories missing
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	st := seededStore(t)
	before := len(st.Works())

	err = NewImporter(st).Import(data)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 6)

	paths := make([]string, 0, len(verrs))
	for _, e := range verrs {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "profile")
	assert.Contains(t, paths, "users")

	// A rejected import leaves the store untouched.
	assert.Len(t, st.Works(), before)
}

func TestImportCollectsFieldErrors(t *testing.T) {
	data := []byte(`{
		"works": [{"id": 0, "title": ""}],
		"blogPosts": [],
		"profile": {},
		"siteSettings": {},
		"skills": [{"id": 1, "category": "c", "skills": [{"name": "n", "percentage": 150}]}],
		"contactInfo": {},
		"users": [{"id": 1, "name": "A", "email": "", "role": "superuser", "status": "active"}],
		"categories": [{"id": 1, "name": "x", "type": "page"}]
	}`)

	err := NewImporter(store.New()).Import(data)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	paths := make([]string, 0, len(verrs))
	for _, e := range verrs {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "works[0].id")
	assert.Contains(t, paths, "works[0].title")
	assert.Contains(t, paths, "skills[0].skills[0].percentage")
	assert.Contains(t, paths, "users[0].email")
	assert.Contains(t, paths, "users[0].role")
	assert.Contains(t, paths, "categories[0].type")

	// The error message names every path for the API response.
	assert.True(t, strings.Contains(err.Error(), "works[0].id"))
}

func TestImportNotJSON(t *testing.T) {
	err := NewImporter(store.New()).Import([]byte("not json at all"))
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "$", verrs[0].Path)
}

func TestImportIgnoresMetadata(t *testing.T) {
	src := seededStore(t)
	doc := Export(src)
	doc.Version = "0.9-legacy"
	doc.ExportID = "anything"

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	dst := store.New()
	require.NoError(t, NewImporter(dst).Import(data))
	assert.Len(t, dst.Works(), 6)
}
