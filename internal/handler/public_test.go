// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

func TestPublicContentEndpoints(t *testing.T) {
	e := newTestEnv(t)

	var works []model.Work
	e.decode(e.do(http.MethodGet, "/api/v1/works", nil), &works)
	if len(works) != 6 {
		t.Errorf("works = %d, want 6", len(works))
	}

	var work model.Work
	e.decode(e.do(http.MethodGet, "/api/v1/works/1", nil), &work)
	if work.ID != 1 {
		t.Errorf("work.ID = %d, want 1", work.ID)
	}

	resp := e.do(http.MethodGet, "/api/v1/works/999", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing work status = %d, want 404", resp.StatusCode)
	}

	var posts []model.BlogPost
	e.decode(e.do(http.MethodGet, "/api/v1/blog", nil), &posts)
	if len(posts) != 4 {
		t.Errorf("posts = %d, want 4", len(posts))
	}

	var profile model.Profile
	e.decode(e.do(http.MethodGet, "/api/v1/profile", nil), &profile)
	if profile.Name == "" {
		t.Error("profile name should be seeded")
	}
}

func TestPublicCategoryFilter(t *testing.T) {
	e := newTestEnv(t)

	var workCats []model.Category
	e.decode(e.do(http.MethodGet, "/api/v1/categories?type=work", nil), &workCats)
	for _, c := range workCats {
		if c.Type != model.CategoryTypeWork {
			t.Errorf("category %q type = %q, want work", c.Name, c.Type)
		}
	}
	if len(workCats) == 0 {
		t.Fatal("expected seeded work categories")
	}

	resp := e.do(http.MethodGet, "/api/v1/categories?type=bogus", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bogus type status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitMessage(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(http.MethodPost, "/api/v1/messages", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Interested in collaboration.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var msg model.Message
	e.decode(resp, &msg)
	if msg.ID == 0 || msg.IsRead {
		t.Errorf("unexpected message: %+v", msg)
	}

	resp = e.do(http.MethodPost, "/api/v1/messages", map[string]string{
		"name": "No Message",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("incomplete submission status = %d, want 400", resp.StatusCode)
	}
}
