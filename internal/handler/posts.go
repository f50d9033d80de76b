// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// CreateBlogPost handles POST /api/v1/admin/posts.
func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var post model.BlogPost
	if !decodeJSON(w, r, &post) {
		return
	}
	if strings.TrimSpace(post.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	created := h.store.AddBlogPost(post)
	h.metrics.RecordContentMutation("blog_post")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBlogPost handles PUT /api/v1/admin/posts/{id}.
func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var post model.BlogPost
	if !decodeJSON(w, r, &post) {
		return
	}
	post.ID = id

	updated, err := h.store.UpdateBlogPost(post)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "blog post not found")
		return
	}
	h.metrics.RecordContentMutation("blog_post")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBlogPost handles DELETE /api/v1/admin/posts/{id}.
func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.DeleteBlogPost(id)
	h.metrics.RecordContentMutation("blog_post")
	w.WriteHeader(http.StatusNoContent)
}
