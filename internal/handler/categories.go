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

func validCategory(w http.ResponseWriter, c *model.Category) bool {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return false
	}
	if !model.IsValidCategoryType(c.Type) {
		writeJSONError(w, http.StatusBadRequest, "type must be work or blog")
		return false
	}
	return true
}

// CreateCategory handles POST /api/v1/admin/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cat model.Category
	if !decodeJSON(w, r, &cat) {
		return
	}
	if !validCategory(w, &cat) {
		return
	}

	created := h.store.AddCategory(cat)
	h.metrics.RecordContentMutation("category")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategory handles PUT /api/v1/admin/categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var cat model.Category
	if !decodeJSON(w, r, &cat) {
		return
	}
	cat.ID = id
	if !validCategory(w, &cat) {
		return
	}

	updated, err := h.store.UpdateCategory(cat)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "category not found")
		return
	}
	h.metrics.RecordContentMutation("category")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.DeleteCategory(id)
	h.metrics.RecordContentMutation("category")
	w.WriteHeader(http.StatusNoContent)
}
