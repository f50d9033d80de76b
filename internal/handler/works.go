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

// CreateWork handles POST /api/v1/admin/works.
func (h *Handler) CreateWork(w http.ResponseWriter, r *http.Request) {
	var work model.Work
	if !decodeJSON(w, r, &work) {
		return
	}
	if strings.TrimSpace(work.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	created := h.store.AddWork(work)
	h.metrics.RecordContentMutation("work")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateWork handles PUT /api/v1/admin/works/{id}.
func (h *Handler) UpdateWork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var work model.Work
	if !decodeJSON(w, r, &work) {
		return
	}
	work.ID = id

	updated, err := h.store.UpdateWork(work)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "work not found")
		return
	}
	h.metrics.RecordContentMutation("work")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteWork handles DELETE /api/v1/admin/works/{id}.
func (h *Handler) DeleteWork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.DeleteWork(id)
	h.metrics.RecordContentMutation("work")
	w.WriteHeader(http.StatusNoContent)
}
