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

// CreateSkill handles POST /api/v1/admin/skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var skill model.Skill
	if !decodeJSON(w, r, &skill) {
		return
	}
	if strings.TrimSpace(skill.Category) == "" {
		writeJSONError(w, http.StatusBadRequest, "category is required")
		return
	}

	created := h.store.AddSkill(skill)
	h.metrics.RecordContentMutation("skill")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateSkill handles PUT /api/v1/admin/skills/{id}.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var skill model.Skill
	if !decodeJSON(w, r, &skill) {
		return
	}
	skill.ID = id

	updated, err := h.store.UpdateSkill(skill)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "skill group not found")
		return
	}
	h.metrics.RecordContentMutation("skill")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteSkill handles DELETE /api/v1/admin/skills/{id}.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.DeleteSkill(id)
	h.metrics.RecordContentMutation("skill")
	w.WriteHeader(http.StatusNoContent)
}
