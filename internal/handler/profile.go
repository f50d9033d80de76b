// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// UpdateProfile handles PUT /api/v1/admin/profile. The whole singleton is
// replaced, including every sub-collection.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p model.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	updated := h.store.UpdateProfile(p)
	h.metrics.RecordContentMutation("profile")
	writeJSON(w, http.StatusOK, updated)
}

// createSub builds a POST handler for one profile sub-collection.
func createSub[T any](h *Handler, add func(T) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if !decodeJSON(w, r, &item) {
			return
		}
		created := add(item)
		h.metrics.RecordContentMutation("profile")
		writeJSON(w, http.StatusCreated, created)
	}
}

// updateSub builds a PUT /{id} handler for one profile sub-collection.
func updateSub[T any](h *Handler, setID func(*T, int64), update func(T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var item T
		if !decodeJSON(w, r, &item) {
			return
		}
		setID(&item, id)

		updated, err := update(item)
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "item not found")
			return
		}
		h.metrics.RecordContentMutation("profile")
		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteSub builds a DELETE /{id} handler for one profile sub-collection.
func deleteSub(h *Handler, del func(int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		del(id)
		h.metrics.RecordContentMutation("profile")
		w.WriteHeader(http.StatusNoContent)
	}
}

func setWhatIDoID(v *model.WhatIDoItem, id int64)         { v.ID = id }
func setCompetencyID(v *model.Competency, id int64)       { v.ID = id }
func setEducationID(v *model.Education, id int64)         { v.ID = id }
func setExperienceID(v *model.Experience, id int64)       { v.ID = id }
func setCertificationID(v *model.Certification, id int64) { v.ID = id }
func setTrainingID(v *model.Training, id int64)           { v.ID = id }
func setMembershipID(v *model.Membership, id int64)       { v.ID = id }
