// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"

	"github.com/geoportfolio/geoportfolio/internal/store"
)

// ListMessages handles GET /api/v1/admin/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": h.store.Messages(),
		"unread":   h.store.UnreadMessageCount(),
	})
}

// MarkMessageRead handles POST /api/v1/admin/messages/{id}/read.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.MarkMessageRead(id); errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "message not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMessage handles DELETE /api/v1/admin/messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.DeleteMessage(id)
	w.WriteHeader(http.StatusNoContent)
}
