// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

type testEmailRequest struct {
	Recipient string `json:"recipient"`
}

// ListEmailLog handles GET /api/v1/admin/email-log.
func (h *Handler) ListEmailLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.EmailLogs())
}

// SendTestEmail handles POST /api/v1/admin/email-log/test. Mail is never
// transmitted; the entry only lands in the log.
func (h *Handler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Recipient = strings.TrimSpace(req.Recipient)
	if !strings.Contains(req.Recipient, "@") {
		writeJSONError(w, http.StatusBadRequest, "a valid recipient email is required")
		return
	}

	settings := h.store.EmailSettings()
	entry := h.store.LogEmail(req.Recipient, "Test Email",
		"This is a test email sent from "+settings.FromName+" to verify the email configuration.")
	writeJSON(w, http.StatusCreated, entry)
}

// GetEmailSettings handles GET /api/v1/admin/settings/email.
func (h *Handler) GetEmailSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.EmailSettings())
}

// UpdateEmailSettings handles PUT /api/v1/admin/settings/email.
func (h *Handler) UpdateEmailSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.EmailSettings
	if !decodeJSON(w, r, &settings) {
		return
	}
	h.store.UpdateEmailSettings(settings)
	writeJSON(w, http.StatusOK, h.store.EmailSettings())
}
