// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// UpdateSiteSettings handles PUT /api/v1/admin/settings/site. The singleton is
// replaced wholesale.
func (h *Handler) UpdateSiteSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.SiteSettings
	if !decodeJSON(w, r, &settings) {
		return
	}
	if strings.TrimSpace(settings.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}
	h.store.UpdateSiteSettings(settings)
	writeJSON(w, http.StatusOK, h.store.SiteSettings())
}

// UpdateContactInfo handles PUT /api/v1/admin/settings/contact.
func (h *Handler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var info model.ContactInfo
	if !decodeJSON(w, r, &info) {
		return
	}
	h.store.UpdateContactInfo(info)
	writeJSON(w, http.StatusOK, h.store.ContactInfo())
}
