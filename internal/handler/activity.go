// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import "net/http"

// ListLoginActivity handles GET /api/v1/admin/activity.
func (h *Handler) ListLoginActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.LoginActivities())
}
