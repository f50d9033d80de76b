// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/session"
)

// setupRequest is the setup wizard payload.
type setupRequest struct {
	SiteTitle        string `json:"siteTitle"`
	CopyrightText    string `json:"copyrightText"`
	AdminName        string `json:"adminName"`
	AdminEmail       string `json:"adminEmail"`
	AdminPassword    string `json:"adminPassword"`
	ClearDemoContent bool   `json:"clearDemoContent"`
}

// SetupStatus handles GET /api/v1/setup/status.
func (h *Handler) SetupStatus(w http.ResponseWriter, r *http.Request) {
	installed, err := h.installer.Installed()
	if err != nil {
		slog.Error("checking installed flag", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"installed": installed})
}

// CompleteSetup handles POST /api/v1/setup. On success the new admin is
// logged in immediately, without the usual security alert.
func (h *Handler) CompleteSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := h.installer.Complete(service.SetupRequest{
		SiteTitle:        req.SiteTitle,
		CopyrightText:    req.CopyrightText,
		AdminName:        req.AdminName,
		AdminEmail:       req.AdminEmail,
		AdminPassword:    req.AdminPassword,
		ClearDemoContent: req.ClearDemoContent,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrAlreadyInstalled):
			writeJSONError(w, http.StatusConflict, "site is already installed")
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "validation failed",
				"field":   verr.Field,
				"message": verr.Message,
			})
		default:
			slog.Error("completing setup", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	admin, err = h.auth.LoginAsNewUser(admin.ID, h.loginMeta(r))
	if err != nil {
		slog.Error("logging in new admin", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.sm.RenewToken(r.Context()); err != nil {
		slog.Error("renewing session token", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.sm.Put(r.Context(), session.UserIDKey, admin.ID)

	slog.Info("setup completed", "admin_id", admin.ID, "email", admin.Email)
	writeJSON(w, http.StatusCreated, admin)
}
