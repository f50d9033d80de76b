// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mileusna/useragent"

	"github.com/geoportfolio/geoportfolio/internal/middleware"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/session"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// loginRequest is the login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginMeta captures client context for the activity trail.
func (h *Handler) loginMeta(r *http.Request) store.LoginMeta {
	ip := middleware.ClientIP(r)
	ua := useragent.Parse(r.UserAgent())

	browser := ua.Name
	if ua.Version != "" {
		browser = ua.Name + " " + ua.Version
	}

	return store.LoginMeta{
		IPAddress: ip,
		Browser:   browser,
		OS:        ua.OS,
		Country:   h.geo.Country(ip),
	}
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if locked, remaining := h.lp.IsAccountLocked(req.Email); locked {
		writeJSONError(w, http.StatusTooManyRequests,
			fmt.Sprintf("account temporarily locked, try again in %s", remaining.Round(time.Second)))
		return
	}

	user, err := h.auth.Login(req.Email, req.Password, h.loginMeta(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.lp.RecordFailedAttempt(req.Email)
			writeJSONError(w, http.StatusUnauthorized, "User not found. Please check your email.")
		case errors.Is(err, service.ErrInvalidPassword):
			if locked, dur := h.lp.RecordFailedAttempt(req.Email); locked {
				writeJSONError(w, http.StatusTooManyRequests,
					fmt.Sprintf("account temporarily locked, try again in %s", dur))
				return
			}
			writeJSONError(w, http.StatusUnauthorized, "Invalid password. Please try again.")
		case errors.Is(err, service.ErrAccountInactive):
			writeJSONError(w, http.StatusForbidden, "This account is inactive. Please contact an administrator.")
		default:
			slog.Error("login failed", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.lp.RecordSuccessfulLogin(req.Email)

	// A fresh token prevents session fixation.
	if err := h.sm.RenewToken(r.Context()); err != nil {
		slog.Error("renewing session token", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.sm.Put(r.Context(), session.UserIDKey, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Destroy(r.Context()); err != nil {
		slog.Error("destroying session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /api/v1/auth/me, returning the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetUser(r))
}

// meRequest is the self-service profile payload. Role and status are not
// editable through this endpoint.
type meRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateMe handles PUT /api/v1/auth/me.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	current := middleware.GetUser(r)
	if current == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req meRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeJSONError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if other, ok := h.store.UserByEmail(req.Email); ok && other.ID != current.ID {
		writeJSONError(w, http.StatusConflict, "a user with this email already exists")
		return
	}

	updated, err := h.store.UpdateUser(model.User{
		ID:     current.ID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   current.Role,
		Status: current.Status,
	})
	if err != nil {
		slog.Error("updating own account", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
