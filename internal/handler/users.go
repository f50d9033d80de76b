// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/auth"
	"github.com/geoportfolio/geoportfolio/internal/middleware"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type updateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type setPasswordRequest struct {
	Password string `json:"password"`
}

type deleteUserRequest struct {
	Reason string `json:"reason"`
}

func validUserFields(w http.ResponseWriter, name, email, role, status string) bool {
	if strings.TrimSpace(name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return false
	}
	if !strings.Contains(email, "@") {
		writeJSONError(w, http.StatusBadRequest, "a valid email is required")
		return false
	}
	if role != model.RoleAdmin && role != model.RoleEditor {
		writeJSONError(w, http.StatusBadRequest, "role must be admin or editor")
		return false
	}
	if status != model.StatusActive && status != model.StatusInactive {
		writeJSONError(w, http.StatusBadRequest, "status must be active or inactive")
		return false
	}
	return true
}

// ListUsers handles GET /api/v1/admin/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Users())
}

// CreateUser handles POST /api/v1/admin/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validUserFields(w, req.Name, req.Email, req.Role, req.Status) {
		return
	}
	if len(req.Password) < service.MinPasswordLength {
		writeJSONError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if _, exists := h.store.UserByEmail(req.Email); exists {
		writeJSONError(w, http.StatusConflict, "a user with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("hashing password", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	created := h.store.CreateUser(model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         req.Role,
		Status:       req.Status,
	})
	writeJSON(w, http.StatusCreated, created)
}

// UpdateUser handles PUT /api/v1/admin/users/{id}. The password hash and
// login timestamps are kept as-is; password changes go through SetUserPassword.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validUserFields(w, req.Name, req.Email, req.Role, req.Status) {
		return
	}

	updated, err := h.store.UpdateUser(model.User{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Role:   req.Role,
		Status: req.Status,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetUserPassword handles POST /api/v1/admin/users/{id}/password.
func (h *Handler) SetUserPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Password) < service.MinPasswordLength {
		writeJSONError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("hashing password", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.store.SetUserPassword(id, hash); errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleUserStatus handles POST /api/v1/admin/users/{id}/status.
func (h *Handler) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if actor := middleware.GetUser(r); actor != nil && actor.ID == id {
		writeJSONError(w, http.StatusBadRequest, "you cannot disable your own account")
		return
	}

	updated, err := h.store.ToggleUserStatus(id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/v1/admin/users/{id}. The optional body
// carries a reason that is included in the farewell email log entry.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if actor := middleware.GetUser(r); actor != nil && actor.ID == id {
		writeJSONError(w, http.StatusBadRequest, "you cannot delete your own account")
		return
	}

	var req deleteUserRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}
	h.store.DeleteUser(id, req.Reason)
	w.WriteHeader(http.StatusNoContent)
}
