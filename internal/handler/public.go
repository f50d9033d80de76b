// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// ListWorks handles GET /api/v1/works.
func (h *Handler) ListWorks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Works())
}

// GetWork handles GET /api/v1/works/{id}.
func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	work, ok := h.store.WorkByID(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "work not found")
		return
	}
	writeJSON(w, http.StatusOK, work)
}

// ListBlogPosts handles GET /api/v1/blog.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BlogPosts())
}

// GetBlogPost handles GET /api/v1/blog/{id}.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	post, ok := h.store.BlogPostByID(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "blog post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetProfile handles GET /api/v1/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Profile())
}

// ListSkills handles GET /api/v1/skills.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Skills())
}

// ListCategories handles GET /api/v1/categories. An optional type query
// parameter filters to work or blog categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categoryType := r.URL.Query().Get("type")
	if categoryType == "" {
		writeJSON(w, http.StatusOK, h.store.Categories())
		return
	}
	if !model.IsValidCategoryType(categoryType) {
		writeJSONError(w, http.StatusBadRequest, "type must be work or blog")
		return
	}
	writeJSON(w, http.StatusOK, h.store.CategoriesByType(categoryType))
}

// GetSiteSettings handles GET /api/v1/settings.
func (h *Handler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.SiteSettings())
}

// GetContactInfo handles GET /api/v1/contact-info.
func (h *Handler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ContactInfo())
}

// contactRequest is the contact form payload.
type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
	Address     string `json:"address"`
	Message     string `json:"message"`
}

// SubmitMessage handles POST /api/v1/messages, the public contact form.
func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	msg := h.store.AddMessage(model.Message{
		Name:        req.Name,
		Email:       req.Email,
		Institution: strings.TrimSpace(req.Institution),
		Address:     strings.TrimSpace(req.Address),
		Message:     req.Message,
	})
	h.metrics.RecordMessageReceived()

	writeJSON(w, http.StatusCreated, msg)
}
