// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

func TestSetupFlow(t *testing.T) {
	e := newTestEnv(t)

	var status map[string]bool
	e.decode(e.do(http.MethodGet, "/api/v1/setup/status", nil), &status)
	if status["installed"] {
		t.Fatal("fresh site should not be installed")
	}

	// Login is refused until setup completes.
	resp := e.login(store.DemoAdminEmail, store.DemoAdminPassword)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("pre-install login status = %d, want 409", resp.StatusCode)
	}

	admin := e.completeSetup(false)
	if admin.Role != model.RoleAdmin || admin.Email != "admin@example.com" {
		t.Errorf("unexpected admin: %+v", admin)
	}

	e.decode(e.do(http.MethodGet, "/api/v1/setup/status", nil), &status)
	if !status["installed"] {
		t.Error("site should be installed after setup")
	}

	// The wizard logs the admin in.
	var me model.User
	e.decode(e.do(http.MethodGet, "/api/v1/auth/me", nil), &me)
	if me.ID != admin.ID {
		t.Errorf("me.ID = %d, want %d", me.ID, admin.ID)
	}

	// Running setup twice is refused.
	resp = e.do(http.MethodPost, "/api/v1/setup", map[string]any{
		"siteTitle":     "Again",
		"adminName":     "X",
		"adminEmail":    "x@example.com",
		"adminPassword": "longenough",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second setup status = %d, want 409", resp.StatusCode)
	}
}

func TestSetupValidation(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(http.MethodPost, "/api/v1/setup", map[string]any{
		"adminName":     "Short Password",
		"adminEmail":    "short@example.com",
		"adminPassword": "abc",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	e.decode(resp, &body)
	if body["field"] != "adminPassword" {
		t.Errorf("field = %q, want adminPassword", body["field"])
	}
}

func TestSetupClearsDemoContent(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(true)

	var works []model.Work
	e.decode(e.do(http.MethodGet, "/api/v1/works", nil), &works)
	if len(works) != 0 {
		t.Errorf("works after clear = %d, want 0", len(works))
	}

	// Site settings survive the clear.
	var settings model.SiteSettings
	e.decode(e.do(http.MethodGet, "/api/v1/settings", nil), &settings)
	if settings.Title != "Test Site" {
		t.Errorf("title = %q, want Test Site", settings.Title)
	}
}
