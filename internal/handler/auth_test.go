// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

func TestLoginLogout(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)
	e.do(http.MethodPost, "/api/v1/auth/logout", nil).Body.Close()

	resp := e.login("admin@example.com", "s3cret99")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var user model.User
	e.decode(resp, &user)
	if user.LastLogin == nil {
		t.Error("last login should be set after a login")
	}

	resp = e.do(http.MethodPost, "/api/v1/auth/logout", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("logout status = %d, want 200", resp.StatusCode)
	}

	resp = e.do(http.MethodGet, "/api/v1/auth/me", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginErrors(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)
	e.do(http.MethodPost, "/api/v1/auth/logout", nil).Body.Close()

	resp := e.login("nobody@example.com", "whatever")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unknown user status = %d, want 401", resp.StatusCode)
	}
	var body map[string]string
	e.decode(resp, &body)
	if body["error"] != "User not found. Please check your email." {
		t.Errorf("unexpected error: %q", body["error"])
	}

	resp = e.login("admin@example.com", "wrongpass")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", resp.StatusCode)
	}
	e.decode(resp, &body)
	if body["error"] != "Invalid password. Please try again." {
		t.Errorf("unexpected error: %q", body["error"])
	}
}

func TestLoginRecordsActivity(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)

	var activity []model.LoginActivity
	e.decode(e.do(http.MethodGet, "/api/v1/admin/activity", nil), &activity)
	if len(activity) != 1 {
		t.Fatalf("activity entries = %d, want 1", len(activity))
	}
	if activity[0].IPAddress == "" {
		t.Error("activity should record the client IP")
	}
}

func TestAdminRequiresSession(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(http.MethodGet, "/api/v1/admin/messages", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
