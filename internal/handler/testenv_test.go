// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/geoip"
	"github.com/geoportfolio/geoportfolio/internal/metrics"
	"github.com/geoportfolio/geoportfolio/internal/middleware"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/session"
	"github.com/geoportfolio/geoportfolio/internal/state"
	"github.com/geoportfolio/geoportfolio/internal/store"
	"github.com/geoportfolio/geoportfolio/internal/version"
)

// testEnv runs the full router against a seeded store and a throwaway
// state database. The client keeps session cookies between requests.
type testEnv struct {
	t      *testing.T
	store  *store.Store
	srv    *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := state.NewDB(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("opening state db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := state.Migrate(db); err != nil {
		t.Fatalf("migrating state db: %v", err)
	}

	st := store.New()
	if err := st.Seed(); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	rec := metrics.Nop{}
	sm := session.New(db, true)
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit: 100, // keep the IP limiter out of the way
	})
	geo, err := geoip.Open("")
	if err != nil {
		t.Fatalf("opening geoip: %v", err)
	}

	h := New(
		st,
		service.NewAuth(st, rec),
		service.NewInstaller(st, db),
		sm,
		lp,
		geo,
		rec,
		version.Info{Version: "test"},
	)

	srv := httptest.NewServer(h.Routes(nil))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}

	return &testEnv{
		t:      t,
		store:  st,
		srv:    srv,
		client: &http.Client{Jar: jar},
	}
}

// do issues a request with an optional JSON body and returns the response.
func (e *testEnv) do(method, path string, body any) *http.Response {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		e.t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// decode reads a JSON response body into v and closes the body.
func (e *testEnv) decode(resp *http.Response, v any) {
	e.t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		e.t.Fatalf("decoding response: %v", err)
	}
}

// completeSetup runs the install wizard and returns the logged-in admin.
// The session cookie stays on the client for subsequent admin calls.
func (e *testEnv) completeSetup(clearDemo bool) model.User {
	e.t.Helper()

	resp := e.do(http.MethodPost, "/api/v1/setup", map[string]any{
		"siteTitle":        "Test Site",
		"adminName":        "Test Admin",
		"adminEmail":       "admin@example.com",
		"adminPassword":    "s3cret99",
		"clearDemoContent": clearDemo,
	})
	if resp.StatusCode != http.StatusCreated {
		e.t.Fatalf("setup status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var admin model.User
	e.decode(resp, &admin)
	return admin
}

// login authenticates through the API.
func (e *testEnv) login(email, password string) *http.Response {
	e.t.Helper()
	return e.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}
