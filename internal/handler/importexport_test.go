// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/transfer"
)

func TestExportDownload(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)

	resp := e.do(http.MethodGet, "/api/v1/admin/export", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	var doc transfer.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if len(doc.Works) != 6 {
		t.Errorf("exported works = %d, want 6", len(doc.Works))
	}
}

func TestImportRoundTrip(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)

	resp := e.do(http.MethodGet, "/api/v1/admin/export", nil)
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	// Wipe everything, then restore from the export.
	e.do(http.MethodDelete, "/api/v1/admin/works/1", nil).Body.Close()

	req, err := http.NewRequest(http.MethodPost, e.srv.URL+"/api/v1/admin/import", strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err = e.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import status = %d, want 200", resp.StatusCode)
	}

	var works []model.Work
	e.decode(e.do(http.MethodGet, "/api/v1/works", nil), &works)
	if len(works) != 6 {
		t.Errorf("works after import = %d, want 6", len(works))
	}
}

func TestImportRejectsPartialDocument(t *testing.T) {
	e := newTestEnv(t)
	e.completeSetup(false)

	resp := e.do(http.MethodPost, "/api/v1/admin/import", map[string]any{
		"works": []model.Work{},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Error  string `json:"error"`
		Errors []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	e.decode(resp, &body)
	if len(body.Errors) == 0 {
		t.Error("expected per-field errors")
	}

	// The store is untouched after a rejected import.
	var works []model.Work
	e.decode(e.do(http.MethodGet, "/api/v1/works", nil), &works)
	if len(works) != 6 {
		t.Errorf("works = %d, want 6", len(works))
	}
}
