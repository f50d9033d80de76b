// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/geoportfolio/geoportfolio/internal/transfer"
)

// ExportData handles GET /api/v1/admin/export. The response is served as a
// JSON file download.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("geoportfolio-export-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := transfer.ExportToWriter(w, h.store); err != nil {
		slog.Error("writing export", "error", err)
	}
}

// ImportData handles POST /api/v1/admin/import. The upload replaces every
// content collection atomically; validation failures leave the store
// untouched and are reported per field.
func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	if err := transfer.NewImporter(h.store).Import(body); err != nil {
		var verrs transfer.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "import validation failed",
				"errors": verrs,
			})
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("data import applied", "size_bytes", len(body))
	h.metrics.RecordContentMutation("import")
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
