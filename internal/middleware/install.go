// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/geoportfolio/geoportfolio/internal/service"
)

// RequireInstalled rejects requests until the setup wizard has completed.
// Applied to the login route; public content stays reachable before install.
func RequireInstalled(installer *service.Installer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			installed, err := installer.Installed()
			if err != nil {
				slog.Error("checking installed flag", "error", err)
				WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !installed {
				WriteError(w, http.StatusConflict, "site is not installed, complete setup first")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
