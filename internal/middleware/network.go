// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client IP from the request, honoring reverse
// proxy headers before falling back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	// X-Forwarded-For can contain multiple IPs; take the first one.
	if ips := r.Header.Get("X-Forwarded-For"); ips != "" {
		if idx := strings.IndexByte(ips, ','); idx >= 0 {
			ips = ips[:idx]
		}
		return strings.TrimSpace(ips)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
