// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import "testing"

func TestDisabledResolver(t *testing.T) {
	r, err := Open("")
	if err != nil {
		t.Fatalf("Open with empty path: %v", err)
	}
	if r.Enabled() {
		t.Error("empty path should disable the resolver")
	}

	if got := r.Country("8.8.8.8"); got != "" {
		t.Errorf("disabled resolver returned %q, want empty", got)
	}
}

func TestLocalAddresses(t *testing.T) {
	r := &Resolver{}

	tests := []struct {
		ip   string
		want string
	}{
		{"127.0.0.1", "LOCAL"},
		{"192.168.1.10", "LOCAL"},
		{"10.0.0.5", "LOCAL"},
		{"::1", "LOCAL"},
		{"not-an-ip", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := r.Country(tt.ip); got != tt.want {
			t.Errorf("Country(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	if _, err := Open("/nonexistent/GeoLite2-Country.mmdb"); err == nil {
		t.Error("expected error for missing database file")
	}
}
