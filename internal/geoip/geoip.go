// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip resolves client IPs to ISO country codes using a MaxMind
// GeoLite2-Country database. Lookups degrade to an empty code when no
// database is configured, so login auditing works without one.
package geoip

import (
	"fmt"
	"net"
	"sync"

	"github.com/oschwald/maxminddb-golang"
)

// Resolver wraps a GeoLite2-Country reader. The zero value is a disabled
// resolver that returns empty country codes.
type Resolver struct {
	mu sync.RWMutex
	db *maxminddb.Reader
}

// record matches the GeoLite2-Country database structure.
type record struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// Open creates a resolver from a GeoLite2-Country .mmdb file. An empty
// path returns a disabled resolver and no error.
func Open(dbPath string) (*Resolver, error) {
	if dbPath == "" {
		return &Resolver{}, nil
	}

	db, err := maxminddb.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening GeoIP database: %w", err)
	}
	return &Resolver{db: db}, nil
}

// Country returns the 2-letter ISO country code for an IP address.
// Private and loopback addresses resolve to "LOCAL". Invalid input, a
// disabled resolver or an unknown address all yield "".
func (r *Resolver) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	if parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() {
		return "LOCAL"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return ""
	}

	var rec record
	if err := r.db.Lookup(parsed, &rec); err != nil {
		return ""
	}
	return rec.Country.ISOCode
}

// Enabled reports whether a database is loaded.
func (r *Resolver) Enabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.db != nil
}

// Close releases the database reader.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}
