// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// LoginActivity records one successful login. Append-only.
type LoginActivity struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address"`
	Browser   string    `json:"browser,omitempty"`
	OS        string    `json:"os,omitempty"`
	Country   string    `json:"country,omitempty"`
}
