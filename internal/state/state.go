// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"database/sql"
	"errors"
	"fmt"
)

const installedKey = "installed"

// Installed reports whether the setup wizard has completed.
func Installed(db *sql.DB) (bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM app_state WHERE key = ?", installedKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading installed flag: %w", err)
	}
	return value == "true", nil
}

// SetInstalled marks the setup wizard as completed.
func SetInstalled(db *sql.DB) error {
	_, err := db.Exec(
		"INSERT INTO app_state (key, value) VALUES (?, 'true') ON CONFLICT (key) DO UPDATE SET value = 'true'",
		installedKey)
	if err != nil {
		return fmt.Errorf("writing installed flag: %w", err)
	}
	return nil
}
