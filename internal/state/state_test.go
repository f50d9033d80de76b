// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestInstalledFlag(t *testing.T) {
	db := testDB(t)

	installed, err := Installed(db)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if installed {
		t.Error("fresh database should not be installed")
	}

	if err := SetInstalled(db); err != nil {
		t.Fatalf("SetInstalled: %v", err)
	}

	installed, err = Installed(db)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if !installed {
		t.Error("installed flag should persist")
	}

	// Setting twice is fine.
	if err := SetInstalled(db); err != nil {
		t.Fatalf("SetInstalled again: %v", err)
	}
}

func TestMigrateCreatesSessionsTable(t *testing.T) {
	db := testDB(t)

	if _, err := db.Exec("INSERT INTO sessions (token, data, expiry) VALUES ('t', x'00', 0)"); err != nil {
		t.Fatalf("sessions table missing: %v", err)
	}
}
