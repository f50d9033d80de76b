// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/auth"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/state"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// MinPasswordLength applies to the setup wizard and user management.
const MinPasswordLength = 6

// ErrAlreadyInstalled is returned when setup runs a second time.
var ErrAlreadyInstalled = errors.New("site is already installed")

// ValidationError reports a rejected setup field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SetupRequest is the setup wizard input.
type SetupRequest struct {
	SiteTitle        string
	CopyrightText    string
	AdminName        string
	AdminEmail       string
	AdminPassword    string
	ClearDemoContent bool
}

// Installer runs the one-time setup wizard. The installed flag lives in
// the state database so it survives restarts.
type Installer struct {
	store *store.Store
	db    *sql.DB
}

// NewInstaller creates the installer service.
func NewInstaller(st *store.Store, db *sql.DB) *Installer {
	return &Installer{store: st, db: db}
}

// Installed reports whether setup has completed.
func (i *Installer) Installed() (bool, error) {
	return state.Installed(i.db)
}

// Complete validates the wizard input, initializes the site and marks it
// installed. Returns the created admin account.
func (i *Installer) Complete(req SetupRequest) (model.User, error) {
	installed, err := i.Installed()
	if err != nil {
		return model.User{}, err
	}
	if installed {
		return model.User{}, ErrAlreadyInstalled
	}

	if err := validateSetup(req); err != nil {
		return model.User{}, err
	}

	hash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return model.User{}, fmt.Errorf("hashing admin password: %w", err)
	}

	admin := i.store.InitializeSite(store.InitConfig{
		SiteTitle:         strings.TrimSpace(req.SiteTitle),
		CopyrightText:     strings.TrimSpace(req.CopyrightText),
		AdminName:         strings.TrimSpace(req.AdminName),
		AdminEmail:        strings.TrimSpace(req.AdminEmail),
		AdminPasswordHash: hash,
		ClearDemoContent:  req.ClearDemoContent,
	})

	if err := state.SetInstalled(i.db); err != nil {
		return model.User{}, err
	}
	return admin, nil
}

func validateSetup(req SetupRequest) error {
	if strings.TrimSpace(req.AdminName) == "" {
		return &ValidationError{Field: "adminName", Message: "name is required"}
	}
	email := strings.TrimSpace(req.AdminEmail)
	if email == "" {
		return &ValidationError{Field: "adminEmail", Message: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "adminEmail", Message: "email is invalid"}
	}
	if len(req.AdminPassword) < MinPasswordLength {
		return &ValidationError{Field: "adminPassword",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}
	return nil
}
