// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the business logic sitting between the HTTP
// handlers and the data store.
package service

import (
	"errors"
	"fmt"

	"github.com/geoportfolio/geoportfolio/internal/auth"
	"github.com/geoportfolio/geoportfolio/internal/metrics"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// Login failure modes, checked in this order.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAccountInactive = errors.New("account inactive")
)

// Auth verifies credentials and performs the login bookkeeping: activity
// trail, security notification and the last-login stamp.
type Auth struct {
	store   *store.Store
	metrics metrics.Recorder
}

// NewAuth creates the auth service.
func NewAuth(st *store.Store, rec metrics.Recorder) *Auth {
	return &Auth{store: st, metrics: rec}
}

// Login authenticates by email and password. On success it records the
// login activity with the request metadata, writes a security alert to the
// email log and stamps the user's last login. Failures are reported in a
// fixed order: unknown user, wrong password, inactive account.
func (a *Auth) Login(email, password string, meta store.LoginMeta) (model.User, error) {
	user, ok := a.store.UserByEmail(email)
	if !ok {
		a.metrics.RecordLoginFailure("user_not_found")
		return model.User{}, ErrUserNotFound
	}

	match, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return model.User{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		a.metrics.RecordLoginFailure("invalid_password")
		return model.User{}, ErrInvalidPassword
	}

	if !user.IsActive() {
		a.metrics.RecordLoginFailure("account_inactive")
		return model.User{}, ErrAccountInactive
	}

	if err := a.store.RecordLogin(user.ID, meta, true); err != nil {
		return model.User{}, fmt.Errorf("recording login: %w", err)
	}
	a.metrics.RecordLoginSuccess()

	// Re-read to pick up the fresh last-login stamp.
	user, _ = a.store.UserByID(user.ID)
	return user, nil
}

// LoginAsNewUser performs the login bookkeeping for the admin created by
// the setup wizard. The activity trail is written but no security alert
// email is logged.
func (a *Auth) LoginAsNewUser(userID int64, meta store.LoginMeta) (model.User, error) {
	if err := a.store.RecordLogin(userID, meta, false); err != nil {
		return model.User{}, fmt.Errorf("recording login: %w", err)
	}
	a.metrics.RecordLoginSuccess()

	user, ok := a.store.UserByID(userID)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}
