// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"errors"
	"testing"

	"github.com/geoportfolio/geoportfolio/internal/auth"
	"github.com/geoportfolio/geoportfolio/internal/metrics"
	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

func newAuthFixture(t *testing.T) (*Auth, *store.Store, model.User) {
	t.Helper()

	st := store.New()
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := st.CreateUser(model.User{
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	})
	return NewAuth(st, metrics.Nop{}), st, user
}

func TestLoginSuccess(t *testing.T) {
	svc, st, _ := newAuthFixture(t)

	meta := store.LoginMeta{IPAddress: "203.0.113.9", Browser: "Firefox", OS: "Linux"}
	user, err := svc.Login("owner@example.com", "correct-horse", meta)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.LastLogin == nil {
		t.Error("LastLogin should be stamped on the returned user")
	}

	acts := st.LoginActivities()
	if len(acts) != 1 || acts[0].IPAddress != "203.0.113.9" {
		t.Errorf("unexpected activity trail: %+v", acts)
	}
	if st.EmailLogs()[0].Subject != "Security Alert: New Login" {
		t.Errorf("expected security alert, got %q", st.EmailLogs()[0].Subject)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, st, _ := newAuthFixture(t)

	if _, err := svc.Login("nobody@example.com", "whatever", store.LoginMeta{}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if len(st.LoginActivities()) != 0 {
		t.Error("failed login must not appear in the activity trail")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login("owner@example.com", "wrong", store.LoginMeta{}); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, st, user := newAuthFixture(t)
	if _, err := st.ToggleUserStatus(user.ID); err != nil {
		t.Fatalf("ToggleUserStatus: %v", err)
	}

	if _, err := svc.Login("owner@example.com", "correct-horse", store.LoginMeta{}); !errors.Is(err, ErrAccountInactive) {
		t.Errorf("expected ErrAccountInactive, got %v", err)
	}
}

func TestLoginWrongPasswordBeforeInactive(t *testing.T) {
	// An inactive account with a wrong password reports the password error.
	svc, st, user := newAuthFixture(t)
	if _, err := st.ToggleUserStatus(user.ID); err != nil {
		t.Fatalf("ToggleUserStatus: %v", err)
	}

	if _, err := svc.Login("owner@example.com", "wrong", store.LoginMeta{}); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestLoginAsNewUserSkipsAlert(t *testing.T) {
	svc, st, user := newAuthFixture(t)
	alerts := len(st.EmailLogs())

	got, err := svc.LoginAsNewUser(user.ID, store.LoginMeta{IPAddress: "127.0.0.1"})
	if err != nil {
		t.Fatalf("LoginAsNewUser: %v", err)
	}
	if got.LastLogin == nil {
		t.Error("LastLogin should be stamped")
	}
	if len(st.EmailLogs()) != alerts {
		t.Error("setup login must not write a security alert")
	}
	if len(st.LoginActivities()) != 1 {
		t.Error("setup login should still appear in the activity trail")
	}
}
