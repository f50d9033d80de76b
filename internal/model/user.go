// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain entities held by the in-memory data
// store: portfolio works, blog posts, the owner profile, users, messages
// and the audit collections (email log, login activity).
package model

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents an admin panel account.
// PasswordHash is an argon2id encoded hash and is never serialized.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
	LastUpdate   time.Time  `json:"last_update"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive returns true if the account may log in.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
