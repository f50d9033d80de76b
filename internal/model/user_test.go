// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestUserIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleEditor, false},
		{"", false},
		{"Admin", false}, // roles are lowercase
	}

	for _, tt := range tests {
		u := User{Role: tt.role}
		if got := u.IsAdmin(); got != tt.want {
			t.Errorf("IsAdmin() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestUserIsActive(t *testing.T) {
	u := User{Status: StatusActive}
	if !u.IsActive() {
		t.Error("active user should be active")
	}

	u.Status = StatusInactive
	if u.IsActive() {
		t.Error("inactive user should not be active")
	}
}

func TestIsValidCategoryType(t *testing.T) {
	if !IsValidCategoryType(CategoryTypeWork) || !IsValidCategoryType(CategoryTypeBlog) {
		t.Error("work and blog should be valid category types")
	}
	if IsValidCategoryType("page") {
		t.Error("unknown type should be invalid")
	}
}
