// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Category types.
const (
	CategoryTypeWork = "work"
	CategoryTypeBlog = "blog"
)

// Category labels works or blog posts. Names are not required to be unique.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// IsValidCategoryType reports whether t is a known category type.
func IsValidCategoryType(t string) bool {
	return t == CategoryTypeWork || t == CategoryTypeBlog
}
