// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Image display styles for cards and detail pages.
const (
	ImageStyleCover   = "cover"
	ImageStyleContain = "contain"
)

// Work represents a portfolio project.
// Category holds a Category name, not a foreign key: renaming or deleting
// a category leaves existing works untouched.
type Work struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"` // sanitized HTML
	ImageURL        string    `json:"image_url"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Link            string    `json:"link,omitempty"`
	ImageStyle      string    `json:"image_style,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Place           string    `json:"place,omitempty"`
}
