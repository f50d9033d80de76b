// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// BlogPost represents a published article.
// PublishDate is free-form display text ("December 15, 2023"); CreatedAt is
// the machine timestamp used for ordering. Category is a loose name
// reference, same as Work.Category.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"` // sanitized HTML
	ImageURL    string    `json:"image_url"`
	PublishDate string    `json:"publish_date"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	ImageStyle  string    `json:"image_style,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Place       string    `json:"place,omitempty"`
}
