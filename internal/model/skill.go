// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SkillItem is a single named skill with a 0-100 proficiency percentage.
// The percentage comes straight from the admin form and is clamped, not
// rejected, on write.
type SkillItem struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// Skill groups skill items under a category label.
type Skill struct {
	ID       int64       `json:"id"`
	Category string      `json:"category"`
	Skills   []SkillItem `json:"skills"`
}
