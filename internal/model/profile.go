// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Profile is the singleton site-owner record. Each of the seven owned
// sub-collections carries its own independent id sequence.
type Profile struct {
	Name                 string          `json:"name"`
	Title                string          `json:"title"`
	Summary              string          `json:"summary"`
	Bio                  string          `json:"bio"` // sanitized HTML
	AvatarURL            string          `json:"avatar_url"`
	ResumeURL            string          `json:"resume_url"`
	ExpertiseTitle       string          `json:"expertise_title"`
	ExpertiseDescription string          `json:"expertise_description"`
	WhatIDo              []WhatIDoItem   `json:"what_i_do"`
	CoreCompetencies     []Competency    `json:"core_competencies"`
	Education            []Education     `json:"education"`
	Experience           []Experience    `json:"experience"`
	Certifications       []Certification `json:"certifications"`
	Training             []Training      `json:"training"`
	Memberships          []Membership    `json:"memberships"`
}

// WhatIDoItem is a headline service/interest shown on the home page.
type WhatIDoItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Competency is a short skill keyword shown on the about page.
type Competency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Education is a degree entry.
type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// Experience is a work-history entry.
type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Certification is an earned certificate.
type Certification struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Training is a completed training course.
type Training struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Membership is a professional society membership.
type Membership struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Period string `json:"period"`
}
