// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer provides JSON import/export of the site content. The
// document uses camelCase keys and is the only way content crosses a
// process restart.
package transfer

import "time"

// ExportVersion is the current version of the export format.
const ExportVersion = "1.0"

// Document is the complete export structure. The eight content keys are
// required on import; the metadata fields are informational and ignored.
type Document struct {
	Version    string     `json:"version,omitempty"`
	ExportedAt *time.Time `json:"exportedAt,omitempty"`
	ExportID   string     `json:"exportId,omitempty"`

	Works        []Work       `json:"works"`
	BlogPosts    []BlogPost   `json:"blogPosts"`
	Profile      Profile      `json:"profile"`
	SiteSettings SiteSettings `json:"siteSettings"`
	Skills       []Skill      `json:"skills"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	Users        []User       `json:"users"`
	Categories   []Category   `json:"categories"`
}

// Work mirrors the portfolio work entity in the export document.
type Work struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	ImageURL        string    `json:"imageUrl"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Link            string    `json:"link,omitempty"`
	ImageStyle      string    `json:"imageStyle,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Place           string    `json:"place,omitempty"`
}

// BlogPost mirrors the blog post entity in the export document.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	PublishDate string    `json:"publishDate"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	ImageStyle  string    `json:"imageStyle,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Place       string    `json:"place,omitempty"`
}

// Category mirrors the category entity in the export document.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SkillItem mirrors a single skill in the export document.
type SkillItem struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// Skill mirrors a skill group in the export document.
type Skill struct {
	ID       int64       `json:"id"`
	Category string      `json:"category"`
	Skills   []SkillItem `json:"skills"`
}

// User mirrors an account in the export document. Passwords are never
// exported; imported accounts need a password reset before they can log in.
type User struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedOn  time.Time  `json:"createdOn"`
	LastUpdate time.Time  `json:"lastUpdate"`
}

// SocialLinks mirrors the footer social URLs.
type SocialLinks struct {
	Twitter  string `json:"twitter"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// SiteSettings mirrors the site configuration singleton.
type SiteSettings struct {
	Title           string      `json:"title"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	CopyrightText   string      `json:"copyrightText"`
	FaviconURL      string      `json:"faviconUrl"`
	MetaDescription string      `json:"metaDescription"`
}

// ContactInfo mirrors the public contact details singleton.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Profile mirrors the owner profile with its sub-collections.
type Profile struct {
	Name                 string          `json:"name"`
	Title                string          `json:"title"`
	Summary              string          `json:"summary"`
	Bio                  string          `json:"bio"`
	AvatarURL            string          `json:"avatarUrl"`
	ResumeURL            string          `json:"resumeUrl"`
	ExpertiseTitle       string          `json:"expertiseTitle"`
	ExpertiseDescription string          `json:"expertiseDescription"`
	WhatIDo              []WhatIDoItem   `json:"whatIDo"`
	CoreCompetencies     []Competency    `json:"coreCompetencies"`
	Education            []Education     `json:"education"`
	Experience           []Experience    `json:"experience"`
	Certifications       []Certification `json:"certifications"`
	Training             []Training      `json:"training"`
	Memberships          []Membership    `json:"memberships"`
}

// WhatIDoItem mirrors a headline service entry.
type WhatIDoItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Competency mirrors a skill keyword.
type Competency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Education mirrors a degree entry.
type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// Experience mirrors a work-history entry.
type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Certification mirrors an earned certificate.
type Certification struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Training mirrors a completed training course.
type Training struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Membership mirrors a professional membership.
type Membership struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Period string `json:"period"`
}
