// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SocialLinks holds the footer social profile URLs.
type SocialLinks struct {
	Twitter  string `json:"twitter"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// SiteSettings is the site configuration singleton, overwritten wholesale
// on save.
type SiteSettings struct {
	Title           string      `json:"title"`
	SocialLinks     SocialLinks `json:"social_links"`
	CopyrightText   string      `json:"copyright_text"`
	FaviconURL      string      `json:"favicon_url"`
	MetaDescription string      `json:"meta_description"`
}

// ContactInfo is the public contact details singleton.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
