// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"github.com/geoportfolio/geoportfolio/internal/model"
)

// SiteSettings returns the site configuration singleton.
func (s *Store) SiteSettings() model.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.siteSettings
}

// UpdateSiteSettings overwrites the site configuration wholesale.
func (s *Store) UpdateSiteSettings(settings model.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.siteSettings = settings
}

// ContactInfo returns the public contact details singleton.
func (s *Store) ContactInfo() model.ContactInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contactInfo
}

// UpdateContactInfo overwrites the contact details wholesale.
func (s *Store) UpdateContactInfo(info model.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactInfo = info
}
