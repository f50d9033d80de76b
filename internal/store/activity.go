// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// LoginActivities returns the login audit trail in chronological order.
func (s *Store) LoginActivities() []model.LoginActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.loginActivity)
}
