// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"github.com/geoportfolio/geoportfolio/internal/model"
)

// InitConfig carries the setup wizard input. AdminPasswordHash must
// already be hashed by the caller.
type InitConfig struct {
	SiteTitle         string
	CopyrightText     string
	AdminName         string
	AdminEmail        string
	AdminPasswordHash string
	ClearDemoContent  bool
}

// InitializeSite applies the setup wizard in three ordered steps: merge
// the provided site settings over the current ones, optionally clear the
// demo content, then replace the user list with a single admin account
// (id 1). Returns the created admin.
func (s *Store) InitializeSite(cfg InitConfig) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.SiteTitle != "" {
		s.siteSettings.Title = cfg.SiteTitle
	}
	if cfg.CopyrightText != "" {
		s.siteSettings.CopyrightText = cfg.CopyrightText
	}

	if cfg.ClearDemoContent {
		s.works = nil
		s.blogPosts = nil
		s.skills = nil
		s.profile.WhatIDo = nil
		s.profile.CoreCompetencies = nil
		s.profile.Education = nil
		s.profile.Experience = nil
		s.profile.Certifications = nil
		s.profile.Training = nil
		s.profile.Memberships = nil
		s.seq.works, s.seq.posts, s.seq.skills = 0, 0, 0
		s.resyncProfileSequences()
	}

	ts := now()
	admin := model.User{
		ID:           1,
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
		CreatedOn:    ts,
		LastUpdate:   ts,
	}
	s.users = []model.User{admin}
	s.seq.users = 1
	return admin
}
