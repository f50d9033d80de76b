// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the JSON API surface: public portfolio
// content, the admin panel endpoints and the setup wizard.
package handler

import (
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/geoportfolio/geoportfolio/internal/geoip"
	"github.com/geoportfolio/geoportfolio/internal/metrics"
	"github.com/geoportfolio/geoportfolio/internal/middleware"
	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/store"
	"github.com/geoportfolio/geoportfolio/internal/version"
)

// Handler bundles the dependencies shared by all endpoints.
type Handler struct {
	store     *store.Store
	auth      *service.Auth
	installer *service.Installer
	sm        *scs.SessionManager
	lp        *middleware.LoginProtection
	geo       *geoip.Resolver
	metrics   metrics.Recorder
	version   version.Info
	startTime time.Time
}

// New creates the handler.
func New(
	st *store.Store,
	auth *service.Auth,
	installer *service.Installer,
	sm *scs.SessionManager,
	lp *middleware.LoginProtection,
	geo *geoip.Resolver,
	rec metrics.Recorder,
	ver version.Info,
) *Handler {
	return &Handler{
		store:     st,
		auth:      auth,
		installer: installer,
		sm:        sm,
		lp:        lp,
		geo:       geo,
		metrics:   rec,
		version:   ver,
		startTime: time.Now(),
	}
}
