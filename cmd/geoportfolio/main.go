// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// GeoPortfolio is a portfolio website backend with an admin panel,
// a setup wizard and JSON import/export. All site content lives in
// memory and resets on restart; only the installed flag and sessions
// persist in SQLite.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/geoportfolio/geoportfolio/internal/config"
	"github.com/geoportfolio/geoportfolio/internal/geoip"
	"github.com/geoportfolio/geoportfolio/internal/handler"
	"github.com/geoportfolio/geoportfolio/internal/metrics"
	"github.com/geoportfolio/geoportfolio/internal/middleware"
	"github.com/geoportfolio/geoportfolio/internal/service"
	"github.com/geoportfolio/geoportfolio/internal/session"
	"github.com/geoportfolio/geoportfolio/internal/state"
	"github.com/geoportfolio/geoportfolio/internal/store"
	"github.com/geoportfolio/geoportfolio/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "GeoPortfolio - portfolio website backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_STATE_DB_PATH   SQLite state database path (default: ./data/geoportfolio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_SERVER_HOST     Server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_LOG_LEVEL       Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_SEED_DEMO       Seed demo content on start (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GEOPORT_GEOIP_DB_PATH   GeoLite2-Country.mmdb path (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("geoportfolio %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.StateDBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing state database", "path", cfg.StateDBPath)
	db, err := state.NewDB(cfg.StateDBPath)
	if err != nil {
		return fmt.Errorf("initializing state database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing state database", "error", err)
		}
	}(db)

	slog.Info("running state migrations")
	if err := state.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// The content store is in-memory and reseeded on every start.
	st := store.New()
	if cfg.SeedDemo {
		if err := st.Seed(); err != nil {
			return fmt.Errorf("seeding content store: %w", err)
		}
		slog.Info("content store seeded",
			"works", len(st.Works()),
			"posts", len(st.BlogPosts()),
			"users", len(st.Users()),
		)
	}

	geo, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		return fmt.Errorf("opening geoip database: %w", err)
	}
	defer func() {
		if err := geo.Close(); err != nil {
			slog.Error("error closing geoip database", "error", err)
		}
	}()
	if geo.Enabled() {
		slog.Info("geoip lookups enabled", "path", cfg.GeoIPDBPath)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	sm := session.New(db, cfg.IsDevelopment())
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{})

	h := handler.New(
		st,
		service.NewAuth(st, collector),
		service.NewInstaller(st, db),
		sm,
		lp,
		geo,
		collector,
		versionInfo,
	)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(metrics.Handler(registry)),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
