// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version carries build-time version information.
package version

import "fmt"

// Info holds the values injected via ldflags at build time.
type Info struct {
	Version   string // semantic version from git tags, e.g. "v1.2.3"
	GitCommit string // short git commit hash
	BuildTime string // RFC3339 build timestamp
}

// String renders the info in the form used by the -version flag.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildTime)
}
