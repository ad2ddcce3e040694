// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     version
// Description: Central version management for the mFIN binary
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Application version
	Application = "1.0.0"

	// Component versions
	Catalog  = "1.0.0"
	Formulas = "1.0.0"
	Solver   = "1.0.0"
)

// Set at build time with -ldflags "-X github.com/msto63/mFIN/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "formulas":
		return Formulas
	case "solver":
		return Solver
	default:
		return Application
	}
}

// String renders the application version with build information
func String() string {
	return fmt.Sprintf("mFIN %s (commit %s, built %s)", Application, Commit, BuildDate)
}
