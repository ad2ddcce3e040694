// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              in logs and in the exit status of the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for calculation codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a recoverable user mistake
	// Examples: missing input field, value out of range
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation the session survives
	// Examples: infeasible optimisation, root finder without convergence
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable config file
	SeverityHigh

	// SeverityCritical indicates a broken setup, e.g. a malformed calculation registry
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level must abort the current command
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeMalformedRegistry, CodeDuplicateEntry:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig, CodeFileError, CodeInternal:
		return SeverityHigh

	case CodeSolverInfeasible, CodeSolverUnbounded, CodeSingularSystem,
		CodeRootNotConverged, CodeCalculation:
		return SeverityMedium

	case CodeMissingField, CodeUnknownField, CodeInvalidValue, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
