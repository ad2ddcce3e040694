// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the calculator. Codes drive severity defaults and let
//              callers tell user mistakes from configuration faults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Calculation, solver and registry codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Input collection
	CodeMissingField Code = "MISSING_FIELD"
	CodeUnknownField Code = "UNKNOWN_FIELD"
	CodeInvalidValue Code = "INVALID_VALUE"

	// Registry and calculation
	CodeMalformedRegistry Code = "MALFORMED_REGISTRY"
	CodeDuplicateEntry    Code = "DUPLICATE_ENTRY"
	CodeCalculation       Code = "CALCULATION_FAILED"

	// Numerical solvers
	CodeSolverInfeasible Code = "SOLVER_INFEASIBLE"
	CodeSolverUnbounded  Code = "SOLVER_UNBOUNDED"
	CodeSingularSystem   Code = "SINGULAR_SYSTEM"
	CodeRootNotConverged Code = "ROOT_NOT_CONVERGED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeFileError     Code = "FILE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMissingField, CodeUnknownField, CodeInvalidValue,
		CodeMalformedRegistry, CodeDuplicateEntry, CodeCalculation,
		CodeSolverInfeasible, CodeSolverUnbounded, CodeSingularSystem, CodeRootNotConverged,
		CodeConfigError, CodeInvalidConfig, CodeFileError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMissingField, CodeUnknownField, CodeInvalidValue, CodeInvalidInput:
		return "input"
	case CodeMalformedRegistry, CodeDuplicateEntry, CodeCalculation:
		return "calculation"
	case CodeSolverInfeasible, CodeSolverUnbounded, CodeSingularSystem, CodeRootNotConverged:
		return "solver"
	case CodeConfigError, CodeInvalidConfig, CodeFileError:
		return "configuration"
	default:
		return "generic"
	}
}

// IsUserError reports whether the code describes something the user can fix
// by changing inputs. Configuration faults and internal errors are not.
func (c Code) IsUserError() bool {
	switch c.Category() {
	case "input", "solver":
		return true
	}
	return c == CodeNotFound || c == CodeCalculation
}
