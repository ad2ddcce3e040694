// Package error provides structured error handling for the mFIN calculator.
//
// Package: error
// Title: mFIN Error Handling Framework
// Description: This package implements coded errors with severity, details and
//              operation context. Codes classify failures of the calculation
//              pipeline (missing inputs, malformed registries, solver and
//              root-finder failures) so callers can branch on them while
//              errors.Is/errors.As keep working through wrapped causes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Calculation error codes, chain-aware code lookup,
//                      dropped stack capture and request metadata
//
// Usage:
//   import mfinerror "github.com/msto63/mFIN/foundation/core/error"
//
//   err := mfinerror.Wrap(solver.ErrInfeasible, "optimize par-bonds").
//     WithCode(mfinerror.CodeSolverInfeasible).
//     WithDetail("obligations", 4)
//
//   if mfinerror.HasCode(err, mfinerror.CodeSolverInfeasible) {
//     // no feasible allocation, inputs need adjusting
//   }
package error
