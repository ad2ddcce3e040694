// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Solver sentinels and their coded wrappers
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package solver

import (
	"errors"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
)

var (
	// ErrInfeasible means no allocation satisfies the constraints
	ErrInfeasible = errors.New("no feasible solution")
	// ErrUnbounded means the objective can improve without limit
	ErrUnbounded = errors.New("objective is unbounded")
	// ErrSingular means a linear system has no unique solution
	ErrSingular = errors.New("system is singular")
	// ErrNotConverged means a root finder exhausted its budget or lost its bracket
	ErrNotConverged = errors.New("root finder did not converge")
	// ErrNodeLimit means branch and bound stopped before proving optimality
	ErrNodeLimit = errors.New("branch and bound node limit reached")
)

var sentinelCodes = []struct {
	err  error
	code mfinerror.Code
}{
	{ErrInfeasible, mfinerror.CodeSolverInfeasible},
	{ErrUnbounded, mfinerror.CodeSolverUnbounded},
	{ErrSingular, mfinerror.CodeSingularSystem},
	{ErrNotConverged, mfinerror.CodeRootNotConverged},
	{ErrNodeLimit, mfinerror.CodeCalculation},
}

// fail wraps a sentinel with its code and the operation that produced it
func fail(sentinel error, operation, message string) error {
	e := mfinerror.Wrap(sentinel, message).WithOperation(operation)
	for _, sc := range sentinelCodes {
		if errors.Is(sentinel, sc.err) {
			return e.WithCode(sc.code)
		}
	}
	return e.WithCode(mfinerror.CodeCalculation)
}

func invalid(operation, message string) error {
	return mfinerror.New(message).
		WithCode(mfinerror.CodeInvalidInput).
		WithOperation(operation)
}
