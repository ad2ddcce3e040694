// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Tolerances and iteration budgets for the numerical solvers
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package solver wraps the numerical collaborators used by the optimisation
// and rate calculations: a linear program solver, a binary knapsack, a dense
// linear system solve and two scalar root finders.
//
// Every failure mode is reported as a coded error whose chain contains one of
// the package sentinels, so callers can tell an infeasible allocation or a
// root finder that ran out of iterations from a numeric result.
package solver

// Settings holds solver tolerances and budgets
type Settings struct {
	// NewtonTolerance is the step size below which Newton stops
	NewtonTolerance float64
	// NewtonMaxIterations bounds the Newton iteration
	NewtonMaxIterations int
	// DerivativeThreshold is the smallest derivative magnitude Newton divides by
	DerivativeThreshold float64

	// BisectionTolerance is the bracket width below which bisection stops
	BisectionTolerance float64
	// BisectionMaxIterations bounds the bisection
	BisectionMaxIterations int

	// SimplexTolerance is passed to the simplex as the reduced cost tolerance
	SimplexTolerance float64
	// IntegralTolerance decides when a relaxed knapsack variable counts as 0 or 1
	IntegralTolerance float64
	// BranchMaxNodes bounds the knapsack branch and bound
	BranchMaxNodes int
}

// DefaultSettings returns the settings used when no configuration is given
func DefaultSettings() Settings {
	return Settings{
		NewtonTolerance:        1.48e-8,
		NewtonMaxIterations:    50,
		DerivativeThreshold:    1e-15,
		BisectionTolerance:     1e-10,
		BisectionMaxIterations: 200,
		SimplexTolerance:       1e-10,
		IntegralTolerance:      1e-9,
		BranchMaxNodes:         10000,
	}
}

// withDefaults fills zero fields from DefaultSettings
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.NewtonTolerance <= 0 {
		s.NewtonTolerance = d.NewtonTolerance
	}
	if s.NewtonMaxIterations <= 0 {
		s.NewtonMaxIterations = d.NewtonMaxIterations
	}
	if s.DerivativeThreshold <= 0 {
		s.DerivativeThreshold = d.DerivativeThreshold
	}
	if s.BisectionTolerance <= 0 {
		s.BisectionTolerance = d.BisectionTolerance
	}
	if s.BisectionMaxIterations <= 0 {
		s.BisectionMaxIterations = d.BisectionMaxIterations
	}
	if s.SimplexTolerance <= 0 {
		s.SimplexTolerance = d.SimplexTolerance
	}
	if s.IntegralTolerance <= 0 {
		s.IntegralTolerance = d.IntegralTolerance
	}
	if s.BranchMaxNodes <= 0 {
		s.BranchMaxNodes = d.BranchMaxNodes
	}
	return s
}
