// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Scalar root finders
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package solver

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	mfinlog "github.com/msto63/mFIN/foundation/core/log"
)

// Newton finds a root of f starting from guess. Derivatives are taken by
// central finite differences. The iteration stops once a step is smaller than
// the Newton tolerance; a vanishing derivative, a non-finite iterate or an
// exhausted budget is ErrNotConverged.
func (s *Solver) Newton(f func(float64) float64, guess float64) (float64, error) {
	const op = "solver.Newton"

	settings := &fd.Settings{Formula: fd.Central}
	x := guess
	for i := 0; i < s.settings.NewtonMaxIterations; i++ {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		d := fd.Derivative(f, x, settings)
		if math.Abs(d) < s.settings.DerivativeThreshold || !finite(d) {
			return 0, fail(ErrNotConverged, op, "derivative vanished")
		}

		next := x - fx/d
		if !finite(next) {
			return 0, fail(ErrNotConverged, op, "iterate left the finite range")
		}
		if math.Abs(next-x) < s.settings.NewtonTolerance {
			s.logger.Debug("newton converged", mfinlog.Fields{"iterations": i + 1, "root": next})
			return next, nil
		}
		x = next
	}
	return 0, fail(ErrNotConverged, op, "iteration budget exhausted")
}

// Bisect finds a root of f in [lo, hi]. f must change sign over the bracket.
func (s *Solver) Bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	const op = "solver.Bisect"

	if !finite(lo) || !finite(hi) || lo >= hi {
		return 0, invalid(op, "bisection bracket must be a finite interval")
	}
	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.IsNaN(flo) || math.IsNaN(fhi) || (flo > 0) == (fhi > 0):
		return 0, fail(ErrNotConverged, op, "function does not change sign over the bracket")
	}

	for i := 0; i < s.settings.BisectionMaxIterations; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 || (hi-lo)/2 < s.settings.BisectionTolerance {
			s.logger.Debug("bisection converged", mfinlog.Fields{"iterations": i + 1, "root": mid})
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, fail(ErrNotConverged, op, "iteration budget exhausted")
}
