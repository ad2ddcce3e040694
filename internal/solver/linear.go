// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Dense square linear systems
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package solver

import (
	"gonum.org/v1/gonum/mat"
)

// SolveLinear solves a·x = b for a square matrix given by rows. A singular or
// near-singular matrix is reported as ErrSingular.
func (s *Solver) SolveLinear(a [][]float64, b []float64) ([]float64, error) {
	const op = "solver.SolveLinear"

	n := len(b)
	if n == 0 || len(a) != n {
		return nil, invalid(op, "linear system must be square and non-empty")
	}
	data := make([]float64, 0, n*n)
	for _, r := range a {
		if len(r) != n {
			return nil, invalid(op, "linear system must be square and non-empty")
		}
		if !allFinite(r) {
			return nil, invalid(op, "linear system coefficients must be finite")
		}
		data = append(data, r...)
	}
	if !allFinite(b) {
		return nil, invalid(op, "linear system coefficients must be finite")
	}

	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		return nil, fail(ErrSingular, op, err.Error())
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
