// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Linear programs over non-negative variables
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
)

// Sense is the relation of a constraint row to its right-hand side
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

// String returns the relation symbol
func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Constraint is one row Coeffs·x Sense RHS
type Constraint struct {
	Coeffs []float64
	Sense  Sense
	RHS    float64
}

// Problem is a linear program over x >= 0
type Problem struct {
	Objective   []float64
	Constraints []Constraint
	// Upper optionally bounds each variable from above; +Inf means unbounded.
	// nil leaves every variable unbounded.
	Upper []float64
}

// Solution is an optimal point and its objective value
type Solution struct {
	X         []float64
	Objective float64
}

// Solver runs the numerical routines with one set of settings
type Solver struct {
	settings Settings
	logger   *mfinlog.Logger
}

// New creates a solver. Zero settings fall back to DefaultSettings.
func New(settings Settings, logger *mfinlog.Logger) *Solver {
	if logger == nil {
		logger = mfinlog.Discard()
	}
	return &Solver{
		settings: settings.withDefaults(),
		logger:   logger.WithField("component", "solver"),
	}
}

// Settings returns the effective settings
func (s *Solver) Settings() Settings {
	return s.settings
}

// Maximize solves max Objective·x over the problem's constraints
func (s *Solver) Maximize(p Problem) (Solution, error) {
	neg := p
	neg.Objective = make([]float64, len(p.Objective))
	for i, c := range p.Objective {
		neg.Objective[i] = -c
	}
	sol, err := s.Minimize(neg)
	if err != nil {
		return Solution{}, err
	}
	sol.Objective = -sol.Objective
	return sol, nil
}

// row is a constraint after sign normalisation
type row struct {
	coeffs []float64
	sense  Sense
	rhs    float64
}

// Minimize solves min Objective·x subject to the constraints, x >= 0 and the
// optional upper bounds.
//
// The problem is brought to the equality form A·z = b, z >= 0 with a slack
// column per inequality. Rows without any decision coefficient are decided
// directly, and variables appearing in no row are fixed at zero or reported
// unbounded, so the simplex only sees rows and columns it accepts.
func (s *Solver) Minimize(p Problem) (Solution, error) {
	const op = "solver.Minimize"

	n := len(p.Objective)
	if n == 0 {
		return Solution{}, invalid(op, "linear program has no variables")
	}
	if p.Upper != nil && len(p.Upper) != n {
		return Solution{}, invalid(op, "upper bounds do not match the number of variables")
	}
	for _, c := range p.Objective {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Solution{}, invalid(op, "objective coefficients must be finite")
		}
	}

	rows := make([]row, 0, len(p.Constraints)+n)
	for _, c := range p.Constraints {
		if len(c.Coeffs) != n {
			return Solution{}, invalid(op, "constraint length does not match the number of variables")
		}
		if !finite(c.RHS) || !allFinite(c.Coeffs) {
			return Solution{}, invalid(op, "constraint values must be finite")
		}
		rows = append(rows, row{coeffs: append([]float64(nil), c.Coeffs...), sense: c.Sense, rhs: c.RHS})
	}
	for j, u := range p.Upper {
		if math.IsNaN(u) {
			return Solution{}, invalid(op, "upper bounds must not be NaN")
		}
		if math.IsInf(u, 1) {
			continue
		}
		if u < 0 {
			return Solution{}, fail(ErrInfeasible, op, "negative upper bound on a non-negative variable")
		}
		coeffs := make([]float64, n)
		coeffs[j] = 1
		rows = append(rows, row{coeffs: coeffs, sense: LessEqual, rhs: u})
	}

	for i := range rows {
		if rows[i].rhs < 0 {
			rows[i] = rows[i].negated()
		}
	}

	// Variables that appear in no row
	active := make([]int, 0, n)
	for j := 0; j < n; j++ {
		used := false
		for _, r := range rows {
			if r.coeffs[j] != 0 {
				used = true
				break
			}
		}
		switch {
		case used:
			active = append(active, j)
		case p.Objective[j] < 0:
			return Solution{}, fail(ErrUnbounded, op, "variable without constraints lowers the objective")
		}
	}

	// Rows that do not involve any variable
	kept := rows[:0]
	for _, r := range rows {
		if !r.isZero() {
			kept = append(kept, r)
			continue
		}
		if !r.holdsAtZero() {
			return Solution{}, fail(ErrInfeasible, op, "constraint cannot be met by any allocation")
		}
	}
	rows = kept

	x := make([]float64, n)
	if len(rows) == 0 {
		for _, j := range active {
			if p.Objective[j] < 0 {
				return Solution{}, fail(ErrUnbounded, op, "unconstrained variable lowers the objective")
			}
		}
		return Solution{X: x}, nil
	}

	cols := len(active)
	for _, r := range rows {
		if r.sense != Equal {
			cols++
		}
	}
	m := len(rows)
	if m > cols {
		return Solution{}, fail(ErrSingular, op, "more equality constraints than variables")
	}

	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	c := make([]float64, cols)
	for k, j := range active {
		c[k] = p.Objective[j]
	}
	slack := len(active)
	for i, r := range rows {
		for k, j := range active {
			a.Set(i, k, r.coeffs[j])
		}
		switch r.sense {
		case LessEqual:
			a.Set(i, slack, 1)
			slack++
		case GreaterEqual:
			a.Set(i, slack, -1)
			slack++
		}
		b[i] = r.rhs
	}

	s.logger.Debug("solving linear program", mfinlog.Fields{
		"rows":      m,
		"columns":   cols,
		"variables": n,
	})

	_, z, err := lp.Simplex(c, a, b, s.settings.SimplexTolerance, nil)
	if err != nil {
		return Solution{}, simplexError(err)
	}

	objective := 0.0
	for k, j := range active {
		v := z[k]
		if v < 0 && v > -s.settings.IntegralTolerance {
			v = 0
		}
		x[j] = v
		objective += p.Objective[j] * v
	}
	return Solution{X: x, Objective: objective}, nil
}

func simplexError(err error) error {
	const op = "solver.Minimize"
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return fail(ErrInfeasible, op, "linear program is infeasible")
	case errors.Is(err, lp.ErrUnbounded):
		return fail(ErrUnbounded, op, "linear program is unbounded")
	case errors.Is(err, lp.ErrSingular):
		return fail(ErrSingular, op, "constraint matrix is rank deficient")
	default:
		return mfinerror.Wrap(err, "simplex failed").
			WithCode(mfinerror.CodeCalculation).
			WithOperation(op)
	}
}

func (r row) negated() row {
	out := row{coeffs: make([]float64, len(r.coeffs)), rhs: -r.rhs}
	for j, v := range r.coeffs {
		out.coeffs[j] = -v
	}
	switch r.sense {
	case LessEqual:
		out.sense = GreaterEqual
	case GreaterEqual:
		out.sense = LessEqual
	default:
		out.sense = r.sense
	}
	return out
}

func (r row) isZero() bool {
	for _, v := range r.coeffs {
		if v != 0 {
			return false
		}
	}
	return true
}

// holdsAtZero reports whether 0 Sense rhs holds; rhs is non-negative here
func (r row) holdsAtZero() bool {
	switch r.sense {
	case LessEqual:
		return true
	default:
		return r.rhs == 0
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !finite(v) {
			return false
		}
	}
	return true
}
