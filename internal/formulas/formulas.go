// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: The calculation registry and shared input helpers
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package formulas registers every financial calculation with a dispatch
// registry. Calculations are plain functions over an input set; numerical
// work that needs a solver goes through internal/solver.
package formulas

import (
	"math"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
	"github.com/msto63/mFIN/internal/solver"
)

// Options configures the calculations
type Options struct {
	Logger *mfinlog.Logger
	// Solver runs root finding and optimisation; a default solver is used if nil
	Solver *solver.Solver
	// InitialGuess starts the Newton iterations for rates
	InitialGuess float64
	// YieldLower and YieldUpper bracket the yield to maturity search
	YieldLower float64
	YieldUpper float64
}

// DefaultOptions returns the options used by NewRegistry for zero values
func DefaultOptions() Options {
	return Options{
		InitialGuess: 0.10,
		YieldLower:   -0.99,
		YieldUpper:   1.0,
	}
}

type calculator struct {
	solver     *solver.Solver
	guess      float64
	yieldLower float64
	yieldUpper float64
}

// NewRegistry builds the registry with all calculations in menu order
func NewRegistry(opts Options) (*dispatch.Registry, error) {
	if opts.Logger == nil {
		opts.Logger = mfinlog.Discard()
	}
	d := DefaultOptions()
	if opts.InitialGuess == 0 {
		opts.InitialGuess = d.InitialGuess
	}
	if opts.YieldLower == 0 && opts.YieldUpper == 0 {
		opts.YieldLower, opts.YieldUpper = d.YieldLower, d.YieldUpper
	}
	if opts.Solver == nil {
		opts.Solver = solver.New(solver.DefaultSettings(), opts.Logger)
	}

	c := &calculator{
		solver:     opts.Solver,
		guess:      opts.InitialGuess,
		yieldLower: opts.YieldLower,
		yieldUpper: opts.YieldUpper,
	}

	reg := dispatch.NewRegistry(dispatch.Options{Logger: opts.Logger})
	groups := [][]dispatch.CalculationSpec{
		c.valueSpecs(),
		c.loanSpecs(),
		c.bondSpecs(),
		c.curveSpecs(),
		c.portfolioSpecs(),
		c.returnSpecs(),
	}
	for _, group := range groups {
		for _, spec := range group {
			if err := reg.Register(spec); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// requires is shorthand for requirement lists
func requires(fields ...catalog.Field) []catalog.Field {
	return fields
}

// compounding reads Compound Method, resolving Custom through Custom Frequency
func compounding(r *inputs.Reader) mathx.Compounding {
	m := r.Method()
	switch {
	case m.Continuous:
		return mathx.ContinuousCompounding()
	case m.Custom:
		return mathx.Discrete(r.Number(catalog.CustomFrequency))
	default:
		return mathx.Discrete(m.PerYear)
	}
}

// discrete reads Compound Method for calculations that need whole periods
func discrete(r *inputs.Reader, calc string) (int, error) {
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return 0, err
	}
	if comp.Continuous {
		return 0, invalidInput(catalog.CompoundMethod, calc+" needs a discrete compound method")
	}
	if comp.PerYear != math.Trunc(comp.PerYear) {
		return 0, invalidInput(catalog.CustomFrequency, calc+" needs a whole number of periods per year")
	}
	return int(comp.PerYear), nil
}

func invalidInput(f catalog.Field, message string) error {
	return mfinerror.New(message).
		WithCode(mfinerror.CodeInvalidInput).
		WithDetail("field", f.Name())
}

// checked turns a non-finite value into an input error
func checked(v float64, what string) (dispatch.Result, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return dispatch.Result{}, mfinerror.Newf("%s is undefined for these inputs", what).
			WithCode(mfinerror.CodeInvalidInput)
	}
	return dispatch.Scalar(v), nil
}

// nonZero rejects a zero divisor read from f
func nonZero(v float64, f catalog.Field) error {
	if v == 0 {
		return invalidInput(f, f.Name()+" must not be zero")
	}
	return nil
}
