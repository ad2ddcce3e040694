// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     dispatch
// Description: Requirement validation, computability and closest matches
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package dispatch

import (
	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/inputs"
)

// ValidationResult tells whether all required fields are present
type ValidationResult struct {
	Computable bool
	// Missing lists absent fields in requirement order
	Missing []catalog.Field
}

// Validate checks each required field against in, in order. Empty
// requirements are always computable. in is not modified; a nil set is empty.
func Validate(in *inputs.Set, requires []catalog.Field) ValidationResult {
	var missing []catalog.Field
	for _, f := range requires {
		if !in.Has(f) {
			missing = append(missing, f)
		}
	}
	return ValidationResult{Computable: len(missing) == 0, Missing: missing}
}

// Resolve returns the calculations whose requirements in satisfies, in
// registration order. The result is empty, not nil, when none qualify.
func (r *Registry) Resolve(in *inputs.Set) []string {
	names := []string{}
	for _, spec := range r.snapshot() {
		if Validate(in, spec.Requires).Computable {
			names = append(names, spec.Name)
		}
	}
	return names
}

// Match is a calculation scored by the share of its requirements present
type Match struct {
	Name     string
	Fraction float64
	Missing  []catalog.Field
}

// RankClosest scores every calculation by the fraction of its requirements
// present in in and returns all calculations sharing the highest fraction,
// in registration order.
//
// The scan keeps a running maximum: a strictly higher fraction discards the
// entries collected so far, an equal one joins them. A calculation without
// requirements, or an empty registry, is a CodeMalformedRegistry error.
func (r *Registry) RankClosest(in *inputs.Set) ([]Match, error) {
	specs := r.snapshot()
	if len(specs) == 0 {
		return nil, mfinerror.New("registry has no calculations to rank").
			WithCode(mfinerror.CodeMalformedRegistry)
	}

	best := -1.0
	var ties []Match
	for _, spec := range specs {
		required := len(spec.Requires)
		if required == 0 {
			return nil, malformed("calculation "+spec.Name+" has no requirements and cannot be ranked", spec.Name)
		}

		v := Validate(in, spec.Requires)
		fraction := float64(required-len(v.Missing)) / float64(required)
		m := Match{Name: spec.Name, Fraction: fraction, Missing: v.Missing}

		switch {
		case fraction > best:
			best = fraction
			ties = []Match{m}
		case fraction == best:
			ties = append(ties, m)
		}
	}

	r.logger.Debug("ranked closest calculations", mfinlog.Fields{
		"fraction": best,
		"matches":  len(ties),
	})
	return ties, nil
}
