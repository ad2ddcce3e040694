// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     dispatch
// Description: Calculation records and their results
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package dispatch

import (
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/inputs"
)

// ComputeFunc evaluates a calculation. It receives the whole input set, not
// just the required fields, and must not retain it.
type ComputeFunc func(in *inputs.Set) (Result, error)

// CalculationSpec is a named formula together with the fields it requires
type CalculationSpec struct {
	Name string
	// Title is a longer description shown with results
	Title    string
	Requires []catalog.Field
	// Result is the display kind of Result.Value
	Result  catalog.Kind
	Compute ComputeFunc
}

// Detail is a labelled secondary value of a result
type Detail struct {
	Label string
	Value float64
	Kind  catalog.Kind
}

// Result is the outcome of a calculation. Scalar calculations set Value;
// optimisation calculations set Allocation with one label per entry.
type Result struct {
	Value      float64
	Note       string
	Details    []Detail
	Allocation []float64
	Labels     []string
}

// Scalar returns a result holding a single value
func Scalar(v float64) Result {
	return Result{Value: v}
}

// WithNote returns r with a narrative suffix
func (r Result) WithNote(note string) Result {
	r.Note = note
	return r
}

// WithDetail returns r with an extra labelled value
func (r Result) WithDetail(label string, v float64, kind catalog.Kind) Result {
	r.Details = append(append([]Detail(nil), r.Details...), Detail{Label: label, Value: v, Kind: kind})
	return r
}

// IsAllocation reports whether r carries an allocation vector
func (r Result) IsAllocation() bool {
	return r.Allocation != nil
}

// FieldDescription is one required field of a described calculation
type FieldDescription struct {
	Field catalog.Field
	Name  string
	Kind  catalog.Kind
}

// Description lists what a calculation needs and what it produces
type Description struct {
	Name     string
	Title    string
	Requires []FieldDescription
	Result   catalog.Kind
}
