// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     inputs
// Description: Sequential typed access to an input set
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package inputs

import (
	"math"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/internal/catalog"
)

// Reader reads typed values from a set. The first failure is kept and every
// later read returns a zero value, so callers check Err once at the end:
//
//	r := inputs.NewReader(set)
//	pv := r.Number(catalog.PresentValue)
//	n := r.Number(catalog.Periods)
//	if err := r.Err(); err != nil {
//		return err
//	}
type Reader struct {
	set *Set
	err error
}

// NewReader creates a reader over s
func NewReader(s *Set) *Reader {
	return &Reader{set: s}
}

// Err returns the first failure
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) get(f catalog.Field, want ValueType) (Value, bool) {
	if r.err != nil {
		return Value{}, false
	}
	v, ok := r.set.Get(f)
	if !ok {
		r.err = mfinerror.Newf("%s is missing", f.Name()).
			WithCode(mfinerror.CodeMissingField).
			WithDetail("field", f.Name())
		return Value{}, false
	}
	if v.Type() != want {
		r.err = mfinerror.Newf("%s: %s value expected, got %s", f.Name(), want, v.Type()).
			WithCode(mfinerror.CodeInvalidValue).
			WithDetail("field", f.Name())
		return Value{}, false
	}
	return v, true
}

// Number reads a numeric field
func (r *Reader) Number(f catalog.Field) float64 {
	v, ok := r.get(f, TypeNumber)
	if !ok {
		return 0
	}
	n, _ := v.Number()
	return n
}

// Count reads a numeric field that must hold a non-negative whole number
func (r *Reader) Count(f catalog.Field) int {
	n := r.Number(f)
	if r.err != nil {
		return 0
	}
	if n < 0 || n != math.Trunc(n) {
		r.err = mfinerror.Newf("%s: must be a whole number of at least 0", f.Name()).
			WithCode(mfinerror.CodeInvalidInput).
			WithDetail("field", f.Name()).
			WithDetail("value", n)
		return 0
	}
	return int(n)
}

// List reads a list field
func (r *Reader) List(f catalog.Field) []float64 {
	v, ok := r.get(f, TypeList)
	if !ok {
		return nil
	}
	list, _ := v.List()
	return list
}

// Choice reads an enumerated field
func (r *Reader) Choice(f catalog.Field) string {
	v, ok := r.get(f, TypeChoice)
	if !ok {
		return ""
	}
	c, _ := v.Choice()
	return c
}

// Method reads the Compound Method field
func (r *Reader) Method() catalog.Method {
	name := r.Choice(catalog.CompoundMethod)
	if r.err != nil {
		return catalog.Method{}
	}
	m, ok := catalog.LookupMethod(name)
	if !ok {
		r.err = mfinerror.Newf("unknown compound method %q", name).
			WithCode(mfinerror.CodeInvalidValue).
			WithDetail("field", catalog.CompoundMethod.Name())
		return catalog.Method{}
	}
	return m
}

// Optional reads a numeric field if present, returning def otherwise
func (r *Reader) Optional(f catalog.Field, def float64) float64 {
	if r.err != nil || !r.set.Has(f) {
		return def
	}
	return r.Number(f)
}
