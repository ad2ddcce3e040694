// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     inputs
// Description: Insertion ordered set of named financial inputs
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package inputs

import (
	"fmt"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/internal/catalog"
)

// Set maps catalog fields to values. Iteration follows first insertion;
// replacing a value keeps its position. A Set is not safe for concurrent
// mutation.
type Set struct {
	order  []catalog.Field
	values map[catalog.Field]Value
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{values: make(map[catalog.Field]Value)}
}

// Put validates v against the field's kind and boundary rules and stores it.
// Invalid values leave the set unchanged.
func (s *Set) Put(f catalog.Field, v Value) error {
	if !f.Valid() {
		return mfinerror.Newf("unknown field %d", int(f)).
			WithCode(mfinerror.CodeUnknownField).
			WithOperation("inputs.Put")
	}
	if !v.Matches(f.Kind()) {
		return mfinerror.New(fmt.Sprintf("%s: %s value expected, got %s", f.Name(), expectedType(f.Kind()), v.Type())).
			WithCode(mfinerror.CodeInvalidValue).
			WithDetail("field", f.Name()).
			WithOperation("inputs.Put")
	}
	if err := catalog.Validate(f, v.Raw()); err != nil {
		return err
	}

	if _, exists := s.values[f]; !exists {
		s.order = append(s.order, f)
	}
	s.values[f] = v
	return nil
}

func expectedType(k catalog.Kind) ValueType {
	switch k {
	case catalog.KindList:
		return TypeList
	case catalog.KindEnumerated:
		return TypeChoice
	default:
		return TypeNumber
	}
}

// Get returns the value stored for f
func (s *Set) Get(f catalog.Field) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[f]
	return v, ok
}

// Has reports whether f has a value
func (s *Set) Has(f catalog.Field) bool {
	_, ok := s.Get(f)
	return ok
}

// Delete removes f; deleting an absent field is a no-op
func (s *Set) Delete(f catalog.Field) {
	if _, ok := s.values[f]; !ok {
		return
	}
	delete(s.values, f)
	for i, o := range s.order {
		if o == f {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Fields returns the fields in insertion order
func (s *Set) Fields() []catalog.Field {
	if s == nil {
		return nil
	}
	return append([]catalog.Field(nil), s.order...)
}

// Len returns the number of fields present
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Clone returns an independent copy
func (s *Set) Clone() *Set {
	c := NewSet()
	if s == nil {
		return c
	}
	c.order = append(c.order, s.order...)
	for f, v := range s.values {
		if list, ok := v.List(); ok {
			v = List(list...)
		}
		c.values[f] = v
	}
	return c
}

// Merge puts every value of other into s in other's order, stopping at the
// first rejected value
func (s *Set) Merge(other *Set) error {
	for _, f := range other.Fields() {
		v, _ := other.Get(f)
		if err := s.Put(f, v); err != nil {
			return err
		}
	}
	return nil
}
