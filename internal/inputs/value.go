// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     inputs
// Description: Typed values held in an input set
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package inputs

import (
	"strconv"
	"strings"

	"github.com/msto63/mFIN/internal/catalog"
)

// ValueType distinguishes the variants of Value
type ValueType int

const (
	// TypeNone is the zero Value
	TypeNone ValueType = iota
	// TypeNumber holds a single number
	TypeNumber
	// TypeList holds a sequence of numbers
	TypeList
	// TypeChoice holds a member of an enumerated set
	TypeChoice
)

// String returns the type name
func (t ValueType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeList:
		return "list"
	case TypeChoice:
		return "choice"
	default:
		return "none"
	}
}

// Value is a number, a list of numbers or an enumerated choice
type Value struct {
	typ    ValueType
	num    float64
	list   []float64
	choice string
}

// Number returns a numeric value
func Number(v float64) Value {
	return Value{typ: TypeNumber, num: v}
}

// List returns a list value holding a copy of values
func List(values ...float64) Value {
	return Value{typ: TypeList, list: append([]float64{}, values...)}
}

// Choice returns an enumerated value
func Choice(name string) Value {
	return Value{typ: TypeChoice, choice: name}
}

// Type returns the variant held
func (v Value) Type() ValueType {
	return v.typ
}

// Number returns the number and true if v holds one
func (v Value) Number() (float64, bool) {
	return v.num, v.typ == TypeNumber
}

// List returns a copy of the list and true if v holds one
func (v Value) List() ([]float64, bool) {
	if v.typ != TypeList {
		return nil, false
	}
	return append([]float64{}, v.list...), true
}

// Choice returns the choice and true if v holds one
func (v Value) Choice() (string, bool) {
	return v.choice, v.typ == TypeChoice
}

// Raw returns the underlying float64, []float64 or string
func (v Value) Raw() interface{} {
	switch v.typ {
	case TypeNumber:
		return v.num
	case TypeList:
		return append([]float64{}, v.list...)
	case TypeChoice:
		return v.choice
	default:
		return nil
	}
}

// Matches reports whether v is the variant a field of kind k stores
func (v Value) Matches(k catalog.Kind) bool {
	switch k {
	case catalog.KindList:
		return v.typ == TypeList
	case catalog.KindEnumerated:
		return v.typ == TypeChoice
	default:
		return v.typ == TypeNumber
	}
}

// Equal reports whether two values hold the same variant and contents
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ || v.num != other.num || v.choice != other.choice {
		return false
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

// String renders the value without catalog formatting
func (v Value) String() string {
	switch v.typ {
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case TypeList:
		parts := make([]string, len(v.list))
		for i, x := range v.list {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeChoice:
		return v.choice
	default:
		return ""
	}
}
