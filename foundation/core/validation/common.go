// File: common.go
// Title: Common Validators
// Description: Numeric, list and choice validators used for financial inputs,
//              plus the conversion helper they share.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Framework utility functions
// - 2026-10-16 v0.2.0: Finite, range, integral, list and choice validators

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConvertToFloat64 converts various numeric types to float64
func ConvertToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

func numeric(value interface{}, check func(float64) ValidationResult) ValidationResult {
	f, err := ConvertToFloat64(value)
	if err != nil {
		return NewValidationError(CodeType, "number expected")
	}
	return check(f)
}

// Finite rejects NaN and infinite numbers
func Finite() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		return numeric(value, func(f float64) ValidationResult {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return NewValidationError(CodeFinite, "number must be finite")
			}
			return NewValidationResult()
		})
	}
}

// Min rejects numbers below min
func Min(min float64) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		return numeric(value, func(f float64) ValidationResult {
			if f < min {
				r := NewValidationError(CodeRange, fmt.Sprintf("must be at least %g", min))
				r.Errors[0].Value = f
				r.Errors[0].Expected = min
				return r
			}
			return NewValidationResult()
		})
	}
}

// Positive rejects zero and negative numbers
func Positive() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		return numeric(value, func(f float64) ValidationResult {
			if f <= 0 {
				r := NewValidationError(CodeRange, "must be greater than zero")
				r.Errors[0].Value = f
				return r
			}
			return NewValidationResult()
		})
	}
}

// Integral rejects numbers with a fractional part
func Integral() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		return numeric(value, func(f float64) ValidationResult {
			if f != math.Trunc(f) {
				r := NewValidationError(CodeIntegral, "must be a whole number")
				r.Errors[0].Value = f
				return r
			}
			return NewValidationResult()
		})
	}
}

// NonEmptyList rejects empty number lists
func NonEmptyList() ValidatorFunc {
	return func(value interface{}) ValidationResult {
		list, ok := value.([]float64)
		if !ok {
			return NewValidationError(CodeType, "list of numbers expected")
		}
		if len(list) == 0 {
			return NewValidationError(CodeLength, "list must not be empty")
		}
		return NewValidationResult()
	}
}

// Each applies the validator to every element of a number list
func Each(validator Validator) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		list, ok := value.([]float64)
		if !ok {
			return NewValidationError(CodeType, "list of numbers expected")
		}
		result := NewValidationResult()
		for i, v := range list {
			r := validator.Validate(v)
			if r.Valid {
				continue
			}
			for _, e := range r.Errors {
				e.Message = fmt.Sprintf("entry %d: %s", i+1, e.Message)
				result.Valid = false
				result.Errors = append(result.Errors, e)
			}
		}
		return result
	}
}

// OneOf rejects strings that are not in the given set
func OneOf(choices ...string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok {
			return NewValidationError(CodeType, "text expected")
		}
		for _, c := range choices {
			if s == c {
				return NewValidationResult()
			}
		}
		r := NewValidationError(CodeChoice, fmt.Sprintf("must be one of %s", strings.Join(choices, ", ")))
		r.Errors[0].Value = s
		r.Errors[0].Expected = choices
		return r
	}
}
