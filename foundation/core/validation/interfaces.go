// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validator interface, the validation result and the
//              standard validation codes shared by all mFIN packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-16 v0.2.0: Numeric codes for financial inputs, context plumbing removed

package validation

import (
	"fmt"
	"strings"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeType     = "VALIDATION_TYPE"     // Value has the wrong type
	CodeRange    = "VALIDATION_RANGE"    // Numeric range validation
	CodeFinite   = "VALIDATION_FINITE"   // NaN or infinite number
	CodeIntegral = "VALIDATION_INTEGRAL" // Whole number expected
	CodeLength   = "VALIDATION_LENGTH"   // List length validation
	CodeChoice   = "VALIDATION_CHOICE"   // Value outside a closed set
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// WithField stamps the field name on every error that does not carry one
func (r ValidationResult) WithField(field string) ValidationResult {
	for i := range r.Errors {
		if r.Errors[i].Field == "" {
			r.Errors[i].Field = field
		}
	}
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a coded error, or nil when valid
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mfinerror.New("validation failed").WithCode(mfinerror.CodeInvalidValue)
	}

	first := r.Errors[0]
	message := first.Message
	if first.Field != "" {
		message = first.Field + ": " + message
	}
	err := mfinerror.New(message).
		WithCode(mfinerror.CodeInvalidValue).
		WithDetail("validation_code", first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors))
		err = err.WithDetail("all_messages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
		if r.Errors[0].Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", r.Errors[0].Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
