// File: validation_test.go
// Title: Validation Framework Tests
// Description: Tests for results, chains and the common validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-16 v0.2.0: Numeric, list and choice validators

package validation

import (
	"math"
	"strings"
	"testing"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
)

func TestCommonValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		value     interface{}
		wantValid bool
		wantCode  string
	}{
		{"finite ok", Finite(), 12.5, true, ""},
		{"finite nan", Finite(), math.NaN(), false, CodeFinite},
		{"finite inf", Finite(), math.Inf(-1), false, CodeFinite},
		{"finite wrong type", Finite(), []float64{1}, false, CodeType},
		{"min ok", Min(0), 0.0, true, ""},
		{"min below", Min(0), -1.0, false, CodeRange},
		{"positive zero", Positive(), 0, false, CodeRange},
		{"positive ok", Positive(), 2, true, ""},
		{"integral ok", Integral(), 10.0, true, ""},
		{"integral fraction", Integral(), 2.5, false, CodeIntegral},
		{"list ok", NonEmptyList(), []float64{1, 2}, true, ""},
		{"list empty", NonEmptyList(), []float64{}, false, CodeLength},
		{"list wrong type", NonEmptyList(), 3.0, false, CodeType},
		{"each finite", Each(Finite()), []float64{1, math.NaN()}, false, CodeFinite},
		{"choice ok", OneOf("Annual", "Monthly"), "Monthly", true, ""},
		{"choice miss", OneOf("Annual", "Monthly"), "Weekly", false, CodeChoice},
		{"numeric string", Min(1), "5", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.validator.Validate(tt.value)
			if got.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (%s)", got.Valid, tt.wantValid, got)
			}
			if !tt.wantValid && !got.HasError(tt.wantCode) {
				t.Errorf("errors %v do not contain %s", got.Errors, tt.wantCode)
			}
		})
	}
}

func TestEachPrefixesEntry(t *testing.T) {
	got := Each(Min(0)).Validate([]float64{1, 2, -3})
	if got.Valid {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(got.Errors[0].Message, "entry 3:") {
		t.Errorf("message = %q", got.Errors[0].Message)
	}
}

func TestChainStopsOnFirstError(t *testing.T) {
	chain := NewValidatorChain("Periods").Add(Finite()).Add(Min(0)).Add(Integral())

	got := chain.Validate(-1.5)
	if got.Valid {
		t.Fatal("expected failure")
	}
	if len(got.Errors) != 1 || got.Errors[0].Code != CodeRange {
		t.Errorf("errors = %v, want single range error", got.Errors)
	}
	if got.Errors[0].Field != "Periods" {
		t.Errorf("field = %q, want Periods", got.Errors[0].Field)
	}

	all := NewValidatorChain().Add(Min(0)).Add(Integral()).StopOnFirstError(false).Validate(-1.5)
	if len(all.Errors) != 2 {
		t.Errorf("collecting chain returned %d errors, want 2", len(all.Errors))
	}
	if chain.Length() != 3 || chain.Name() != "Periods" {
		t.Errorf("Length/Name = %d/%q", chain.Length(), chain.Name())
	}
}

func TestToError(t *testing.T) {
	if NewValidationResult().ToError() != nil {
		t.Error("valid result must convert to nil")
	}

	result := NewValidatorChain("Budget").Add(Positive()).Validate(-5.0)
	err := result.ToError()
	if err == nil {
		t.Fatal("ToError() = nil")
	}
	if !mfinerror.HasCode(err, mfinerror.CodeInvalidValue) {
		t.Errorf("code = %v", mfinerror.GetCode(err))
	}
	if !strings.HasPrefix(err.Error(), "Budget: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCombine(t *testing.T) {
	got := Combine(NewValidationResult(), NewValidationError(CodeCustom, "a"), NewValidationError(CodeCustom, "b"))
	if got.Valid || len(got.Errors) != 2 {
		t.Errorf("Combine() = %v", got)
	}
	if msgs := got.ErrorMessages(); msgs[0] != "a" || msgs[1] != "b" {
		t.Errorf("ErrorMessages() = %v", msgs)
	}
}
