// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-16 v0.2.0: Chain-aware lookups and calculation codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errSentinel = errors.New("lp: problem is infeasible")

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("no feasible allocation").WithCode(CodeSolverInfeasible),
			message:  "optimize par-bonds",
			wantMsg:  "optimize par-bonds: no feasible allocation",
			wantCode: CodeSolverInfeasible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}
		})
	}
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(errSentinel, "optimize bonds").WithCode(CodeSolverInfeasible)
	outer := fmt.Errorf("invoke: %w", err)

	if !errors.Is(outer, errSentinel) {
		t.Error("sentinel lost through wrapping")
	}
	if !HasCode(outer, CodeSolverInfeasible) {
		t.Error("HasCode() should look through fmt wrapping")
	}
	if GetCode(outer) != CodeSolverInfeasible {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if err.RootCause() != errSentinel {
		t.Errorf("RootCause() = %v, want sentinel", err.RootCause())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeMalformedRegistry, SeverityCritical},
		{CodeInvalidConfig, SeverityHigh},
		{CodeRootNotConverged, SeverityMedium},
		{CodeMissingField, SeverityLow},
		{Code("SOMETHING_ELSE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestExplicitSeveritySurvivesCode(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeMissingField)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want critical", err.Severity())
	}
}

func TestDetails(t *testing.T) {
	err := New("missing inputs").
		WithDetail("calculation", "Future Value").
		WithDetails(map[string]interface{}{"missing": 2}).
		WithOperation("invoke")

	details := err.Details()
	if details["calculation"] != "Future Value" || details["missing"] != 2 {
		t.Errorf("Details() = %v", details)
	}
	details["calculation"] = "changed"
	if v, _ := err.Detail("calculation"); v != "Future Value" {
		t.Error("Details() must return a copy")
	}
	if err.Operation() != "invoke" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if !strings.Contains(err.String(), "Details: {calculation=Future Value, missing=2}") {
		t.Errorf("String() = %q", err.String())
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errSentinel, "solve").WithCode(CodeSolverInfeasible).WithOperation("lp")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != string(CodeSolverInfeasible) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "medium" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != errSentinel.Error() {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "lp" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		user     bool
	}{
		{CodeMissingField, "input", true},
		{CodeSolverInfeasible, "solver", true},
		{CodeMalformedRegistry, "calculation", false},
		{CodeInvalidConfig, "configuration", false},
		{CodeNotFound, "generic", true},
		{CodeInternal, "generic", false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsUserError(); got != tt.user {
				t.Errorf("IsUserError() = %v, want %v", got, tt.user)
			}
			if !tt.code.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityCritical.String() != "critical" || Severity(9).String() != "unknown" {
		t.Error("unexpected severity names")
	}
	if !SeverityHigh.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("ShouldAlert() threshold wrong")
	}
}
