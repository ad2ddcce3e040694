// File: mathx_test.go
// Title: Financial Math Tests
// Description: Tests for compounding primitives and number rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Decimal and business calculation tests
// - 2026-10-16 v0.2.0: float64 primitives and rendering

package mathx

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGrowthFactor(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		c     Compounding
		years float64
		want  float64
	}{
		{"annual", 0.05, Discrete(1), 10, math.Pow(1.05, 10)},
		{"monthly", 0.12, Discrete(12), 1, math.Pow(1.01, 12)},
		{"continuous", 0.05, ContinuousCompounding(), 2, math.Exp(0.1)},
		{"zero years", 0.07, Discrete(4), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthFactor(tt.rate, tt.c, tt.years)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("GrowthFactor() = %v, want %v", got, tt.want)
			}
			if d := DiscountFactor(tt.rate, tt.c, tt.years); !almostEqual(d*got, 1, 1e-12) {
				t.Errorf("DiscountFactor() * GrowthFactor() = %v", d*got)
			}
		})
	}
}

func TestFutureAndPresentValue(t *testing.T) {
	fv := FutureValue(1000, 0.05, Discrete(1), 10)
	if !almostEqual(fv, 1628.894626777442, 1e-9) {
		t.Errorf("FutureValue() = %v", fv)
	}
	pv := PresentValue(fv, 0.05, Discrete(1), 10)
	if !almostEqual(pv, 1000, 1e-9) {
		t.Errorf("PresentValue() = %v", pv)
	}
}

func TestEffectiveRate(t *testing.T) {
	if got := EffectiveRate(0.12, Discrete(12)); !almostEqual(got, 0.12682503013196977, 1e-12) {
		t.Errorf("EffectiveRate(monthly) = %v", got)
	}
	if got := EffectiveRate(0.1, ContinuousCompounding()); !almostEqual(got, math.Exp(0.1)-1, 1e-12) {
		t.Errorf("EffectiveRate(continuous) = %v", got)
	}
}

func TestAnnuityAndLoanPayment(t *testing.T) {
	if got := AnnuityFactor(0, 12); got != 12 {
		t.Errorf("AnnuityFactor(0, 12) = %v", got)
	}

	// 100,000 over 30 years of monthly payments at 6% nominal
	pay, err := LoanPayment(100000, 0.005, 360)
	if err != nil {
		t.Fatalf("LoanPayment() error = %v", err)
	}
	if !almostEqual(pay, 599.5505251527569, 1e-6) {
		t.Errorf("LoanPayment() = %v", pay)
	}

	if _, err := LoanPayment(1000, 0.01, 0); !errors.Is(err, ErrNonPositivePeriods) {
		t.Errorf("LoanPayment(n=0) error = %v", err)
	}
}

func TestReturns(t *testing.T) {
	if got, _ := TotalReturn(100, 110); !almostEqual(got, 1.1, 1e-15) {
		t.Errorf("TotalReturn() = %v", got)
	}
	if got, _ := RateOfReturn(100, 110); !almostEqual(got, 0.1, 1e-15) {
		t.Errorf("RateOfReturn() = %v", got)
	}
	if _, err := RateOfReturn(0, 1); !errors.Is(err, ErrZeroInvestment) {
		t.Errorf("RateOfReturn(0) error = %v", err)
	}
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234567, "1,234,567.0"},
		{1234.5, "1,234.5"},
		{-9876543.21, "-9,876,543.21"},
		{999, "999.0"},
		{0, "0.0"},
		{0.25, "0.25"},
		{1000, "1,000.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatGrouped(tt.in); got != tt.want {
				t.Errorf("FormatGrouped(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.05, "5%"},
		{0.0525, "5.25%"},
		{1.2, "120%"},
		{-0.003, "-0.3%"},
		{0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPercent(tt.in); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupDigits(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"1":          "1",
		"123":        "123",
		"1234":       "1,234",
		"123456":     "123,456",
		"1234567890": "1,234,567,890",
	}
	for in, want := range tests {
		if got := GroupDigits(in, ","); got != want {
			t.Errorf("GroupDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(2.345, 2); got != 2.35 {
		t.Errorf("RoundTo() = %v", got)
	}
	if got := FormatPlain(3.5); got != "3.5" {
		t.Errorf("FormatPlain() = %q", got)
	}
}
