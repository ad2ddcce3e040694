// File: tvm.go
// Title: Time Value of Money Primitives
// Description: Growth and discount factors for discrete and continuous
//              compounding, annuity factors, loan payments and simple returns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Decimal based interest, loan and ROI calculations
// - 2026-10-16 v0.2.0: float64 primitives with fractional periods and
//                      continuous compounding

package mathx

import (
	"errors"
	"math"
)

var (
	// ErrNonPositivePeriods is returned when a payment schedule has no periods
	ErrNonPositivePeriods = errors.New("number of periods must be positive")

	// ErrZeroInvestment is returned when a return is computed on nothing invested
	ErrZeroInvestment = errors.New("initial investment cannot be zero")
)

// Compounding describes how often interest is credited per year
type Compounding struct {
	PerYear    float64
	Continuous bool
}

// Discrete returns compounding with perYear periods per year
func Discrete(perYear float64) Compounding {
	return Compounding{PerYear: perYear}
}

// ContinuousCompounding returns continuous compounding
func ContinuousCompounding() Compounding {
	return Compounding{Continuous: true}
}

// PeriodRate converts an annual nominal rate into the rate per period
func (c Compounding) PeriodRate(annual float64) float64 {
	if c.Continuous {
		return math.Expm1(annual)
	}
	return annual / c.PerYear
}

// Periods returns the number of compounding periods in years.
// Continuous compounding counts whole years.
func (c Compounding) Periods(years float64) float64 {
	if c.Continuous {
		return years
	}
	return c.PerYear * years
}

// GrowthFactor returns the factor by which a value grows at the annual
// nominal rate over the given years.
// Formula: (1 + r/m)^(m*t), or e^(r*t) when continuous
func GrowthFactor(rate float64, c Compounding, years float64) float64 {
	if c.Continuous {
		return math.Exp(rate * years)
	}
	return math.Pow(1+rate/c.PerYear, c.PerYear*years)
}

// DiscountFactor is the reciprocal of GrowthFactor
func DiscountFactor(rate float64, c Compounding, years float64) float64 {
	return 1 / GrowthFactor(rate, c, years)
}

// FutureValue compounds a present value forward
func FutureValue(presentValue, rate float64, c Compounding, years float64) float64 {
	return presentValue * GrowthFactor(rate, c, years)
}

// PresentValue discounts a future value back
func PresentValue(futureValue, rate float64, c Compounding, years float64) float64 {
	return futureValue / GrowthFactor(rate, c, years)
}

// EffectiveRate returns the effective annual rate of a nominal rate
func EffectiveRate(nominal float64, c Compounding) float64 {
	return GrowthFactor(nominal, c, 1) - 1
}

// AnnuityFactor returns the present value of one unit paid at the end of
// each of n periods at the given rate per period.
// Formula: (1 - (1+r)^-n) / r, or n when r is zero
func AnnuityFactor(ratePerPeriod, n float64) float64 {
	if ratePerPeriod == 0 {
		return n
	}
	return -math.Expm1(-n*math.Log1p(ratePerPeriod)) / ratePerPeriod
}

// LoanPayment calculates the level payment that amortizes principal over n periods
// Formula: P * r(1+r)^n / ((1+r)^n - 1)
func LoanPayment(principal, ratePerPeriod, n float64) (float64, error) {
	if n <= 0 {
		return 0, ErrNonPositivePeriods
	}
	return principal / AnnuityFactor(ratePerPeriod, n), nil
}

// TotalReturn returns received divided by invested
func TotalReturn(invested, received float64) (float64, error) {
	if invested == 0 {
		return 0, ErrZeroInvestment
	}
	return received / invested, nil
}

// RateOfReturn returns the gain relative to the investment
// Formula: (received - invested) / invested
func RateOfReturn(invested, received float64) (float64, error) {
	if invested == 0 {
		return 0, ErrZeroInvestment
	}
	return (received - invested) / invested, nil
}
