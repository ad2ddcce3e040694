// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Loan, annuity and perpetuity calculations
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package formulas

import (
	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
)

func (c *calculator) loanSpecs() []dispatch.CalculationSpec {
	return []dispatch.CalculationSpec{
		{
			Name:     "Payments for Loan",
			Title:    "Payments Needed for a Loan",
			Requires: requires(catalog.NominalPrincipal, catalog.Periods, catalog.InterestRate, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  loanPayment,
		},
		{
			Name:     "Principal Remaining in Present Value",
			Title:    "Remaining Principal in Present Value",
			Requires: requires(catalog.Payments, catalog.Periods, catalog.InterestRate, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  principalPresent,
		},
		{
			Name:     "Principal Remaining in Nominal Value",
			Title:    "Remaining Principal in Nominal Value",
			Requires: requires(catalog.Payments, catalog.Periods, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  principalNominal,
		},
		{
			Name:     "Perpetual Value",
			Title:    "Present Value of a Perpetuity",
			Requires: requires(catalog.PerpetualValue, catalog.InterestRate),
			Result:   catalog.KindCurrency,
			Compute:  perpetualValue,
		},
		{
			Name:     "Payment Loan Varied Rates",
			Title:    "Level Loan Payment under Yearly Spot Rates",
			Requires: requires(catalog.SpotRateList, catalog.Periods, catalog.Principal),
			Result:   catalog.KindCurrency,
			Compute:  variedRateLoanPayment,
		},
	}
}

func loanPayment(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	principal := r.Number(catalog.NominalPrincipal)
	years := r.Number(catalog.Periods)
	rate := r.Number(catalog.InterestRate)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	pay, err := mathx.LoanPayment(principal, comp.PeriodRate(rate), comp.Periods(years))
	if err != nil {
		return dispatch.Result{}, invalidInput(catalog.Periods, err.Error())
	}
	return checked(pay, "Payments for Loan")
}

func principalPresent(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	pay := r.Number(catalog.Payments)
	years := r.Number(catalog.Periods)
	rate := r.Number(catalog.InterestRate)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	return checked(pay*mathx.AnnuityFactor(comp.PeriodRate(rate), comp.Periods(years)), "Principal Remaining")
}

func principalNominal(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	pay := r.Number(catalog.Payments)
	years := r.Number(catalog.Periods)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	return checked(comp.Periods(years)*pay, "Principal Remaining")
}

func perpetualValue(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	payment := r.Number(catalog.PerpetualValue)
	rate := r.Number(catalog.InterestRate)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(rate, catalog.InterestRate); err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(payment / rate).WithNote("in Present Value"), nil
}

// variedRateLoanPayment levels payments over yearly spot rates: the
// principal divided by the sum of the cumulative discount factors
func variedRateLoanPayment(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	spots := r.List(catalog.SpotRateList)
	years := r.Count(catalog.Periods)
	principal := r.Number(catalog.Principal)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if years == 0 {
		return dispatch.Result{}, invalidInput(catalog.Periods, "Periods must be at least 1")
	}
	if len(spots) < years {
		return dispatch.Result{}, invalidInput(catalog.SpotRateList, "Spot Rate List needs one rate per period")
	}

	growth, discount := 1.0, 0.0
	for _, s := range spots[:years] {
		growth *= 1 + s
		discount += 1 / growth
	}
	return checked(principal/discount, "Payment Loan Varied Rates")
}
