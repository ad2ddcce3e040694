// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Time value of money and rate calculations
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package formulas

import (
	"math"

	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
)

func (c *calculator) valueSpecs() []dispatch.CalculationSpec {
	return []dispatch.CalculationSpec{
		{
			Name:     "Future Value",
			Title:    "Future Value from Present Value",
			Requires: requires(catalog.PresentValue, catalog.InterestRate, catalog.Periods, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  futureValue,
		},
		{
			Name:     "Present Value",
			Title:    "Present Value from Future Value",
			Requires: requires(catalog.FutureValue, catalog.InterestRate, catalog.Periods, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  presentValue,
		},
		{
			Name:     "Cashflow",
			Title:    "Present Value of a Cashflow",
			Requires: requires(catalog.Cashflow, catalog.InterestRate, catalog.StartYear, catalog.CompoundMethod),
			Result:   catalog.KindCurrency,
			Compute:  cashflowValue,
		},
		{
			Name:     "Internal Rate",
			Title:    "Internal Rate of Return of a Cashflow",
			Requires: requires(catalog.Cashflow, catalog.StartYear),
			Result:   catalog.KindPercentage,
			Compute:  c.internalRate,
		},
		{
			Name:     "Nominal Rate",
			Title:    "Nominal Annual Rate from Effective Rate",
			Requires: requires(catalog.EffectiveRate, catalog.CompoundMethod),
			Result:   catalog.KindPercentage,
			Compute:  c.nominalRate,
		},
	}
}

func futureValue(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	pv := r.Number(catalog.PresentValue)
	rate := r.Number(catalog.InterestRate)
	years := r.Number(catalog.Periods)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	return checked(mathx.FutureValue(pv, rate, comp, years), "Future Value")
}

func presentValue(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	fv := r.Number(catalog.FutureValue)
	rate := r.Number(catalog.InterestRate)
	years := r.Number(catalog.Periods)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	return checked(mathx.PresentValue(fv, rate, comp, years), "Present Value")
}

// cashflowValue discounts flow i over Start Year + i years
func cashflowValue(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	flows := r.List(catalog.Cashflow)
	rate := r.Number(catalog.InterestRate)
	start := r.Number(catalog.StartYear)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	total := 0.0
	for i, cf := range flows {
		total += mathx.PresentValue(cf, rate, comp, start+float64(i))
	}
	res, err := checked(total, "Cashflow")
	return res.WithNote("in Present Value"), err
}

// internalRate finds the rate at which the discounted flows sum to zero
func (c *calculator) internalRate(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	flows := r.List(catalog.Cashflow)
	start := r.Number(catalog.StartYear)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	npv := func(rate float64) float64 {
		sum := 0.0
		for i, cf := range flows {
			sum += cf / math.Pow(1+rate, float64(i)+start)
		}
		return sum
	}
	rate, err := c.solver.Newton(npv, c.guess)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(rate), nil
}

// nominalRate inverts the effective rate for the chosen compounding
func (c *calculator) nominalRate(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	er := r.Number(catalog.EffectiveRate)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	if comp.Continuous {
		return checked(math.Log1p(er), "Nominal Rate")
	}
	rate, err := c.solver.Newton(func(nominal float64) float64 {
		return mathx.EffectiveRate(nominal, comp) - er
	}, c.guess)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(rate), nil
}
