// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Forward and spot rate calculations on the yield curve
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package formulas

import (
	"math"

	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
)

func (c *calculator) curveSpecs() []dispatch.CalculationSpec {
	return []dispatch.CalculationSpec{
		{
			Name:  "Forward Rate",
			Title: "Forward Rate between Two Spot Years",
			Requires: requires(catalog.FirstSpotYear, catalog.FirstSpotValue, catalog.SecondSpotYear,
				catalog.SecondSpotValue, catalog.CompoundMethod),
			Result:  catalog.KindPercentage,
			Compute: forwardRate,
		},
		{
			Name:  "First Spot Rate",
			Title: "Spot Rate for the First Year from a Forward Rate",
			Requires: requires(catalog.FirstSpotYear, catalog.ForwardRate, catalog.SecondSpotYear,
				catalog.SecondSpotValue, catalog.CompoundMethod),
			Result:  catalog.KindPercentage,
			Compute: firstSpotRate,
		},
		{
			Name:  "Second Spot Rate",
			Title: "Spot Rate for the Second Year from a Forward Rate",
			Requires: requires(catalog.FirstSpotYear, catalog.FirstSpotValue, catalog.SecondSpotYear,
				catalog.ForwardRate, catalog.CompoundMethod),
			Result:  catalog.KindPercentage,
			Compute: secondSpotRate,
		},
	}
}

// forwardRate is the rate between years i and j implied by their spot rates
func forwardRate(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	i := r.Number(catalog.FirstSpotYear)
	si := r.Number(catalog.FirstSpotValue)
	j := r.Number(catalog.SecondSpotYear)
	sj := r.Number(catalog.SecondSpotValue)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if i == j {
		return dispatch.Result{}, invalidInput(catalog.SecondSpotYear, "spot years must differ")
	}

	if comp.Continuous {
		return checked((sj*j-si*i)/(j-i), "Forward Rate")
	}
	m := comp.PerYear
	ratio := math.Pow(1+sj/m, j) / math.Pow(1+si/m, i)
	return checked(m*math.Pow(ratio, 1/(j-i))-m, "Forward Rate")
}

// firstSpotRate recovers the year i spot rate from the year j spot rate and
// the forward rate between them
func firstSpotRate(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	i := r.Number(catalog.FirstSpotYear)
	fr := r.Number(catalog.ForwardRate)
	j := r.Number(catalog.SecondSpotYear)
	sj := r.Number(catalog.SecondSpotValue)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(i, catalog.FirstSpotYear); err != nil {
		return dispatch.Result{}, err
	}

	if comp.Continuous {
		return checked((sj*j-fr*(j-i))/i, "First Spot Rate")
	}
	m := comp.PerYear
	ratio := math.Pow(1+sj/m, j) / math.Pow(1+fr/m, j-i)
	return checked((math.Pow(ratio, 1/i)-1)*m, "First Spot Rate")
}

// secondSpotRate compounds the year i spot rate with the forward rate to year j
func secondSpotRate(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	i := r.Number(catalog.FirstSpotYear)
	si := r.Number(catalog.FirstSpotValue)
	j := r.Number(catalog.SecondSpotYear)
	fr := r.Number(catalog.ForwardRate)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(j, catalog.SecondSpotYear); err != nil {
		return dispatch.Result{}, err
	}

	if comp.Continuous {
		return checked((fr*(j-i)+si*i)/j, "Second Spot Rate")
	}
	m := comp.PerYear
	growth := math.Pow(1+si/m, i/j) * math.Pow(1+fr/m, (j-i)/j)
	return checked((growth-1)*m, "Second Spot Rate")
}
