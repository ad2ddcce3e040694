// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Single-period return calculations
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

func (c *calculator) returnSpecs() []dispatch.CalculationSpec {
	return []dispatch.CalculationSpec{
		{
			Name:     "Total Return",
			Title:    "Total Return on an Investment",
			Requires: requires(catalog.AmountReceived, catalog.AmountInvested),
			Result:   catalog.KindCurrency,
			Compute:  periodReturn(mathx.TotalReturn),
		},
		{
			Name:     "Rate of Return",
			Title:    "Rate of Return on an Investment",
			Requires: requires(catalog.AmountReceived, catalog.AmountInvested),
			Result:   catalog.KindPercentage,
			Compute:  periodReturn(mathx.RateOfReturn),
		},
	}
}

func periodReturn(fn func(invested, received float64) (float64, error)) dispatch.ComputeFunc {
	return func(in *inputs.Set) (dispatch.Result, error) {
		r := inputs.NewReader(in)
		received := r.Number(catalog.AmountReceived)
		invested := r.Number(catalog.AmountInvested)
		if err := r.Err(); err != nil {
			return dispatch.Result{}, err
		}
		v, err := fn(invested, received)
		if err != nil {
			return dispatch.Result{}, invalidInput(catalog.AmountInvested, err.Error())
		}
		return dispatch.Scalar(v), nil
	}
}
