// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Project selection, bond matching and immunization
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package formulas

import (
	"fmt"
	"math"

	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
	"github.com/msto63/mFIN/internal/solver"
)

func (c *calculator) portfolioSpecs() []dispatch.CalculationSpec {
	return []dispatch.CalculationSpec{
		{
			Name:     "Optimal Project",
			Title:    "Most Valuable Projects within a Budget",
			Requires: requires(catalog.ProjectCosts, catalog.ProjectWorths, catalog.Budget),
			Result:   catalog.KindCurrency,
			Compute:  c.optimalProject,
		},
		{
			Name:     "Optimize Par-Bonds",
			Title:    "Cheapest Par-Bond Portfolio Meeting Yearly Obligations",
			Requires: requires(catalog.ObligationsList, catalog.Periods, catalog.BondYieldList, catalog.FaceValue),
			Result:   catalog.KindCurrency,
			Compute:  c.parBonds,
		},
		{
			Name:  "Immunize Portfolio",
			Title: "Two-Bond Portfolio Matching Value and Duration of Obligations",
			Requires: requires(catalog.FaceValue1, catalog.Coupons1, catalog.CouponsPerPeriod1, catalog.Periods1,
				catalog.FaceValue2, catalog.Coupons2, catalog.CouponsPerPeriod2, catalog.Periods2,
				catalog.ObligationsList, catalog.SpotRateList, catalog.CompoundMethod),
			Result:  catalog.KindCurrency,
			Compute: c.immunize,
		},
		{
			Name:  "Optimize Bonds For Obligations",
			Title: "Cheapest Bond Portfolio Meeting Yearly Obligations",
			Requires: requires(catalog.CouponList, catalog.FaceValueList, catalog.PeriodsList,
				catalog.ObligationsList, catalog.BondPriceList),
			Result:  catalog.KindCurrency,
			Compute: c.bondsForObligations,
		},
	}
}

func (c *calculator) optimalProject(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	costs := r.List(catalog.ProjectCosts)
	worths := r.List(catalog.ProjectWorths)
	budget := r.Number(catalog.Budget)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if len(costs) != len(worths) {
		return dispatch.Result{}, invalidInput(catalog.ProjectWorths, "Project Costs and Project Worths differ in length")
	}

	sel, err := c.solver.Knapsack(costs, worths, budget)
	if err != nil {
		return dispatch.Result{}, err
	}
	res := dispatch.Result{
		Value:      sel.Value,
		Note:       "total worth",
		Allocation: sel.Chosen,
		Labels:     numbered("Project", len(costs)),
	}
	return res.WithDetail("Total Cost", sel.Cost, catalog.KindCurrency), nil
}

// parBonds buys par bonds maturing in each year so that redemptions and
// coupons cover every yearly obligation at the lowest face value outlay
func (c *calculator) parBonds(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	obligations := r.List(catalog.ObligationsList)
	years := r.Count(catalog.Periods)
	yields := r.List(catalog.BondYieldList)
	face := r.Number(catalog.FaceValue)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if years == 0 {
		return dispatch.Result{}, invalidInput(catalog.Periods, "Periods must be at least 1")
	}
	if len(obligations) != years {
		return dispatch.Result{}, invalidInput(catalog.ObligationsList, "Obligations List needs one entry per period")
	}
	if len(yields) != years {
		return dispatch.Result{}, invalidInput(catalog.BondYieldList, "Bond Yield List needs one entry per period")
	}

	p := solver.Problem{Objective: make([]float64, years)}
	for i := 0; i < years; i++ {
		p.Objective[i] = face
		row := make([]float64, years)
		for j := i; j < years; j++ {
			row[j] = yields[j] * face
			if i == j {
				row[j] += face
			}
		}
		p.Constraints = append(p.Constraints, solver.Constraint{
			Coeffs: row, Sense: solver.GreaterEqual, RHS: obligations[i],
		})
	}

	sol, err := c.solver.Minimize(p)
	if err != nil {
		return dispatch.Result{}, err
	}
	labels := make([]string, years)
	for i, y := range yields {
		labels[i] = fmt.Sprintf("Bond %d (%s coupon)", i+1, mathx.FormatPercent(y))
	}
	return dispatch.Result{
		Value:      sol.Objective,
		Note:       "total cost",
		Allocation: sol.X,
		Labels:     labels,
	}, nil
}

// immunizedBond is one of the two bonds of an immunized portfolio
type immunizedBond struct {
	face    float64
	coupons float64
	perYear int
	years   int
}

// value prices the bond's yearly flows on the spot rate curve
func (b immunizedBond) value(spots []float64, comp mathx.Compounding) float64 {
	total := 0.0
	for i := 1; i <= b.years; i++ {
		flow := b.coupons
		if i == b.years {
			flow += b.face
		}
		total += mathx.PresentValue(flow, spots[i-1], comp, float64(i))
	}
	return total
}

// immunize splits the obligations' present value between two bonds so that
// the portfolio matches both value and duration of the obligations
func (c *calculator) immunize(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	bonds := [2]immunizedBond{
		{
			face:    r.Number(catalog.FaceValue1),
			coupons: r.Number(catalog.Coupons1),
			perYear: r.Count(catalog.CouponsPerPeriod1),
			years:   r.Count(catalog.Periods1),
		},
		{
			face:    r.Number(catalog.FaceValue2),
			coupons: r.Number(catalog.Coupons2),
			perYear: r.Count(catalog.CouponsPerPeriod2),
			years:   r.Count(catalog.Periods2),
		},
	}
	obligations := r.List(catalog.ObligationsList)
	spots := r.List(catalog.SpotRateList)
	m, err := discrete(r, "Immunize Portfolio")
	if err != nil {
		return dispatch.Result{}, err
	}
	comp := mathx.Discrete(float64(m))

	need := len(obligations)
	for _, b := range bonds {
		if b.years > need {
			need = b.years
		}
	}
	if len(spots) < need {
		return dispatch.Result{}, invalidInput(catalog.SpotRateList, "Spot Rate List must cover every bond and obligation year")
	}

	var prices, durations [2]float64
	for k, b := range bonds {
		prices[k] = b.value(spots, comp)
		d, err := quasiDuration(spots, b.face, b.coupons, b.perYear, b.years, comp)
		if err != nil {
			return dispatch.Result{}, err
		}
		durations[k] = d
	}

	pvObligations, weighted := 0.0, 0.0
	mf := float64(m)
	for i, obl := range obligations {
		y := spots[i]
		pvObligations += mathx.PresentValue(obl, y, comp, float64(i+1))
		for j := 1; j <= m; j++ {
			k := float64(i*m + j)
			weighted += obl * (k / mf) * math.Pow(1+y/mf, -(k+1))
		}
	}
	if err := nonZero(pvObligations, catalog.ObligationsList); err != nil {
		return dispatch.Result{}, err
	}
	durationObligations := weighted / pvObligations

	x, err := c.solver.SolveLinear(
		[][]float64{
			{prices[0], prices[1]},
			{prices[0] * durations[0], prices[1] * durations[1]},
		},
		[]float64{pvObligations, pvObligations * durationObligations},
	)
	if err != nil {
		return dispatch.Result{}, err
	}

	res := dispatch.Result{
		Value:      pvObligations,
		Note:       "present value of obligations",
		Allocation: x,
		Labels:     []string{"Bond #1", "Bond #2"},
	}
	return res.WithDetail("Duration of Obligations", durationObligations, catalog.KindCurrency), nil
}

// bondsForObligations buys bonds so that each year's coupons and
// redemptions cover that year's obligation at the lowest price
func (c *calculator) bondsForObligations(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	coupons := r.List(catalog.CouponList)
	faces := r.List(catalog.FaceValueList)
	maturities := r.List(catalog.PeriodsList)
	obligations := r.List(catalog.ObligationsList)
	prices := r.List(catalog.BondPriceList)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	n := len(prices)
	for _, l := range []struct {
		field catalog.Field
		list  []float64
	}{
		{catalog.CouponList, coupons},
		{catalog.FaceValueList, faces},
		{catalog.PeriodsList, maturities},
	} {
		if len(l.list) != n {
			return dispatch.Result{}, invalidInput(l.field, l.field.Name()+" needs one entry per bond in Bond Price List")
		}
	}

	p := solver.Problem{Objective: prices}
	for year := 1; year <= len(obligations); year++ {
		row := make([]float64, n)
		for i := 0; i < n; i++ {
			switch maturity := int(maturities[i]); {
			case year == maturity:
				row[i] = faces[i] + coupons[i]
			case year < maturity:
				row[i] = coupons[i]
			}
		}
		p.Constraints = append(p.Constraints, solver.Constraint{
			Coeffs: row, Sense: solver.GreaterEqual, RHS: obligations[year-1],
		})
	}

	sol, err := c.solver.Minimize(p)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Result{
		Value:      sol.Objective,
		Note:       "total cost",
		Allocation: sol.X,
		Labels:     numbered("Bond", n),
	}, nil
}

func numbered(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return labels
}
