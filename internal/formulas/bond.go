// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     formulas
// Description: Bond pricing, yield and duration calculations
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

const (
	// Above this many coupons per year a bond is priced continuously
	continuousCouponThreshold = 10000
	// The closed-form duration overflows for longer maturities
	maxDurationYears = 1000
)

func (c *calculator) bondSpecs() []dispatch.CalculationSpec {
	bond := requires(catalog.FaceValue, catalog.Coupons, catalog.CouponsPerPeriod, catalog.Yield, catalog.Periods)
	return []dispatch.CalculationSpec{
		{
			Name:     "Bond Price",
			Title:    "Bond Price in Present Value",
			Requires: bond,
			Result:   catalog.KindCurrency,
			Compute:  bondPriceCalc,
		},
		{
			Name:     "Macaulay Duration",
			Title:    "Macaulay Duration in Years",
			Requires: bond,
			Result:   catalog.KindCurrency,
			Compute:  macaulayCalc,
		},
		{
			Name:     "Modified Duration",
			Title:    "Modified Duration, the Price Sensitivity to Yield",
			Requires: bond,
			Result:   catalog.KindCurrency,
			Compute:  modifiedCalc,
		},
		{
			Name:     "Yield To Maturity",
			Title:    "Yield To Maturity from Bond Price",
			Requires: requires(catalog.FaceValue, catalog.Coupons, catalog.CouponsPerPeriod, catalog.BondPrice, catalog.Periods),
			Result:   catalog.KindPercentage,
			Compute:  c.yieldToMaturity,
		},
		{
			Name:     "Change In Bond Price",
			Title:    "Change in Bond Price for a New Yield",
			Requires: requires(catalog.FaceValue, catalog.Coupons, catalog.CouponsPerPeriod, catalog.Yield, catalog.NewYield, catalog.Periods),
			Result:   catalog.KindCurrency,
			Compute:  priceChangeCalc,
		},
		{
			Name:  "Quasi-Modified Duration from Bond",
			Title: "Quasi-Modified Duration over a Spot Rate Curve",
			Requires: requires(catalog.SpotRateList, catalog.FaceValue, catalog.Coupons, catalog.CouponsPerPeriod,
				catalog.CompoundMethod, catalog.Periods),
			Result:  catalog.KindCurrency,
			Compute: quasiModifiedCalc,
		},
		{
			Name:     "Modified Duration Short",
			Title:    "Modified Duration from Observed Price and Yield Changes",
			Requires: requires(catalog.ChangeInBondPrice, catalog.ChangeInYield, catalog.BondPrice),
			Result:   catalog.KindCurrency,
			Compute:  modifiedShortCalc,
		},
		{
			Name:     "New Bond Price Short",
			Title:    "Price Change Estimated from Modified Duration",
			Requires: requires(catalog.ModifiedDuration, catalog.ChangeInYield, catalog.BondPrice),
			Result:   catalog.KindCurrency,
			Compute:  newPriceShortCalc,
		},
		{
			Name:     "New Yield Short",
			Title:    "New Yield Estimated from Modified Duration",
			Requires: requires(catalog.ModifiedDuration, catalog.ChangeInBondPrice, catalog.BondPrice, catalog.Yield),
			Result:   catalog.KindPercentage,
			Compute:  newYieldShortCalc,
		},
	}
}

// bondTerms are the inputs shared by the bond calculations
type bondTerms struct {
	face    float64
	coupons float64 // per year
	perYear float64
	years   float64
}

func readBond(r *inputs.Reader) bondTerms {
	return bondTerms{
		face:    r.Number(catalog.FaceValue),
		coupons: r.Number(catalog.Coupons),
		perYear: r.Number(catalog.CouponsPerPeriod),
		years:   r.Number(catalog.Periods),
	}
}

// price discounts the face value and the coupon annuity at yield y
func (b bondTerms) price(y float64) float64 {
	if b.perYear > continuousCouponThreshold {
		t := b.years
		if y == 0 {
			return b.face + b.coupons*t
		}
		return b.face*math.Exp(-y*t) - b.coupons*math.Expm1(-y*t)/y
	}
	n := b.perYear * b.years
	rate := y / b.perYear
	return b.face/math.Pow(1+rate, n) + b.coupons/b.perYear*mathx.AnnuityFactor(rate, n)
}

// macaulay is the closed-form Macaulay duration in years
func (b bondTerms) macaulay(y float64) (float64, error) {
	if err := nonZero(b.face, catalog.FaceValue); err != nil {
		return 0, err
	}
	if err := nonZero(y, catalog.Yield); err != nil {
		return 0, err
	}
	years := math.Min(b.years, maxDurationYears)
	m := b.perYear
	n := m * years
	c := b.coupons / b.face / m
	yp := y / m

	d := (1+yp)/(m*yp) - (1+yp+n*(c-yp))/(m*c*(math.Pow(1+yp, n)-1)+m*yp)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, invalidInput(catalog.Yield, "duration is undefined for these inputs")
	}
	return d, nil
}

func (b bondTerms) modified(y float64) (float64, error) {
	d, err := b.macaulay(y)
	if err != nil {
		return 0, err
	}
	return d / (1 + y/b.perYear), nil
}

func bondPriceCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	b := readBond(r)
	y := r.Number(catalog.Yield)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	return checked(b.price(y), "Bond Price")
}

func macaulayCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	b := readBond(r)
	y := r.Number(catalog.Yield)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	d, err := b.macaulay(y)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(d).WithNote("years"), nil
}

func modifiedCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	b := readBond(r)
	y := r.Number(catalog.Yield)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	d, err := b.modified(y)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(d).WithNote("periods left"), nil
}

// yieldToMaturity bisects for the yield that reproduces the bond price
func (c *calculator) yieldToMaturity(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	b := readBond(r)
	target := r.Number(catalog.BondPrice)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	y, err := c.solver.Bisect(func(y float64) float64 {
		return b.price(y) - target
	}, c.yieldLower, c.yieldUpper)
	if err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(y), nil
}

func priceChangeCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	b := readBond(r)
	y := r.Number(catalog.Yield)
	newYield := r.Number(catalog.NewYield)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	p := b.price(y)
	dm, err := b.modified(y)
	if err != nil {
		return dispatch.Result{}, err
	}
	change := -p * dm * (newYield - y)
	res, err := checked(change, "Change In Bond Price")
	return res.WithDetail("New Bond Price", p+change, catalog.KindCurrency), err
}

// quasiDuration weights each period's flows by time, discounting at the
// spot rate of its year, relative to the bond's value on the same curve
func quasiDuration(spots []float64, face, coupons float64, perYear, years int, comp mathx.Compounding) (float64, error) {
	m := float64(perYear)
	price, weighted := 0.0, 0.0
	for i := 1; i <= years && i <= len(spots); i++ {
		y := spots[i-1]

		flow := coupons
		if i == years {
			flow += face
		}
		price += mathx.PresentValue(flow, y, comp, float64(i))

		for j := 1; j <= perYear; j++ {
			cf := coupons / m
			if i == years && j == perYear {
				cf += face
			}
			k := float64((i-1)*perYear + j)
			weighted += cf * (k / m) * math.Pow(1+y/m, -(k+1))
		}
	}
	if price == 0 {
		return 0, invalidInput(catalog.SpotRateList, "bond has no value on this spot rate curve")
	}
	return weighted / price, nil
}

func quasiModifiedCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	spots := r.List(catalog.SpotRateList)
	face := r.Number(catalog.FaceValue)
	coupons := r.Number(catalog.Coupons)
	perYear := r.Count(catalog.CouponsPerPeriod)
	years := r.Count(catalog.Periods)
	comp := compounding(r)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}

	d, err := quasiDuration(spots, face, coupons, perYear, years, comp)
	if err != nil {
		return dispatch.Result{}, err
	}
	return checked(d, "Quasi-Modified Duration")
}

func modifiedShortCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	dp := r.Number(catalog.ChangeInBondPrice)
	dy := r.Number(catalog.ChangeInYield)
	p := r.Number(catalog.BondPrice)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(dy, catalog.ChangeInYield); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(p, catalog.BondPrice); err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(-(dp / dy) / p), nil
}

func newPriceShortCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	dm := r.Number(catalog.ModifiedDuration)
	dy := r.Number(catalog.ChangeInYield)
	p := r.Number(catalog.BondPrice)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	change := -dm * dy * p
	return dispatch.Scalar(change).WithDetail("New Bond Price", p+change, catalog.KindCurrency), nil
}

func newYieldShortCalc(in *inputs.Set) (dispatch.Result, error) {
	r := inputs.NewReader(in)
	dm := r.Number(catalog.ModifiedDuration)
	dp := r.Number(catalog.ChangeInBondPrice)
	p := r.Number(catalog.BondPrice)
	y := r.Number(catalog.Yield)
	if err := r.Err(); err != nil {
		return dispatch.Result{}, err
	}
	if err := nonZero(p*dm, catalog.ModifiedDuration); err != nil {
		return dispatch.Result{}, err
	}
	return dispatch.Scalar(dp/(-p*dm) + y), nil
}
