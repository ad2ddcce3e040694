// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     catalog
// Description: Menu categories grouping the fields
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package catalog

// Category groups fields under one menu entry. A field may appear in more
// than one category.
type Category struct {
	Name   string
	Fields []Field
}

var categories = []Category{
	{Name: "Value", Fields: []Field{PresentValue, FutureValue, Cashflow, StartYear}},
	{Name: "Rate", Fields: []Field{
		InterestRate, EffectiveRate, NominalRate, Periods, CompoundMethod, CustomFrequency,
		FirstSpotYear, FirstSpotValue, SecondSpotYear, SecondSpotValue, ForwardRate,
	}},
	{Name: "Loan", Fields: []Field{Principal, NominalPrincipal, Payments, PerpetualValue}},
	{Name: "Bond", Fields: []Field{
		FaceValue, Coupons, Yield, CouponsPerPeriod, Periods, BondPrice, NewYield,
		SpotRateList, ChangeInBondPrice, ChangeInYield, ModifiedDuration,
	}},
	{Name: "Optimal", Fields: []Field{
		ProjectCosts, ProjectWorths, Budget, BondYieldList, ObligationsList,
		CouponList, FaceValueList, PeriodsList, BondPriceList,
	}},
	{Name: "Portfolio", Fields: []Field{
		FaceValue1, Coupons1, CouponsPerPeriod1, Periods1,
		FaceValue2, Coupons2, CouponsPerPeriod2, Periods2,
		SpotRateList, ObligationsList, CompoundMethod,
	}},
	{Name: "Return", Fields: []Field{AmountInvested, AmountReceived}},
}

// Categories returns the menu categories in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Fields: append([]Field(nil), c.Fields...)}
	}
	return out
}
