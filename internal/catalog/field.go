// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     catalog
// Description: Fixed universe of input fields and their display kinds
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Kind determines how a field value is entered and rendered
type Kind int

const (
	// KindCurrency is a plain number rendered with thousands grouping
	KindCurrency Kind = iota
	// KindPercentage is a fraction rendered times 100 with a % suffix
	KindPercentage
	// KindEnumerated is a member of a closed choice set
	KindEnumerated
	// KindList is a sequence of numbers
	KindList
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindCurrency:
		return "currency"
	case KindPercentage:
		return "percentage"
	case KindEnumerated:
		return "enumerated"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field identifies one named financial input
type Field int

// Field constants. The zero value is not a field.
const (
	PresentValue Field = iota + 1
	FutureValue
	Cashflow
	StartYear

	InterestRate
	EffectiveRate
	NominalRate
	Periods
	CompoundMethod
	CustomFrequency
	FirstSpotYear
	FirstSpotValue
	SecondSpotYear
	SecondSpotValue
	ForwardRate

	Principal
	NominalPrincipal
	Payments
	PerpetualValue

	FaceValue
	Coupons
	Yield
	CouponsPerPeriod
	BondPrice
	NewYield
	SpotRateList
	ChangeInBondPrice
	ChangeInYield
	ModifiedDuration

	ProjectCosts
	ProjectWorths
	Budget
	BondYieldList
	ObligationsList
	CouponList
	FaceValueList
	PeriodsList
	BondPriceList

	FaceValue1
	Coupons1
	CouponsPerPeriod1
	Periods1
	FaceValue2
	Coupons2
	CouponsPerPeriod2
	Periods2

	AmountInvested
	AmountReceived

	fieldCount
)

// FieldSpec describes a field
type FieldSpec struct {
	Field  Field
	Name   string
	Kind   Kind
	Prompt string
}

var specs = [fieldCount]FieldSpec{
	PresentValue: {Name: "Present Value", Kind: KindCurrency, Prompt: "commas allowed"},
	FutureValue:  {Name: "Future Value", Kind: KindCurrency, Prompt: "commas allowed"},
	Cashflow:     {Name: "Cashflow", Kind: KindList, Prompt: "one amount per year, comma separated"},
	StartYear:    {Name: "Start Year", Kind: KindCurrency, Prompt: "year of the first flow, typically 0"},

	InterestRate:    {Name: "Interest Rate", Kind: KindPercentage, Prompt: "as a percent"},
	EffectiveRate:   {Name: "Effective Rate", Kind: KindPercentage, Prompt: "as a percent"},
	NominalRate:     {Name: "Nominal Rate", Kind: KindPercentage, Prompt: "as a percent"},
	Periods:         {Name: "Periods", Kind: KindCurrency, Prompt: "years"},
	CompoundMethod:  {Name: "Compound Method", Kind: KindEnumerated, Prompt: "Annual, Semi-Annual, Quarterly, Monthly, Continuous or Custom"},
	CustomFrequency: {Name: "Custom Frequency", Kind: KindCurrency, Prompt: "compounding periods per year"},
	FirstSpotYear:   {Name: "First Spot Year", Kind: KindCurrency, Prompt: "year"},
	FirstSpotValue:  {Name: "First Spot Value", Kind: KindPercentage, Prompt: "as a percent"},
	SecondSpotYear:  {Name: "Second Spot Year", Kind: KindCurrency, Prompt: "year"},
	SecondSpotValue: {Name: "Second Spot Value", Kind: KindPercentage, Prompt: "as a percent"},
	ForwardRate:     {Name: "Forward Rate", Kind: KindPercentage, Prompt: "as a percent"},

	Principal:        {Name: "Principal", Kind: KindCurrency, Prompt: "commas allowed"},
	NominalPrincipal: {Name: "Nominal Principal", Kind: KindCurrency, Prompt: "commas allowed"},
	Payments:         {Name: "Payments", Kind: KindCurrency, Prompt: "payment per period"},
	PerpetualValue:   {Name: "Perpetual Value", Kind: KindCurrency, Prompt: "payment per year"},

	FaceValue:         {Name: "Face Value", Kind: KindCurrency, Prompt: "commas allowed"},
	Coupons:           {Name: "Coupons", Kind: KindCurrency, Prompt: "coupon amount per year"},
	Yield:             {Name: "Yield", Kind: KindPercentage, Prompt: "as a percent"},
	CouponsPerPeriod:  {Name: "Coupons per Period", Kind: KindCurrency, Prompt: "coupon payments per year"},
	BondPrice:         {Name: "Bond Price", Kind: KindCurrency, Prompt: "commas allowed"},
	NewYield:          {Name: "New Yield", Kind: KindPercentage, Prompt: "as a percent"},
	SpotRateList:      {Name: "Spot Rate List", Kind: KindList, Prompt: "one rate per year, e.g. 7.67%, 8.27%"},
	ChangeInBondPrice: {Name: "Change in Bond Price", Kind: KindCurrency, Prompt: "commas allowed"},
	ChangeInYield:     {Name: "Change in Yield", Kind: KindPercentage, Prompt: "as a percent"},
	ModifiedDuration:  {Name: "Modified Duration", Kind: KindCurrency, Prompt: "years"},

	ProjectCosts:    {Name: "Project Costs", Kind: KindList, Prompt: "cost of each project"},
	ProjectWorths:   {Name: "Project Worths", Kind: KindList, Prompt: "worth of each project"},
	Budget:          {Name: "Budget", Kind: KindCurrency, Prompt: "commas allowed"},
	BondYieldList:   {Name: "Bond Yield List", Kind: KindList, Prompt: "coupon rate of each par bond"},
	ObligationsList: {Name: "Obligations List", Kind: KindList, Prompt: "obligation due each year"},
	CouponList:      {Name: "Coupon List", Kind: KindList, Prompt: "annual coupon of each bond"},
	FaceValueList:   {Name: "Face Value List", Kind: KindList, Prompt: "face value of each bond"},
	PeriodsList:     {Name: "Periods List", Kind: KindList, Prompt: "maturity year of each bond"},
	BondPriceList:   {Name: "Bond Price List", Kind: KindList, Prompt: "price of each bond"},

	FaceValue1:        {Name: "Face Value #1", Kind: KindCurrency, Prompt: "commas allowed"},
	Coupons1:          {Name: "Coupons #1", Kind: KindCurrency, Prompt: "coupon amount per year"},
	CouponsPerPeriod1: {Name: "Coupons per Period #1", Kind: KindCurrency, Prompt: "coupon payments per year"},
	Periods1:          {Name: "Periods #1", Kind: KindCurrency, Prompt: "years to maturity"},
	FaceValue2:        {Name: "Face Value #2", Kind: KindCurrency, Prompt: "commas allowed"},
	Coupons2:          {Name: "Coupons #2", Kind: KindCurrency, Prompt: "coupon amount per year"},
	CouponsPerPeriod2: {Name: "Coupons per Period #2", Kind: KindCurrency, Prompt: "coupon payments per year"},
	Periods2:          {Name: "Periods #2", Kind: KindCurrency, Prompt: "years to maturity"},

	AmountInvested: {Name: "Amount Invested", Kind: KindCurrency, Prompt: "commas allowed"},
	AmountReceived: {Name: "Amount Received", Kind: KindCurrency, Prompt: "commas allowed"},
}

// byName maps normalised names to fields
var byName = func() map[string]Field {
	m := make(map[string]Field, len(specs))
	for _, f := range All() {
		m[normalize(specs[f].Name)] = f
	}
	return m
}()

var folder = cases.Fold()

// normalize maps a name to its lookup key: NFKC, case folded, single spaces
func normalize(name string) string {
	s := norm.NFKC.String(name)
	s = folder.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Valid reports whether f names a catalog field
func (f Field) Valid() bool {
	return f > 0 && f < fieldCount
}

// Spec returns the field's spec; invalid fields return a zero spec
func (f Field) Spec() FieldSpec {
	if !f.Valid() {
		return FieldSpec{}
	}
	s := specs[f]
	s.Field = f
	return s
}

// Name returns the display name
func (f Field) Name() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return specs[f].Name
}

// Kind returns the display kind; invalid fields render as currency
func (f Field) Kind() Kind {
	if !f.Valid() {
		return KindCurrency
	}
	return specs[f].Kind
}

// String implements fmt.Stringer
func (f Field) String() string {
	return f.Name()
}

// All returns every field in catalog order
func All() []Field {
	fields := make([]Field, 0, fieldCount-1)
	for f := PresentValue; f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// Names returns the display names of all fields in catalog order
func Names() []string {
	names := make([]string, 0, fieldCount-1)
	for _, f := range All() {
		names = append(names, specs[f].Name)
	}
	return names
}

// Lookup resolves a field by name. Matching ignores case, surrounding and
// repeated whitespace and Unicode compatibility forms.
func Lookup(name string) (Field, bool) {
	f, ok := byName[normalize(name)]
	return f, ok
}

// NameList joins field names for messages
func NameList(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return strings.Join(names, ", ")
}
