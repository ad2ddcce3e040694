// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     catalog
// Description: Boundary checks for field values
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package catalog

import (
	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/foundation/core/validation"
)

var validators = func() map[Field]*validation.ValidatorChain {
	m := make(map[Field]*validation.ValidatorChain, fieldCount)
	for _, f := range All() {
		m[f] = chainFor(f)
	}
	return m
}()

func chainFor(f Field) *validation.ValidatorChain {
	chain := validation.NewValidatorChain(f.Name())

	switch f.Kind() {
	case KindEnumerated:
		return chain.AddFunc(validation.OneOf(MethodNames()...))
	case KindList:
		chain.AddFunc(validation.NonEmptyList()).
			AddFunc(validation.Each(validation.Finite()))
		if f == PeriodsList {
			chain.AddFunc(validation.Each(validation.NewValidatorChain().
				AddFunc(validation.Integral()).
				AddFunc(validation.Min(1))))
		}
		return chain
	}

	chain.AddFunc(validation.Finite())
	switch f {
	case Periods, StartYear, FirstSpotYear, SecondSpotYear:
		chain.AddFunc(validation.Min(0))
	case CouponsPerPeriod, CustomFrequency:
		chain.AddFunc(validation.Positive())
	case Periods1, Periods2, CouponsPerPeriod1, CouponsPerPeriod2:
		chain.AddFunc(validation.Positive()).AddFunc(validation.Integral())
	}
	return chain
}

// Validate checks a raw value for f: a float64 for currency and percentage
// fields, a []float64 for lists and a method name for Compound Method.
// Failures carry CodeInvalidValue.
func Validate(f Field, value interface{}) error {
	chain, ok := validators[f]
	if !ok {
		return mfinerror.Newf("unknown field %d", int(f)).
			WithCode(mfinerror.CodeUnknownField)
	}
	return chain.Validate(value).ToError()
}
