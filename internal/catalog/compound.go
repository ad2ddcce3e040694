// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     catalog
// Description: Compounding methods for the Compound Method field
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package catalog

// Method is one choice of the Compound Method field
type Method struct {
	Name string
	// PerYear is the number of compounding periods per year. It is zero for
	// Continuous and Custom.
	PerYear    float64
	Continuous bool
	Custom     bool
}

// Compound method names
const (
	MethodAnnual     = "Annual"
	MethodSemiAnnual = "Semi-Annual"
	MethodQuarterly  = "Quarterly"
	MethodMonthly    = "Monthly"
	MethodContinuous = "Continuous"
	MethodCustom     = "Custom"
)

var methods = []Method{
	{Name: MethodAnnual, PerYear: 1},
	{Name: MethodSemiAnnual, PerYear: 2},
	{Name: MethodQuarterly, PerYear: 4},
	{Name: MethodMonthly, PerYear: 12},
	{Name: MethodContinuous, Continuous: true},
	{Name: MethodCustom, Custom: true},
}

// Methods returns the compound methods in menu order
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// MethodNames returns the names of all compound methods in menu order
func MethodNames() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	return names
}

// LookupMethod resolves a compound method by name, ignoring case and spacing
func LookupMethod(name string) (Method, bool) {
	key := normalize(name)
	for _, m := range methods {
		if normalize(m.Name) == key {
			return m, true
		}
	}
	return Method{}, false
}
