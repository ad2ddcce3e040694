// File: format.go
// Title: Number Rendering
// Description: Renders float64 values as exact shortest decimals with
//              thousands grouping, and fractions as percentages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Currency formatting for Money values
// - 2026-10-16 v0.2.0: Grouped and percent rendering over shopspring/decimal

package mathx

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GroupSeparator separates thousands in the integral part
const GroupSeparator = ","

// FormatGrouped renders v with thousands grouping and the shortest digits
// that identify v. Integral values keep one fractional zero so that
// 1234567 renders as "1,234,567.0".
func FormatGrouped(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return groupDecimal(decimal.NewFromFloat(v).String(), true)
}

// FormatPercent renders a fraction as a percentage: 0.0525 renders as "5.25%".
// The decimal point is shifted exactly so no binary noise appears.
func FormatPercent(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).Shift(2).String() + "%"
}

// FormatPlain renders v with the shortest identifying digits and no grouping
func FormatPlain(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).String()
}

// RoundTo rounds v half away from zero to the given number of decimal places
func RoundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// GroupDigits inserts sep between groups of three digits, counted from the right
func GroupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func groupDecimal(s string, keepFraction bool) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !hasFrac && keepFraction {
		frac, hasFrac = "0", true
	}
	out := sign + GroupDigits(intPart, GroupSeparator)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func formatNonFinite(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
