// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     inputs
// Description: Parsing of typed entries and Field=value assignments
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package inputs

import (
	"strconv"
	"strings"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/foundation/utils/stringx"
	"github.com/msto63/mFIN/internal/catalog"
)

// methodShortcuts are the menu numbers accepted for Compound Method
var methodShortcuts = map[string]string{
	"1": catalog.MethodAnnual,
	"2": catalog.MethodSemiAnnual,
	"3": catalog.MethodQuarterly,
	"4": catalog.MethodMonthly,
	"5": catalog.MethodContinuous,
	"0": catalog.MethodCustom,
}

// ParseEntry parses text typed for field f.
//
// Currency fields accept thousands commas ("1,250,000"). Percentage fields
// are typed as percent and stored as fractions ("5.25" and "5.25%" both
// store 0.0525). Lists are separated by commas, semicolons or spaces; list
// entries may carry a % suffix to be stored as fractions. Compound Method
// accepts a method name or its menu number.
func ParseEntry(f catalog.Field, text string) (Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Value{}, entryError(f, text, "a value is required")
	}

	switch f.Kind() {
	case catalog.KindEnumerated:
		name := text
		if alias, ok := methodShortcuts[text]; ok {
			name = alias
		}
		m, ok := catalog.LookupMethod(name)
		if !ok {
			return Value{}, entryError(f, text, "must be one of "+strings.Join(catalog.MethodNames(), ", "))
		}
		return Choice(m.Name), nil

	case catalog.KindList:
		text = strings.Trim(text, "[]")
		parts := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(parts) == 0 {
			return Value{}, entryError(f, text, "at least one entry is required")
		}
		list := make([]float64, 0, len(parts))
		for _, p := range parts {
			x, err := parseListEntry(p)
			if err != nil {
				return Value{}, entryError(f, text, "'"+p+"' is not a number")
			}
			list = append(list, x)
		}
		return List(list...), nil

	case catalog.KindPercentage:
		x, err := parseNumber(strings.TrimSuffix(text, "%"))
		if err != nil {
			return Value{}, entryError(f, text, "not a percentage")
		}
		return Number(x / 100), nil

	default:
		x, err := parseNumber(text)
		if err != nil {
			return Value{}, entryError(f, text, "not a number")
		}
		return Number(x), nil
	}
}

// ParseAssignment parses "Field Name=value" and resolves the field
func ParseAssignment(s string) (catalog.Field, Value, error) {
	name, text, ok := strings.Cut(s, "=")
	if !ok {
		return 0, Value{}, mfinerror.Newf("assignment %q must have the form Field=value", s).
			WithCode(mfinerror.CodeInvalidInput)
	}
	f, err := ResolveField(name)
	if err != nil {
		return 0, Value{}, err
	}
	v, err := ParseEntry(f, text)
	if err != nil {
		return 0, Value{}, err
	}
	return f, v, nil
}

// ResolveField looks up a field by name; unknown names return an error with
// close matches
func ResolveField(name string) (catalog.Field, error) {
	if f, ok := catalog.Lookup(name); ok {
		return f, nil
	}
	name = strings.TrimSpace(name)
	suggestions := stringx.FindSimilar(name, catalog.Names(), 3)
	return 0, mfinerror.New(stringx.FormatSuggestion("field", name, suggestions)).
		WithCode(mfinerror.CodeUnknownField).
		WithDetail("field", name).
		WithDetail("suggestions", suggestions)
}

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseFloat(s, 64)
}

func parseListEntry(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		x, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return x / 100, err
	}
	return strconv.ParseFloat(s, 64)
}

func entryError(f catalog.Field, text, reason string) error {
	return mfinerror.Newf("%s: %s", f.Name(), reason).
		WithCode(mfinerror.CodeInvalidValue).
		WithDetail("field", f.Name()).
		WithDetail("input", text)
}
