// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     format
// Description: Renders values, results and input echoes by display kind
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package format renders values for display according to their catalog kind.
//
// Currency values are grouped by thousands, percentages are shifted from
// their stored fraction, enumerated values and lists are rendered as stored.
// Rendering never fails: values a numeric rule cannot handle are shown as
// they are, and the fallback is logged at debug level.
package format

import (
	"fmt"
	"math"
	"strings"

	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/foundation/utils/mathx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
)

// allocationPlaces bounds the digits shown for allocation entries, hiding
// solver round-off such as 0.9999999999998
const allocationPlaces = 9

// Formatter renders values by display kind
type Formatter struct {
	logger *mfinlog.Logger
}

// New creates a formatter. A nil logger discards fallback notices.
func New(logger *mfinlog.Logger) *Formatter {
	if logger == nil {
		logger = mfinlog.Discard()
	}
	return &Formatter{logger: logger.WithName("format")}
}

var plain = New(nil)

// FormatValue renders value for kind without logging
func FormatValue(value any, kind catalog.Kind) string {
	return plain.Value(value, kind)
}

// FormatResult renders a calculation result without logging
func FormatResult(spec dispatch.CalculationSpec, r dispatch.Result) string {
	return plain.Result(spec, r)
}

// FormatInputs renders the current inputs without logging
func FormatInputs(in *inputs.Set) string {
	return plain.Inputs(in)
}

// Value renders value for kind. An empty string renders as an empty string
// for every kind.
func (f *Formatter) Value(value any, kind catalog.Kind) string {
	if v, ok := value.(inputs.Value); ok {
		value = v.Raw()
	}
	if s, ok := value.(string); ok && s == "" {
		return ""
	}

	switch kind {
	case catalog.KindCurrency:
		return f.numeric(value, kind, mathx.FormatGrouped)
	case catalog.KindPercentage:
		return f.numeric(value, kind, mathx.FormatPercent)
	case catalog.KindList:
		return f.list(value)
	default:
		return fmt.Sprint(value)
	}
}

// numeric applies render to numbers and falls back to the raw value otherwise
func (f *Formatter) numeric(value any, kind catalog.Kind, render func(float64) string) string {
	v, ok := toFloat(value)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		f.logger.Debug("format fallback", mfinlog.Fields{
			"kind":  kind.String(),
			"value": fmt.Sprint(value),
		})
		return fmt.Sprint(value)
	}
	return render(v)
}

func (f *Formatter) list(value any) string {
	values, ok := value.([]float64)
	if !ok {
		return fmt.Sprint(value)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = mathx.FormatPlain(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Result renders a calculation result: the primary value in the
// calculation's result kind with its note, then one indented line per
// allocation entry and per detail.
func (f *Formatter) Result(spec dispatch.CalculationSpec, r dispatch.Result) string {
	var b strings.Builder
	b.WriteString(spec.Name)
	b.WriteString(": ")
	b.WriteString(f.Value(r.Value, spec.Result))
	if r.Note != "" {
		b.WriteString(" ")
		b.WriteString(r.Note)
	}

	for i, x := range r.Allocation {
		label := fmt.Sprintf("#%d", i+1)
		if i < len(r.Labels) {
			label = r.Labels[i]
		}
		fmt.Fprintf(&b, "\n  %s: %s", label, mathx.FormatPlain(mathx.RoundTo(x, allocationPlaces)))
	}
	for _, d := range r.Details {
		fmt.Fprintf(&b, "\n  %s: %s", d.Label, f.Value(d.Value, d.Kind))
	}
	return b.String()
}

// Inputs renders one "Name: value" line per input in insertion order
func (f *Formatter) Inputs(in *inputs.Set) string {
	if in == nil {
		return ""
	}
	lines := make([]string, 0, in.Len())
	for _, field := range in.Fields() {
		v, _ := in.Get(field)
		lines = append(lines, field.Name()+": "+f.Value(v, field.Kind()))
	}
	return strings.Join(lines, "\n")
}
