// Package coerce holds the loose-comparison coercion rules used by condition
// evaluation. Unusable data coerces to NaN or empty text so that the rule
// simply does not fire.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"form-pricing/pkg/guide"
)

// Number coerces a value to float64 for ordering comparisons. Anything
// non-numeric yields NaN, and every comparison involving NaN is false.
func Number(v guide.Value) float64 {
	switch v.Kind {
	case guide.ValueNumber:
		return v.Number
	case guide.ValueBool:
		if v.Bool {
			return 1
		}
		return 0
	case guide.ValueString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}

// Text coerces a value to its comparable string form: numbers without
// trailing zeros, booleans as true/false, lists joined with commas.
func Text(v guide.Value) string {
	switch v.Kind {
	case guide.ValueString:
		return v.Text
	case guide.ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case guide.ValueBool:
		return strconv.FormatBool(v.Bool)
	case guide.ValueList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = Text(item)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Fold lower-cases text for the case-insensitive contains comparison.
func Fold(s string) string {
	return strings.ToLower(s)
}
