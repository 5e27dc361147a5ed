// Package display renders price estimates as customer-facing or internal
// text. Rounding and thousands grouping happen here and only here, so
// re-formatting a stored estimate is lossless and idempotent.
package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"form-pricing/pkg/guide"
)

// symbols maps known currency codes to their display symbol. Unknown codes
// fall back to printing the code itself.
var symbols = map[string]string{
	"USD": "$",
	"AUD": "$",
	"CAD": "$",
	"NZD": "$",
	"SGD": "$",
	"GBP": "£",
	"EUR": "€",
	"JPY": "¥",
	"INR": "₹",
	"ZAR": "R",
}

// ForCustomer renders the customer-facing estimate text. It returns an empty
// string whenever nothing should be shown; callers must suppress rendering
// entirely on empty output rather than print a blank line.
func ForCustomer(est guide.PriceEstimate, currency string) string {
	if est.Mode == guide.ModeDisabled || !est.ShowToCustomer {
		return ""
	}

	switch est.Mode {
	case guide.ModeRange:
		if est.Min == est.Max {
			return fmt.Sprintf("Estimated: %s", Money(est.Min, currency))
		}
		return fmt.Sprintf("Estimated range: %s – %s", Money(est.Min, currency), Money(est.Max, currency))
	case guide.ModeStartingFrom:
		// No ceiling is ever shown in this mode.
		return fmt.Sprintf("Starting from %s", Money(est.Min, currency))
	default:
		// internal and anything unrecognized stays hidden from
		// customers.
		return ""
	}
}

// ForInternal renders the business owner's own view. It is never suppressed,
// independent of mode and show_to_customer.
func ForInternal(est guide.PriceEstimate, currency string) string {
	if est.Min == est.Max {
		return Money(est.Min, currency)
	}
	return fmt.Sprintf("%s – %s", Money(est.Min, currency), Money(est.Max, currency))
}

// Money renders one amount with its currency symbol, rounded to the nearest
// whole unit and grouped with thousands separators.
func Money(amount float64, currency string) string {
	return Symbol(currency) + groupThousands(decimal.NewFromFloat(amount).Round(0).String())
}

// Symbol resolves a currency code to its display symbol, or the code itself
// when unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
