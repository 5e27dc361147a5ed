package display

import (
	"testing"

	"github.com/stretchr/testify/require"

	"form-pricing/pkg/guide"
)

func TestForCustomer(t *testing.T) {
	testCases := []struct {
		name string
		est  guide.PriceEstimate
		want string
	}{
		{
			name: "range mode with distinct legs",
			est:  guide.PriceEstimate{Min: 1200, Max: 3400, Mode: guide.ModeRange, ShowToCustomer: true},
			want: "Estimated range: $1,200 – $3,400",
		},
		{
			name: "range mode collapses to a single value",
			est:  guide.PriceEstimate{Min: 150, Max: 150, Mode: guide.ModeRange, ShowToCustomer: true},
			want: "Estimated: $150",
		},
		{
			name: "starting_from never shows a ceiling",
			est:  guide.PriceEstimate{Min: 500, Max: 900, Mode: guide.ModeStartingFrom, ShowToCustomer: true},
			want: "Starting from $500",
		},
		{
			name: "internal mode is always empty",
			est:  guide.PriceEstimate{Min: 100, Max: 200, Mode: guide.ModeInternal, ShowToCustomer: true},
			want: "",
		},
		{
			name: "disabled mode is empty",
			est:  guide.PriceEstimate{Min: 100, Max: 200, Mode: guide.ModeDisabled, ShowToCustomer: true},
			want: "",
		},
		{
			name: "hidden from customer is empty",
			est:  guide.PriceEstimate{Min: 100, Max: 200, Mode: guide.ModeRange, ShowToCustomer: false},
			want: "",
		},
		{
			name: "unrecognized mode is empty",
			est:  guide.PriceEstimate{Min: 100, Max: 200, Mode: "mystery", ShowToCustomer: true},
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ForCustomer(tc.est, "USD"))
		})
	}
}

func TestForInternalIsNeverSuppressed(t *testing.T) {
	rq := require.New(t)

	hidden := guide.PriceEstimate{Min: 1000, Max: 2500, Mode: guide.ModeDisabled, ShowToCustomer: false}
	rq.Equal("$1,000 – $2,500", ForInternal(hidden, "USD"))

	point := guide.PriceEstimate{Min: 150, Max: 150, Mode: guide.ModeInternal}
	rq.Equal("$150", ForInternal(point, "USD"))
}

func TestMoneyRounding(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{name: "rounds to nearest whole unit", amount: 1234.56, currency: "USD", want: "$1,235"},
		{name: "groups millions", amount: 1234567, currency: "USD", want: "$1,234,567"},
		{name: "euro symbol", amount: 99, currency: "EUR", want: "€99"},
		{name: "unknown code falls back to the code", amount: 1500, currency: "SEK", want: "SEK1,500"},
		{name: "negative amounts keep the sign", amount: -1234, currency: "USD", want: "$-1,234"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Money(tc.amount, tc.currency))
		})
	}
}

func TestMoneyFormattingIsIdempotentOverTheEstimate(t *testing.T) {
	rq := require.New(t)

	est := guide.PriceEstimate{Min: 1499.5, Max: 1499.5, Mode: guide.ModeRange, ShowToCustomer: true}

	first := ForCustomer(est, "USD")
	second := ForCustomer(est, "USD")
	rq.Equal(first, second)
	rq.Equal(1499.5, est.Min)
}
