package quotes

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineFraction(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{description: "Fence repair 25%", want: "0.25"},
		{description: "deposit 50% up front", want: "0.5"},
		{description: "33.3% share", want: "0.33"},
		{description: "progress 12.125%", want: "0.12"},
		{description: "stage 2 of 3 - 66.667%", want: "0.67"},
		{description: "5%", want: "0.05"},
		{description: "0%", want: "0"},
		{description: "100% complete", want: "1"},
		{description: "Retaining wall", want: "1"},
		{description: "", want: "1"},
		{description: "percent sign alone %", want: "1"},
		{description: "first 10% then 90%", want: "0.1"},
		{description: "overrun 150%", want: "1"},
	}
	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			got := LineFraction(tc.description)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("LineFraction(%q) = %s, want %s", tc.description, got, tc.want)
			}
			if got.LessThan(decimal.Zero) || got.GreaterThan(decimal.NewFromInt(1)) {
				t.Fatalf("fraction %s out of [0,1]", got)
			}
		})
	}
}
