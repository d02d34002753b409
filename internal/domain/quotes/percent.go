package quotes

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// A decimal percentage with up to three fraction digits, or a bare integer
// one. Only one group is non-empty for a given match.
var percentPattern = regexp.MustCompile(`(\d+\.\d{1,3})%|(\d+)%`)

var (
	wholeLine = decimal.NewFromInt(1)
	hundred   = decimal.NewFromInt(100)
)

// LineFraction extracts the share of a line from its description:
// "Fence repair 25%" is 0.25, "33.3%" is 0.33. Descriptions without a marker
// are whole lines (1). The result is clamped to [0,1].
func LineFraction(description string) decimal.Decimal {
	m := percentPattern.FindStringSubmatch(description)
	if m == nil {
		return wholeLine
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	pct, err := decimal.NewFromString(digits)
	if err != nil {
		return wholeLine
	}
	f := pct.Div(hundred).Round(2)
	if f.GreaterThan(wholeLine) {
		return wholeLine
	}
	return f
}
