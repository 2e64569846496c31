// Package money wraps shopspring decimal amounts with the currency
// rendering the comparison output needs.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// FromDecimal creates a Money from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount as a signed currency string with thousands
// separators, e.g. "$1,234" or "-$56".
func (m Money) Format() string {
	d := m.Decimal.Round(0)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(0)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatSignedDelta renders a delta with an explicit sign, "+$0" for
// zero.
func FormatSignedDelta(d decimal.Decimal) string {
	if d.IsNegative() {
		return Money{d}.Format()
	}
	return "+" + Money{d}.Format()
}
