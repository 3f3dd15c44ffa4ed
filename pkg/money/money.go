// Package money handles the loose numeric formats coming out of the
// spreadsheet and renders amounts the way the storefront shows them (BRL).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse coerces a spreadsheet cell's text into a decimal amount. Empty
// input and anything non-numeric coerce to zero; a decimal comma is
// accepted in place of a decimal point. Parse never fails.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders an amount as Brazilian currency: R$ 1.234,56.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	cents := fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + cents
	if neg {
		out = "-" + out
	}
	return out
}
