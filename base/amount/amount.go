// Package amount converts between integer base-unit amounts and their
// human-readable decimal form. Amounts never pass through a binary float.
package amount

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/marketclient/domain"
)

// MaxDisplayFractionDigits caps the fractional precision of display strings.
// Display is lossy beyond this cap; storage always keeps the full integer.
const MaxDisplayFractionDigits = 6

// ToDisplay renders a base-unit amount against the currency's decimal count.
// Trailing zero fraction digits are trimmed and precision beyond the cap is
// truncated, not rounded. Malformed input normalizes to "0".
func ToDisplay(v *big.Int, decimals int32) string {
	if v == nil || v.Sign() < 0 {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).Truncate(MaxDisplayFractionDigits).String()
}

// ToBaseUnits parses a display string into base units. Fraction digits beyond
// the currency's decimal count are truncated. Returns ErrMalformedAmount for
// input that is not a non-negative decimal number.
func ToBaseUnits(s string, decimals int32) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, domain.ErrMalformedAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrMalformedAmount
	}
	if d.IsNegative() {
		return nil, domain.ErrMalformedAmount
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// MustToBaseUnits is ToBaseUnits for trusted constants. Panics on error.
func MustToBaseUnits(s string, decimals int32) *big.Int {
	v, err := ToBaseUnits(s, decimals)
	if err != nil {
		panic(err)
	}
	return v
}
