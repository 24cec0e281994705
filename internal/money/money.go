// Package money represents currency amounts as integer minor units so cart
// totals stay exact. Prices travel through the API as decimal strings such as
// "10.50" and never as binary floating point.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"discbin/internal/faults"
)

// Cents is an amount in minor units (hundredths of the currency unit).
type Cents int64

// ParseAmount converts a decimal string like "10.50" into minor units.
// At most two fraction digits are accepted; the amount must be positive.
func ParseAmount(value string) (Cents, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", "amount is required", nil)
	}

	whole := trimmed
	frac := ""
	if idx := strings.IndexByte(trimmed, '.'); idx >= 0 {
		whole = trimmed[:idx]
		frac = trimmed[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", fmt.Sprintf("amount %q has more than two fraction digits", value), nil)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", fmt.Sprintf("amount %q is not a number", value), nil)
	}
	fracUnits, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", fmt.Sprintf("amount %q is not a number", value), nil)
	}
	if units < 0 || strings.HasPrefix(whole, "-") {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", "amount must be positive", nil)
	}
	if units > (math.MaxInt64-fracUnits)/100 {
		return 0, faults.Wrap(faults.ErrValidation, "money", "parse", fmt.Sprintf("amount %q overflows", value), nil)
	}

	return Cents(units*100 + fracUnits), nil
}

// MulQty multiplies the amount by a line quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// String renders the amount with exactly two fraction digits.
func (c Cents) String() string {
	negative := c < 0
	v := int64(c)
	if negative {
		v = -v
	}
	s := fmt.Sprintf("%d.%02d", v/100, v%100)
	if negative {
		return "-" + s
	}
	return s
}
