package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// All balances and amounts inside the engine are int64 subunits (paisa).
// Conversion to and from rupees happens only here, at the API boundary.

// subunitDecimals is the one place the subunit scale lives: 10^2 paisa per
// rupee. Both directions of conversion derive from it.
const subunitDecimals = 2

// DisplayAmount renders a subunit amount as a rupee string, e.g. 150050 -> "1500.50".
func DisplayAmount(subunits int64) string {
	return decimal.New(subunits, -subunitDecimals).StringFixed(subunitDecimals)
}

// ParseAmount converts a user-facing rupee amount into subunits. Amounts
// finer than one paisa are rejected rather than rounded.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	sub := d.Shift(subunitDecimals)
	if !sub.IsInteger() {
		return 0, fmt.Errorf("amount %q is below subunit precision", s)
	}
	return sub.IntPart(), nil
}
