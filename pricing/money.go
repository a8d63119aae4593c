package pricing

import (
	"math"
	"strconv"
)

// Round2 rounds a currency amount to two decimal places. Pricing keeps full
// float precision through intermediate steps; rounding happens only here,
// when an amount is displayed or persisted.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount with exactly two decimals for display.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
