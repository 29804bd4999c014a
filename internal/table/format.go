package table

import "strconv"

// FormatAmount renders a payout with its sign, e.g. +150, -50 or +112.5.
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if amount > 0 {
		return "+" + s
	}
	return s
}

const separator = "========================================================================"
