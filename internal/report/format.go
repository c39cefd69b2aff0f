package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Currency renders a dollar amount with two decimal places and thousands
// separators, e.g. 1234.5 -> "$1,234.50".
func Currency(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Percent renders an integer percentage, e.g. 50 -> "50%".
func Percent(p int) string {
	return strconv.Itoa(p) + "%"
}

// Fraction renders a payout fraction as a percentage with no decimals,
// e.g. 0.85 -> "85%".
func Fraction(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
}
