// Package format turns chart values into display strings.
package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Abbreviate renders v with an SI prefix rounded to one fractional digit,
// e.g. 1234 -> "1.2k", 3400000 -> "3.4M", 50 -> "50".
func Abbreviate(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	value, prefix := humanize.ComputeSI(v)
	rounded := math.Round(value*10) / 10
	if math.Abs(rounded) >= 1000 {
		// 999.96 rounds to 1000; carry into the next prefix.
		value, prefix = humanize.ComputeSI(rounded * (v / value))
		rounded = math.Round(value*10) / 10
	}
	return humanize.FtoaWithDigits(rounded, 1) + prefix
}

// Variance returns the percentage change from first to second relative to |first|.
// ok is false when first is zero.
func Variance(first, second float64) (pct float64, ok bool) {
	if first == 0 {
		return 0, false
	}
	return (second - first) / math.Abs(first) * 100, true
}

// Percent formats pct with one decimal place and an explicit sign, e.g. "+50.0%".
func Percent(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 1, 64)
	if pct >= 0 {
		if s == "-0.0" {
			s = "0.0"
		}
		s = "+" + s
	}
	return s + "%"
}
