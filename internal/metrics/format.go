package metrics

import "fmt"

// Formatter renders a mean value for a chart annotation.
type Formatter func(float64) string

// FormatFixed renders v with two decimals.
func FormatFixed(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatCompact renders values of 1000 and above in thousands with a "K"
// suffix (1250 -> "1.25K") and everything else like FormatFixed.
func FormatCompact(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.2fK", v/1000)
	}
	return FormatFixed(v)
}
