package reports

import (
	"fmt"
	"strconv"
)

// FormatCost renders a USD amount for display. Small values keep four
// decimal places so sub-cent costs remain visible.
func FormatCost(v float64) string {
	if v < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatNumber renders a token count in compact form, abbreviating
// thousands and millions.
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}
