package reports

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteTable renders the report as a box-drawing table. Providers are
// listed alphabetically, followed by a totals row and, when any cache
// activity was recorded, a cache row showing hits and accumulated savings.
func WriteTable(w io.Writer, r Report) error {
	cacheActive := r.CacheStats.Hits > 0 || r.CacheStats.Misses > 0
	if len(r.ByProvider) == 0 && !cacheActive {
		_, err := io.WriteString(w, "No usage data to report.\n")
		return err
	}

	names := make([]string, 0, len(r.ByProvider))
	width := len("Provider")
	for name := range r.ByProvider {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	// Column layout: provider (width), calls (5), tokens (7), cost (10).
	rule := strings.Repeat("─", width+33)
	var b strings.Builder
	fmt.Fprintf(&b, "┌%s┐\n", rule)
	fmt.Fprintf(&b, "│ %-*s │\n", width+31, "Usage Report")
	fmt.Fprintf(&b, "├%s┤\n", rule)
	fmt.Fprintf(&b, "│ %-*s │ %5s │ %7s │ %10s │\n", width, "Provider", "Calls", "Tokens", "Cost")
	fmt.Fprintf(&b, "├%s┤\n", rule)
	for _, name := range names {
		u := r.ByProvider[name]
		fmt.Fprintf(&b, "│ %-*s │ %5d │ %7s │ %10s │\n",
			width, name, u.Calls, FormatNumber(u.TotalTokens), FormatCost(u.TotalCostUSD))
	}
	fmt.Fprintf(&b, "├%s┤\n", rule)
	fmt.Fprintf(&b, "│ %-*s │ %5d │ %7s │ %10s │\n",
		width, "Total", r.Total.Calls, FormatNumber(r.Total.TotalTokens), FormatCost(r.Total.TotalCostUSD))
	if cacheActive {
		fmt.Fprintf(&b, "│ %-*s │ %5d │ %7s │ %10s │\n",
			width, "Cache", r.CacheStats.Hits, FormatNumber(r.CacheStats.SavedTokens), FormatCost(r.CacheStats.SavedCostUSD))
	}
	fmt.Fprintf(&b, "└%s┘\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}
