package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"mercator-hq/abacus/pkg/usage"
)

// WriteCSV renders the report as CSV with one row per provider (sorted by
// name) followed by a total row. Costs carry six decimal places.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	header := []string{"provider", "calls", "total_tokens", "prompt_tokens", "completion_tokens", "cost_usd"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	names := make([]string, 0, len(r.ByProvider))
	for name := range r.ByProvider {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := cw.Write(csvRecord(name, r.ByProvider[name])); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", name, err)
		}
	}
	if err := cw.Write(csvRecord("total", r.Total)); err != nil {
		return fmt.Errorf("writing CSV total row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func csvRecord(name string, u usage.Usage) []string {
	return []string{
		name,
		strconv.Itoa(u.Calls),
		strconv.Itoa(u.TotalTokens),
		strconv.Itoa(u.PromptTokens),
		strconv.Itoa(u.CompletionTokens),
		fmt.Sprintf("%.6f", u.TotalCostUSD),
	}
}
