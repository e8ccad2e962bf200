package reports

import (
	"mercator-hq/abacus/pkg/usage"
)

// Report is a point-in-time snapshot of a tracker's accounting state.
// The zero value renders as an empty report.
type Report struct {
	// Total is the aggregate usage across all providers
	Total usage.Usage `json:"total"`

	// ByProvider breaks usage down per provider label
	ByProvider map[string]usage.Usage `json:"by_provider"`

	// CacheStats holds cache hit/miss counts and accumulated savings
	CacheStats usage.CacheStats `json:"cache_stats"`
}

// Generate snapshots the tracker into a Report. The tracker is not held
// afterwards; renderings of the returned report all see the same numbers.
func Generate(t *usage.Tracker) Report {
	return Report{
		Total:      t.Usage(),
		ByProvider: t.UsageByProvider(),
		CacheStats: t.CacheStats(),
	}
}
