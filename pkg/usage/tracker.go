package usage

import (
	"fmt"
	"sync"

	"mercator-hq/abacus/pkg/cache"
	"mercator-hq/abacus/pkg/config"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/telemetry/metrics"
)

// Tracker is the central accounting ledger for LLM API usage.
//
// It accumulates token counts, derived costs, and call counts into a global
// aggregate and into per-provider subtotals, and keeps separate hit/miss
// counters for the optional response cache. Costs are resolved through the
// pricing resolver at the moment a call is tracked.
//
// # Thread Safety
//
// All methods are safe for concurrent use. A single mutex guards every piece
// of tracker state, so concurrent Track calls never lose updates and snapshot
// reads never observe a half-applied update.
//
// # Example
//
//	resolver := pricing.NewResolver()
//	tracker, err := usage.NewTracker(resolver, usage.Config{Cache: "memory"})
//	if err != nil {
//	    return err
//	}
//
//	if err := tracker.Track("gpt-4o", 1200, 350, "openai"); err != nil {
//	    return err
//	}
//	fmt.Printf("spent $%.4f over %d calls\n", tracker.TotalCostUSD(), tracker.Usage().Calls)
type Tracker struct {
	resolver *pricing.Resolver
	cache    cache.Cache
	metrics  *metrics.TrackerMetrics

	mu         sync.Mutex
	usage      Usage
	byProvider map[string]Usage
	cacheStats CacheStats
}

// Config contains construction options for a Tracker.
type Config struct {
	// Cache selects the response cache backend: "memory", "disk", or
	// "sqlite". Empty disables caching.
	Cache string

	// CachePath is the filesystem location for durable cache backends:
	// the cache directory for "disk", the database file for "sqlite".
	// Empty uses a default under the system temp directory.
	CachePath string

	// Metrics receives usage and cache counters when non-nil.
	Metrics *metrics.TrackerMetrics
}

// NewTracker creates a tracker backed by the given pricing resolver.
//
// The resolver is shared, not owned: several trackers may resolve prices
// through the same resolver. An unknown cache backend name fails fast with
// cache.BackendError.
func NewTracker(resolver *pricing.Resolver, cfg Config) (*Tracker, error) {
	if resolver == nil {
		return nil, fmt.Errorf("pricing resolver is required")
	}

	t := &Tracker{
		resolver:   resolver,
		metrics:    cfg.Metrics,
		byProvider: make(map[string]Usage),
	}

	if cfg.Cache != "" {
		c, err := cache.New(cfg.Cache, cfg.CachePath)
		if err != nil {
			return nil, err
		}
		t.cache = c
	}

	return t, nil
}

// NewTrackerFromConfig creates a tracker whose cache backend comes from
// loaded configuration. An empty configured backend disables caching, same
// as an empty Config.Cache.
func NewTrackerFromConfig(resolver *pricing.Resolver, cfg *config.CacheConfig, m *metrics.TrackerMetrics) (*Tracker, error) {
	c := Config{Metrics: m}
	if cfg != nil {
		c.Cache = cfg.Backend
		c.CachePath = cfg.Path
	}
	return NewTracker(resolver, c)
}

// Track records one completed API call.
//
// The cost is resolved first; if the model is unknown to every pricing tier
// the call returns pricing.ModelNotFoundError and no state changes at all.
// Otherwise a Usage record with Calls=1 is added to the global aggregate and
// to the named provider's subtotal in one atomic step, creating the provider
// entry on first use.
func (t *Tracker) Track(model string, promptTokens, completionTokens int, provider string) error {
	cost, err := t.resolver.CalculateCost(model, promptTokens, completionTokens)
	if err != nil {
		return err
	}

	record := Usage{
		TotalTokens:      promptTokens + completionTokens,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalCostUSD:     cost,
		Calls:            1,
	}

	t.mu.Lock()
	t.usage.Add(record)
	sub := t.byProvider[provider]
	sub.Add(record)
	t.byProvider[provider] = sub
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.RecordUsage(provider, model, promptTokens, completionTokens, cost)
	}

	return nil
}

// RecordCacheHit records a served-from-cache response together with the
// tokens and cost the hit avoided. Billed totals are not touched.
func (t *Tracker) RecordCacheHit(savedTokens int, savedCost float64) {
	t.mu.Lock()
	t.cacheStats.Hits++
	t.cacheStats.SavedTokens += savedTokens
	t.cacheStats.SavedCostUSD += savedCost
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.RecordCacheHit(savedTokens, savedCost)
	}
}

// RecordCacheMiss records a cache miss.
func (t *Tracker) RecordCacheMiss() {
	t.mu.Lock()
	t.cacheStats.Misses++
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.RecordCacheMiss()
	}
}

// Usage returns a copy of the global aggregate, consistent at the instant of
// the read.
func (t *Tracker) Usage() Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage
}

// UsageByProvider returns an independent copy of the per-provider subtotals.
func (t *Tracker) UsageByProvider() map[string]Usage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]Usage, len(t.byProvider))
	for provider, u := range t.byProvider {
		out[provider] = u
	}
	return out
}

// CacheStats returns a copy of the cache hit/miss counters.
func (t *Tracker) CacheStats() CacheStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cacheStats
}

// TotalCostUSD returns the total billed cost in USD.
func (t *Tracker) TotalCostUSD() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage.TotalCostUSD
}

// Reset zeroes the global aggregate, clears the provider subtotals, and
// zeroes the cache counters as a single observable step. The tracker remains
// usable and its cache configuration (and contents) are unaffected.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.usage = Usage{}
	t.byProvider = make(map[string]Usage)
	t.cacheStats = CacheStats{}
}

// Cache returns the active response cache, or nil when caching is disabled.
// Provider wrappers use it for request fingerprinting and lookups.
func (t *Tracker) Cache() cache.Cache {
	return t.cache
}

// Resolver returns the pricing resolver this tracker charges against.
func (t *Tracker) Resolver() *pricing.Resolver {
	return t.resolver
}
