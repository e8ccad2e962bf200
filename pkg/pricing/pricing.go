package pricing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mercator-hq/abacus/pkg/telemetry/metrics"
)

// DefaultProvider is the provider tag assigned to registered models that do
// not name one.
const DefaultProvider = "custom"

// ModelPrice is the price of one model: USD per 1000 input tokens, USD per
// 1000 output tokens, and the provider the model belongs to.
type ModelPrice struct {
	// InputPer1K is the cost per 1000 prompt/input tokens in USD.
	InputPer1K float64 `json:"input_per_1k" yaml:"input_per_1k"`

	// OutputPer1K is the cost per 1000 completion/output tokens in USD.
	OutputPer1K float64 `json:"output_per_1k" yaml:"output_per_1k"`

	// Provider is the provider tag (e.g. "openai", "anthropic").
	Provider string `json:"provider" yaml:"provider"`
}

// Resolver resolves model names to prices through three independent tiers.
//
// Lookup priority is fixed: user-registered entries win over remotely
// refreshed ones, which win over the built-in fallback table. The tiers are
// separate maps with defined lifecycles: the registered tier changes one
// entry at a time via RegisterModel, the refreshed tier is only ever replaced
// wholesale by a successful Refresh, and the fallback tier is seeded at
// construction and never changes.
//
// # Thread Safety
//
// A Resolver is safe for concurrent use. Reads take a shared lock; Refresh
// swaps the refreshed tier under the exclusive lock, so readers observe the
// old table or the new one, never a mix.
type Resolver struct {
	mu         sync.RWMutex
	registered map[string]ModelPrice
	refreshed  map[string]ModelPrice
	fallback   map[string]ModelPrice

	metrics *metrics.PricingMetrics
	logger  *slog.Logger
}

// NewResolver creates a resolver seeded with the built-in fallback table.
func NewResolver() *Resolver {
	return &Resolver{
		registered: make(map[string]ModelPrice),
		refreshed:  make(map[string]ModelPrice),
		fallback:   fallbackTable(),
		logger:     slog.Default().With("component", "pricing"),
	}
}

// SetMetrics attaches pricing metrics. Pass nil to detach.
func (r *Resolver) SetMetrics(m *metrics.PricingMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// GetPrice resolves a model name to its price.
//
// Tiers are consulted in priority order: registered, refreshed, fallback.
// A model absent from all three returns ModelNotFoundError.
func (r *Resolver) GetPrice(model string) (ModelPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if price, ok := r.registered[model]; ok {
		return price, nil
	}
	if price, ok := r.refreshed[model]; ok {
		return price, nil
	}
	if price, ok := r.fallback[model]; ok {
		return price, nil
	}

	return ModelPrice{}, &ModelNotFoundError{Model: model}
}

// RegisterModel inserts or overwrites a model in the registered tier.
//
// Registered entries always win future lookups for that model name,
// regardless of what the refreshed or fallback tiers contain. An empty
// provider defaults to DefaultProvider. Each registration is individually
// visible; no atomicity is promised across multiple calls.
func (r *Resolver) RegisterModel(model string, inputPer1K, outputPer1K float64, provider string) {
	if provider == "" {
		provider = DefaultProvider
	}

	r.mu.Lock()
	r.registered[model] = ModelPrice{
		InputPer1K:  inputPer1K,
		OutputPer1K: outputPer1K,
		Provider:    provider,
	}
	count := len(r.registered)
	m := r.metrics
	r.mu.Unlock()

	if m != nil {
		m.SetModelCount("registered", count)
	}
}

// ListModels returns the merged view of all three tiers.
//
// Higher-priority tiers overwrite lower ones on key collision, matching
// GetPrice resolution. A non-empty provider filters the merged view by the
// resolved entry's Provider field.
func (r *Resolver) ListModels(provider string) map[string]ModelPrice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merged := make(map[string]ModelPrice, len(r.fallback)+len(r.refreshed)+len(r.registered))
	for model, price := range r.fallback {
		merged[model] = price
	}
	for model, price := range r.refreshed {
		merged[model] = price
	}
	for model, price := range r.registered {
		merged[model] = price
	}

	if provider == "" {
		return merged
	}

	filtered := make(map[string]ModelPrice)
	for model, price := range merged {
		if price.Provider == provider {
			filtered[model] = price
		}
	}
	return filtered
}

// CalculateCost computes the USD cost of a call:
// (inputTokens/1000)*InputPer1K + (outputTokens/1000)*OutputPer1K.
// A failed price lookup propagates ModelNotFoundError.
func (r *Resolver) CalculateCost(model string, inputTokens, outputTokens int) (float64, error) {
	price, err := r.GetPrice(model)
	if err != nil {
		return 0, err
	}

	return tokenCost(inputTokens, price.InputPer1K) + tokenCost(outputTokens, price.OutputPer1K), nil
}

// Refresh fetches the remote pricing feed and, on success, atomically
// replaces the entire refreshed tier. It reports success via the returned
// boolean and never fails the caller: any fetch, timeout, or parse problem
// leaves every tier untouched, logs a warning, and returns false, so the
// resolver stays usable offline with its existing tables.
//
// An empty url uses DefaultFeedURL; a zero timeout uses DefaultFeedTimeout.
func (r *Resolver) Refresh(ctx context.Context, url string, timeout time.Duration) bool {
	if url == "" {
		url = DefaultFeedURL
	}
	if timeout <= 0 {
		timeout = DefaultFeedTimeout
	}

	table, err := fetchFeed(ctx, url, timeout)
	if err != nil {
		r.logger.Warn("pricing refresh failed",
			"url", url,
			"error", err,
		)
		r.recordRefresh(false, 0)
		return false
	}

	r.mu.Lock()
	r.refreshed = table
	r.mu.Unlock()

	r.logger.Info("pricing refreshed",
		"url", url,
		"models", len(table),
	)
	r.recordRefresh(true, len(table))
	return true
}

// TierCounts reports how many models each tier holds.
type TierCounts struct {
	Registered int
	Refreshed  int
	Fallback   int
}

// Counts returns per-tier model counts. The merged view can be smaller than
// the sum when tiers price the same model.
func (r *Resolver) Counts() TierCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return TierCounts{
		Registered: len(r.registered),
		Refreshed:  len(r.refreshed),
		Fallback:   len(r.fallback),
	}
}

// ClearRegistered empties the registered tier. Lookups for previously
// registered models fall back to the next tier.
func (r *Resolver) ClearRegistered() {
	r.mu.Lock()
	r.registered = make(map[string]ModelPrice)
	r.mu.Unlock()
}

// ClearRefreshed empties the refreshed tier.
func (r *Resolver) ClearRefreshed() {
	r.mu.Lock()
	r.refreshed = make(map[string]ModelPrice)
	r.mu.Unlock()
}

func (r *Resolver) recordRefresh(ok bool, models int) {
	r.mu.RLock()
	m := r.metrics
	r.mu.RUnlock()

	if m == nil {
		return
	}
	m.RecordRefresh(ok)
	if ok {
		m.SetModelCount("refreshed", models)
	}
}

// tokenCost converts a token count and a per-1K rate into USD.
func tokenCost(tokens int, costPer1K float64) float64 {
	if tokens <= 0 {
		return 0.0
	}
	return float64(tokens) / 1000.0 * costPer1K
}
