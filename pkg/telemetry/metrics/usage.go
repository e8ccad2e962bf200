package metrics

import (
	"mercator-hq/abacus/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// TrackerMetrics tracks usage accounting metrics for LLM calls.
//
// Metrics:
//   - abacus_usage_cost_total: Total cost in USD by provider and model
//   - abacus_usage_tokens_total: Total tokens by provider, model, and type
//   - abacus_usage_calls_total: Total tracked calls by provider and model
//   - abacus_cache_hits_total: Total response cache hits
//   - abacus_cache_misses_total: Total response cache misses
//   - abacus_cache_saved_cost_total: Cost in USD avoided by cache hits
type TrackerMetrics struct {
	// Total cost counter (in USD)
	costTotal *prometheus.CounterVec

	// Token counter by type (prompt/completion)
	tokensTotal *prometheus.CounterVec

	// Tracked call counter
	callsTotal *prometheus.CounterVec

	// Cache outcome counters
	cacheHitsTotal   prometheus.Counter
	cacheMissesTotal prometheus.Counter

	// Cost and tokens avoided by serving cached responses
	cacheSavedCostTotal   prometheus.Counter
	cacheSavedTokensTotal prometheus.Counter
}

// NewTrackerMetrics creates and registers usage metrics with the provided registry.
func NewTrackerMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *TrackerMetrics {
	tm := &TrackerMetrics{
		costTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "usage_cost_total",
				Help:      "Total cost in USD by provider and model",
			},
			[]string{"provider", "model"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "usage_tokens_total",
				Help:      "Total tokens by provider, model, and token type",
			},
			[]string{"provider", "model", "type"},
		),

		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "usage_calls_total",
				Help:      "Total tracked LLM calls by provider and model",
			},
			[]string{"provider", "model"},
		),

		cacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_hits_total",
				Help:      "Total number of response cache hits",
			},
		),

		cacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_misses_total",
				Help:      "Total number of response cache misses",
			},
		),

		cacheSavedCostTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_saved_cost_total",
				Help:      "Total cost in USD avoided by cache hits",
			},
		),

		cacheSavedTokensTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_saved_tokens_total",
				Help:      "Total tokens avoided by cache hits",
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		tm.costTotal,
		tm.tokensTotal,
		tm.callsTotal,
		tm.cacheHitsTotal,
		tm.cacheMissesTotal,
		tm.cacheSavedCostTotal,
		tm.cacheSavedTokensTotal,
	)

	return tm
}

// RecordUsage records one tracked LLM call.
//
// Parameters:
//   - provider: provider tag (e.g. "openai")
//   - model: model name
//   - promptTokens: prompt token count
//   - completionTokens: completion token count
//   - costUSD: call cost in USD
func (tm *TrackerMetrics) RecordUsage(provider, model string, promptTokens, completionTokens int, costUSD float64) {
	tm.callsTotal.WithLabelValues(provider, model).Inc()

	if promptTokens > 0 {
		tm.tokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		tm.tokensTotal.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
	}
	if costUSD > 0 {
		tm.costTotal.WithLabelValues(provider, model).Add(costUSD)
	}
}

// RecordCacheHit records a response served from cache along with the tokens
// and cost the hit avoided.
func (tm *TrackerMetrics) RecordCacheHit(savedTokens int, savedCostUSD float64) {
	tm.cacheHitsTotal.Inc()
	if savedCostUSD > 0 {
		tm.cacheSavedCostTotal.Add(savedCostUSD)
	}
	if savedTokens > 0 {
		tm.cacheSavedTokensTotal.Add(float64(savedTokens))
	}
}

// RecordCacheMiss records a cache miss.
func (tm *TrackerMetrics) RecordCacheMiss() {
	tm.cacheMissesTotal.Inc()
}
