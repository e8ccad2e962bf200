// Package metrics provides Prometheus metrics collection for Abacus.
//
// # Overview
//
// The metrics package implements Prometheus metrics for monitoring usage
// accounting, pricing resolution, and budget enforcement. Metrics are
// optional everywhere: components accept a nil metrics handle and skip
// recording when none is attached.
//
// # Metrics Categories
//
//   - Tracker Metrics: Calls, tokens, cost, and cache outcomes
//   - Pricing Metrics: Feed refresh attempts and per-tier model counts
//   - Budget Metrics: Limit checks by result and scopes opened
//
// # Usage
//
//	registry := prometheus.NewRegistry()
//
//	trackerMetrics := metrics.NewTrackerMetrics(&cfg.Metrics, registry)
//	pricingMetrics := metrics.NewPricingMetrics(&cfg.Metrics, registry)
//
//	tracker, err := usage.NewTracker(resolver, usage.Config{
//	    Metrics: trackerMetrics,
//	})
//	resolver.SetMetrics(pricingMetrics)
//
// # Naming
//
// Metric names are prefixed with the configured namespace and subsystem
// (default namespace "abacus", no subsystem):
//
//	# HELP abacus_usage_cost_total Total cost in USD by provider and model
//	# TYPE abacus_usage_cost_total counter
//	abacus_usage_cost_total{provider="openai",model="gpt-4o"} 1.25
package metrics
