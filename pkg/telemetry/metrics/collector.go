package metrics

import (
	"mercator-hq/abacus/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles all Abacus metric groups behind one registry and provides
// a unified construction path plus the scrape handler.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Tracker metrics
	trackerMetrics *TrackerMetrics

	// Pricing metrics
	pricingMetrics *PricingMetrics

	// Budget metrics
	budgetMetrics *BudgetMetrics
}

// NewCollector creates a metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "abacus",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = "abacus"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	// Initialize metric subsystems
	c.trackerMetrics = NewTrackerMetrics(cfg, registry)
	c.pricingMetrics = NewPricingMetrics(cfg, registry)
	c.budgetMetrics = NewBudgetMetrics(cfg, registry)

	return c
}

// Tracker returns the tracker metric group.
func (c *Collector) Tracker() *TrackerMetrics {
	return c.trackerMetrics
}

// Pricing returns the pricing metric group.
func (c *Collector) Pricing() *PricingMetrics {
	return c.pricingMetrics
}

// Budget returns the budget metric group.
func (c *Collector) Budget() *BudgetMetrics {
	return c.budgetMetrics
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
