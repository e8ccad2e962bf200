package metrics

import (
	"mercator-hq/abacus/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics tracks pricing resolution metrics.
//
// Metrics:
//   - abacus_pricing_refresh_total: Feed refresh attempts by status
//   - abacus_pricing_models: Known models by tier
type PricingMetrics struct {
	// Refresh attempt counter by outcome
	refreshTotal *prometheus.CounterVec

	// Current model counts per tier (registered/refreshed)
	models *prometheus.GaugeVec
}

// NewPricingMetrics creates and registers pricing metrics with the provided registry.
func NewPricingMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *PricingMetrics {
	pm := &PricingMetrics{
		refreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "pricing_refresh_total",
				Help:      "Total pricing feed refresh attempts by status",
			},
			[]string{"status"},
		),

		models: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "pricing_models",
				Help:      "Number of priced models by tier",
			},
			[]string{"tier"},
		),
	}

	// Register all metrics
	registry.MustRegister(
		pm.refreshTotal,
		pm.models,
	)

	return pm
}

// RecordRefresh records one pricing feed refresh attempt.
func (pm *PricingMetrics) RecordRefresh(ok bool) {
	status := "success"
	if !ok {
		status = "failure"
	}
	pm.refreshTotal.WithLabelValues(status).Inc()
}

// SetModelCount updates the model count gauge for a tier
// (e.g. "registered", "refreshed").
func (pm *PricingMetrics) SetModelCount(tier string, count int) {
	pm.models.WithLabelValues(tier).Set(float64(count))
}
