package metrics

import (
	"mercator-hq/abacus/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// BudgetMetrics tracks budget enforcement metrics.
//
// Metrics:
//   - abacus_budget_checks_total: Limit checks by result
//   - abacus_budget_scopes_total: Budget scopes opened
type BudgetMetrics struct {
	// Limit check counter by result
	checksTotal *prometheus.CounterVec

	// Scopes opened counter
	scopesTotal prometheus.Counter
}

// NewBudgetMetrics creates and registers budget metrics with the provided registry.
func NewBudgetMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *BudgetMetrics {
	bm := &BudgetMetrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "budget_checks_total",
				Help:      "Total budget limit checks by result",
			},
			[]string{"result"},
		),

		scopesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "budget_scopes_total",
				Help:      "Total budget scopes opened",
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		bm.checksTotal,
		bm.scopesTotal,
	)

	return bm
}

// Check results recorded by RecordCheck.
const (
	CheckResultOK             = "ok"
	CheckResultCostExceeded   = "cost_exceeded"
	CheckResultTokensExceeded = "tokens_exceeded"
)

// RecordCheck records one budget limit check and its result.
func (bm *BudgetMetrics) RecordCheck(result string) {
	bm.checksTotal.WithLabelValues(result).Inc()
}

// RecordScope records a budget scope being opened.
func (bm *BudgetMetrics) RecordScope() {
	bm.scopesTotal.Inc()
}
