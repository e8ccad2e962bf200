package health

import (
	"context"
	"fmt"

	"mercator-hq/abacus/pkg/pricing"
)

// Standard component names used by the serve command's registrations.
const (
	CheckPricing   = "pricing"
	CheckScheduler = "scheduler"
	CheckWatcher   = "overrides_watcher"
)

// PricingCheck reports unhealthy when the resolver cannot price anything.
// An empty merged view means every lookup will fail, which usually points
// at a cleared fallback table or a badly scoped test resolver.
func PricingCheck(resolver *pricing.Resolver) CheckFunc {
	return func(ctx context.Context) error {
		if resolver == nil {
			return fmt.Errorf("pricing resolver not configured")
		}
		if len(resolver.ListModels("")) == 0 {
			return fmt.Errorf("no models in any pricing tier")
		}
		return nil
	}
}

// SchedulerCheck reports unhealthy when a configured refresh scheduler has
// stopped. A nil scheduler (refresh disabled) is healthy.
func SchedulerCheck(s *pricing.Scheduler) CheckFunc {
	return func(ctx context.Context) error {
		if s == nil {
			return nil
		}
		if !s.IsRunning() {
			return fmt.Errorf("pricing refresh scheduler is not running")
		}
		return nil
	}
}

// WatcherCheck reports unhealthy when a configured overrides watcher has
// stopped. A nil watcher (no overrides file) is healthy.
func WatcherCheck(w *pricing.Watcher) CheckFunc {
	return func(ctx context.Context) error {
		if w == nil {
			return nil
		}
		if !w.IsRunning() {
			return fmt.Errorf("pricing overrides watcher is not running")
		}
		return nil
	}
}
