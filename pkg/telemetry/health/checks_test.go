package health

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/abacus/pkg/pricing"
)

// TestPricingCheck tests the pricing resolver component check.
func TestPricingCheck(t *testing.T) {
	t.Run("nil resolver is unhealthy", func(t *testing.T) {
		check := PricingCheck(nil)
		if err := check(context.Background()); err == nil {
			t.Error("expected error for nil resolver")
		}
	})

	t.Run("seeded resolver is healthy", func(t *testing.T) {
		resolver := pricing.NewResolver()
		check := PricingCheck(resolver)
		if err := check(context.Background()); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

// TestSchedulerCheck tests the refresh scheduler component check.
func TestSchedulerCheck(t *testing.T) {
	t.Run("nil scheduler is healthy", func(t *testing.T) {
		check := SchedulerCheck(nil)
		if err := check(context.Background()); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("stopped scheduler is unhealthy", func(t *testing.T) {
		resolver := pricing.NewResolver()
		scheduler := pricing.NewScheduler(resolver, pricing.SchedulerConfig{
			Schedule: "@hourly",
		})

		check := SchedulerCheck(scheduler)
		if err := check(context.Background()); err == nil {
			t.Error("expected error for scheduler that never started")
		}
	})

	t.Run("running scheduler is healthy", func(t *testing.T) {
		resolver := pricing.NewResolver()
		scheduler := pricing.NewScheduler(resolver, pricing.SchedulerConfig{
			Schedule: "@hourly",
		})

		if err := scheduler.Start(context.Background()); err != nil {
			t.Fatalf("failed to start scheduler: %v", err)
		}
		defer scheduler.Stop()

		check := SchedulerCheck(scheduler)
		if err := check(context.Background()); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

// TestWatcherCheck tests the overrides watcher component check.
func TestWatcherCheck(t *testing.T) {
	t.Run("nil watcher is healthy", func(t *testing.T) {
		check := WatcherCheck(nil)
		if err := check(context.Background()); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("stopped watcher is unhealthy", func(t *testing.T) {
		resolver := pricing.NewResolver()
		watcher, err := pricing.NewWatcher(resolver, &pricing.WatcherConfig{
			Path:             filepath.Join(t.TempDir(), "overrides.yaml"),
			DebounceInterval: 10 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("failed to create watcher: %v", err)
		}

		check := WatcherCheck(watcher)
		if err := check(context.Background()); err == nil {
			t.Error("expected error for watcher that never started")
		}
	})
}
