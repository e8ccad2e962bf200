package usage

import (
	"errors"
	"math"
	"sync"
	"testing"

	"mercator-hq/abacus/pkg/cache"
	"mercator-hq/abacus/pkg/config"
	"mercator-hq/abacus/pkg/pricing"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	resolver := pricing.NewResolver()
	// Round per-call costs so accumulated totals stay predictable.
	resolver.RegisterModel("test-model", 1.0, 2.0, "test")

	tracker, err := NewTracker(resolver, Config{})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return tracker
}

func costNear(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected cost %v, got %v", want, got)
	}
}

// ============================================================================
// Construction Tests
// ============================================================================

func TestNewTracker_RequiresResolver(t *testing.T) {
	_, err := NewTracker(nil, Config{})
	if err == nil {
		t.Fatal("expected error for nil resolver")
	}
}

func TestNewTracker_UnknownCacheBackend(t *testing.T) {
	_, err := NewTracker(pricing.NewResolver(), Config{Cache: "redis"})
	if err == nil {
		t.Fatal("expected error for unknown cache backend")
	}

	var backendErr *cache.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %T", err)
	}
	if backendErr.Backend != "redis" {
		t.Errorf("expected backend name in error, got %q", backendErr.Backend)
	}
}

func TestNewTracker_NoCacheByDefault(t *testing.T) {
	tracker := newTestTracker(t)

	if tracker.Cache() != nil {
		t.Error("expected nil cache when no backend configured")
	}
}

func TestNewTracker_MemoryCache(t *testing.T) {
	tracker, err := NewTracker(pricing.NewResolver(), Config{Cache: "memory"})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	if tracker.Cache() == nil {
		t.Error("expected cache to be configured")
	}
}

func TestNewTrackerFromConfig(t *testing.T) {
	tracker, err := NewTrackerFromConfig(pricing.NewResolver(), &config.CacheConfig{Backend: "memory"}, nil)
	if err != nil {
		t.Fatalf("NewTrackerFromConfig: %v", err)
	}
	if tracker.Cache() == nil {
		t.Error("expected cache from configured backend")
	}
}

func TestNewTrackerFromConfig_NilDisablesCache(t *testing.T) {
	tracker, err := NewTrackerFromConfig(pricing.NewResolver(), nil, nil)
	if err != nil {
		t.Fatalf("NewTrackerFromConfig: %v", err)
	}
	if tracker.Cache() != nil {
		t.Error("expected no cache from nil config")
	}
}

// ============================================================================
// Tracking Tests
// ============================================================================

func TestTracker_TrackAccumulates(t *testing.T) {
	tracker := newTestTracker(t)

	// 1.0/1K input, 2.0/1K output: 0.1 + 0.1 = 0.2 per call
	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if err := tracker.Track("test-model", 200, 100, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}

	u := tracker.Usage()
	if u.Calls != 2 {
		t.Errorf("expected 2 calls, got %d", u.Calls)
	}
	if u.PromptTokens != 300 {
		t.Errorf("expected 300 prompt tokens, got %d", u.PromptTokens)
	}
	if u.CompletionTokens != 150 {
		t.Errorf("expected 150 completion tokens, got %d", u.CompletionTokens)
	}
	if u.TotalTokens != u.PromptTokens+u.CompletionTokens {
		t.Errorf("total tokens %d != prompt %d + completion %d",
			u.TotalTokens, u.PromptTokens, u.CompletionTokens)
	}
	costNear(t, u.TotalCostUSD, 0.6)
	costNear(t, tracker.TotalCostUSD(), 0.6)
}

func TestTracker_TrackByProvider(t *testing.T) {
	tracker := newTestTracker(t)

	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	if err := tracker.Track("test-model", 100, 50, "anthropic"); err != nil {
		t.Fatalf("Track: %v", err)
	}

	byProvider := tracker.UsageByProvider()
	if len(byProvider) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(byProvider))
	}
	if byProvider["openai"].Calls != 2 {
		t.Errorf("expected 2 openai calls, got %d", byProvider["openai"].Calls)
	}
	if byProvider["anthropic"].Calls != 1 {
		t.Errorf("expected 1 anthropic call, got %d", byProvider["anthropic"].Calls)
	}

	// Subtotals sum to the global aggregate.
	var sum Usage
	for _, u := range byProvider {
		sum.Add(u)
	}
	if sum != tracker.Usage() {
		t.Errorf("provider subtotals %+v do not sum to aggregate %+v", sum, tracker.Usage())
	}
}

func TestTracker_TrackUnknownModelChangesNothing(t *testing.T) {
	tracker := newTestTracker(t)

	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	before := tracker.Usage()

	err := tracker.Track("no-such-model", 1000, 1000, "openai")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !errors.Is(err, pricing.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}

	// The failed call must not leave partial token counts behind.
	if tracker.Usage() != before {
		t.Errorf("usage changed after failed track: %+v != %+v", tracker.Usage(), before)
	}
	if len(tracker.UsageByProvider()) != 1 {
		t.Errorf("expected provider map unchanged, got %v", tracker.UsageByProvider())
	}
}

func TestTracker_FallbackModelPricing(t *testing.T) {
	tracker, err := NewTracker(pricing.NewResolver(), Config{})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	// gpt-4o comes from the built-in table: 0.0025/1K in, 0.010/1K out.
	if err := tracker.Track("gpt-4o", 1000, 500, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	costNear(t, tracker.TotalCostUSD(), 0.0025+0.005)
}

// ============================================================================
// Concurrency Tests
// ============================================================================

func TestTracker_ConcurrentTrack(t *testing.T) {
	tracker := newTestTracker(t)

	const goroutines = 10
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				if err := tracker.Track("test-model", 10, 5, "openai"); err != nil {
					t.Errorf("Track: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	u := tracker.Usage()
	if u.Calls != goroutines*callsPerGoroutine {
		t.Errorf("expected %d calls, got %d", goroutines*callsPerGoroutine, u.Calls)
	}
	if u.TotalTokens != goroutines*callsPerGoroutine*15 {
		t.Errorf("expected %d total tokens, got %d", goroutines*callsPerGoroutine*15, u.TotalTokens)
	}
	if math.Abs(u.TotalCostUSD-20.0) > 1e-6 {
		t.Errorf("expected total cost near 20.0, got %v", u.TotalCostUSD)
	}
}

func TestTracker_ConcurrentReadsDuringWrites(t *testing.T) {
	tracker := newTestTracker(t)

	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = tracker.Track("test-model", 10, 5, "openai")
		}
		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			u := tracker.Usage()
			// Snapshots are taken under the same lock as writes, so a
			// half-applied call can never be visible.
			if u.TotalTokens != u.Calls*15 {
				t.Errorf("torn snapshot: %d tokens for %d calls", u.TotalTokens, u.Calls)
				return
			}
			_ = tracker.UsageByProvider()
			_ = tracker.CacheStats()
		}
	}()

	wg.Wait()
}

// ============================================================================
// Cache Accounting Tests
// ============================================================================

func TestTracker_CacheHitDoesNotBill(t *testing.T) {
	tracker := newTestTracker(t)

	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	billed := tracker.Usage()

	tracker.RecordCacheHit(150, 0.2)
	tracker.RecordCacheHit(150, 0.2)
	tracker.RecordCacheMiss()

	stats := tracker.CacheStats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.SavedTokens != 300 {
		t.Errorf("expected 300 saved tokens, got %d", stats.SavedTokens)
	}
	costNear(t, stats.SavedCostUSD, 0.4)

	// Billed totals must be untouched by cache traffic.
	if tracker.Usage() != billed {
		t.Errorf("billed usage changed by cache accounting: %+v != %+v", tracker.Usage(), billed)
	}
}

// ============================================================================
// Snapshot and Reset Tests
// ============================================================================

func TestTracker_SnapshotsAreIndependent(t *testing.T) {
	tracker := newTestTracker(t)

	if err := tracker.Track("test-model", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}

	byProvider := tracker.UsageByProvider()
	mutated := byProvider["openai"]
	mutated.Calls = 999
	byProvider["openai"] = mutated
	byProvider["fake"] = Usage{Calls: 1}

	fresh := tracker.UsageByProvider()
	if fresh["openai"].Calls != 1 {
		t.Errorf("mutating a snapshot leaked into the tracker: %+v", fresh["openai"])
	}
	if _, ok := fresh["fake"]; ok {
		t.Error("inserting into a snapshot leaked into the tracker")
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker, err := NewTracker(pricing.NewResolver(), Config{Cache: "memory"})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	if err := tracker.Track("gpt-4o", 100, 50, "openai"); err != nil {
		t.Fatalf("Track: %v", err)
	}
	tracker.RecordCacheHit(150, 0.01)
	tracker.RecordCacheMiss()

	tracker.Reset()

	if u := tracker.Usage(); u != (Usage{}) {
		t.Errorf("expected zero usage after reset, got %+v", u)
	}
	if len(tracker.UsageByProvider()) != 0 {
		t.Errorf("expected empty provider map after reset, got %v", tracker.UsageByProvider())
	}
	if s := tracker.CacheStats(); s != (CacheStats{}) {
		t.Errorf("expected zero cache stats after reset, got %+v", s)
	}
	if tracker.Cache() == nil {
		t.Error("reset must not discard the cache backend")
	}

	// Still usable after reset.
	if err := tracker.Track("gpt-4o", 100, 50, "openai"); err != nil {
		t.Fatalf("Track after reset: %v", err)
	}
	if tracker.Usage().Calls != 1 {
		t.Errorf("expected 1 call after reset, got %d", tracker.Usage().Calls)
	}
}

// ============================================================================
// Usage Value Tests
// ============================================================================

func TestUsage_AddAndSub(t *testing.T) {
	a := Usage{TotalTokens: 150, PromptTokens: 100, CompletionTokens: 50, TotalCostUSD: 0.5, Calls: 2}
	b := Usage{TotalTokens: 30, PromptTokens: 20, CompletionTokens: 10, TotalCostUSD: 0.1, Calls: 1}

	sum := a
	sum.Add(b)
	if sum.TotalTokens != 180 || sum.Calls != 3 {
		t.Errorf("unexpected sum: %+v", sum)
	}

	delta := sum.Sub(a)
	if delta != b {
		t.Errorf("expected Sub to invert Add, got %+v", delta)
	}
}
