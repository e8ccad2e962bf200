package budget

import (
	"sync"

	"mercator-hq/abacus/pkg/telemetry/metrics"
	"mercator-hq/abacus/pkg/usage"
)

// Limits is a set of caps for one budget scope. Nil fields are unbounded; a
// zero value is a real cap that rejects any positive usage.
type Limits struct {
	// MaxCostUSD caps the cost accumulated within the scope, in USD.
	MaxCostUSD *float64

	// MaxTokens caps the total tokens accumulated within the scope.
	MaxTokens *int
}

// Cost is a convenience for building a Limits cost cap in place.
func Cost(v float64) *float64 {
	return &v
}

// Tokens is a convenience for building a Limits token cap in place.
func Tokens(n int) *int {
	return &n
}

// Scope enforces limits over the usage a tracker accumulates while the scope
// is alive.
//
// A scope does not own usage; it watches a tracker. At construction it
// captures the tracker's usage as a baseline, and every accessor reports the
// delta between the tracker's current usage and that baseline. Calls tracked
// before the scope existed therefore never count against its limits, and
// nested scopes over one tracker each see only their own window.
//
// # Thread Safety
//
// A Scope is safe for concurrent use. The baseline is immutable after
// construction; reads go through the tracker's own synchronization.
type Scope struct {
	tracker  *usage.Tracker
	limits   Limits
	baseline usage.Usage

	mu      sync.RWMutex
	metrics *metrics.BudgetMetrics
}

// NewScope creates a scope over tracker with the given limits, capturing the
// tracker's current usage as the baseline. The tracker must be non-nil.
func NewScope(tracker *usage.Tracker, limits Limits) *Scope {
	return &Scope{
		tracker:  tracker,
		limits:   limits,
		baseline: tracker.Usage(),
	}
}

// SetMetrics attaches budget metrics. Pass nil to detach.
func (s *Scope) SetMetrics(m *metrics.BudgetMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = m

	if m != nil {
		m.RecordScope()
	}
}

// Limits returns the scope's caps.
func (s *Scope) Limits() Limits {
	return s.limits
}

// Tracker returns the tracker this scope watches.
func (s *Scope) Tracker() *usage.Tracker {
	return s.tracker
}

// CurrentUsage returns the usage accumulated since the scope was created.
// Each call reads the tracker fresh; the result is a snapshot, not a live
// view.
func (s *Scope) CurrentUsage() usage.Usage {
	return s.tracker.Usage().Sub(s.baseline)
}

// RemainingBudget returns the unspent portion of the cost cap, clamped at
// zero. The second return is false when the scope has no cost cap.
func (s *Scope) RemainingBudget() (float64, bool) {
	if s.limits.MaxCostUSD == nil {
		return 0, false
	}

	remaining := *s.limits.MaxCostUSD - s.CurrentUsage().TotalCostUSD
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// RemainingTokens returns the unspent portion of the token cap, clamped at
// zero. The second return is false when the scope has no token cap.
func (s *Scope) RemainingTokens() (int, bool) {
	if s.limits.MaxTokens == nil {
		return 0, false
	}

	remaining := *s.limits.MaxTokens - s.CurrentUsage().TotalTokens
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// CheckLimits compares the scope's usage delta against its caps.
//
// The cost cap is checked before the token cap, so a call that breaches both
// reports BudgetExceededError. Caps are strict: usage exactly at the cap
// passes, one unit past it fails. A scope with no caps always passes.
func (s *Scope) CheckLimits() error {
	current := s.CurrentUsage()

	if s.limits.MaxCostUSD != nil && current.TotalCostUSD > *s.limits.MaxCostUSD {
		s.recordCheck(metrics.CheckResultCostExceeded)
		return &BudgetExceededError{
			CurrentCostUSD: current.TotalCostUSD,
			MaxCostUSD:     *s.limits.MaxCostUSD,
		}
	}

	if s.limits.MaxTokens != nil && current.TotalTokens > *s.limits.MaxTokens {
		s.recordCheck(metrics.CheckResultTokensExceeded)
		return &TokenLimitError{
			CurrentTokens: current.TotalTokens,
			MaxTokens:     *s.limits.MaxTokens,
		}
	}

	s.recordCheck(metrics.CheckResultOK)
	return nil
}

func (s *Scope) recordCheck(result string) {
	s.mu.RLock()
	m := s.metrics
	s.mu.RUnlock()

	if m != nil {
		m.RecordCheck(result)
	}
}
