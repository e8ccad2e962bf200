package budget

import (
	"context"

	"mercator-hq/abacus/pkg/usage"
)

// Run executes fn inside a fresh budget scope over tracker.
//
// The scope is installed on the context passed to fn, so any component that
// calls Check (or FromContext) while fn runs enforces these limits. When fn
// returns nil, Run performs exactly one final limit check and returns its
// result; when fn returns an error, that error is returned as-is and no exit
// check runs, so a breach can never mask the failure that preceded it.
//
// Nested Run calls compose: the inner scope shadows the outer one for code
// running under the inner context, while both watch the same tracker.
//
// Example:
//
//	err := budget.Run(ctx, tracker, budget.Limits{
//	    MaxCostUSD: budget.Cost(1.00),
//	}, func(ctx context.Context) error {
//	    return pipeline(ctx)
//	})
//	if errors.Is(err, budget.ErrBudgetExceeded) {
//	    // over budget
//	}
func Run(ctx context.Context, tracker *usage.Tracker, limits Limits, fn func(ctx context.Context) error) error {
	scope := NewScope(tracker, limits)

	if err := fn(NewContext(ctx, scope)); err != nil {
		return err
	}

	return scope.CheckLimits()
}

// Wrap returns a function that runs fn inside a fresh budget scope on every
// invocation. It is the reusable form of Run for handlers and pipeline
// stages that are constructed once and called many times.
//
// Example:
//
//	handler := budget.Wrap(tracker, budget.Limits{
//	    MaxTokens: budget.Tokens(50000),
//	}, processRequest)
//
//	for _, req := range requests {
//	    if err := handler(ctx); err != nil {
//	        ...
//	    }
//	}
func Wrap(tracker *usage.Tracker, limits Limits, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return Run(ctx, tracker, limits, fn)
	}
}
