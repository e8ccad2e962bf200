// Package budget enforces cost and token limits over tracked LLM usage.
//
// # Overview
//
// A budget scope watches a usage tracker and caps what accumulates while the
// scope is alive. Scopes measure deltas: the tracker's usage at scope
// creation is the baseline, and only usage past that baseline counts against
// the caps. Existing spend never bleeds into a new scope.
//
// Limits are optional per axis. A nil cap means unbounded; a zero cap is a
// real limit. Checks are strict comparisons, so usage exactly at the cap
// still passes.
//
// # Usage
//
// The common path is Run, which scopes a function call:
//
//	err := budget.Run(ctx, tracker, budget.Limits{
//	    MaxCostUSD: budget.Cost(1.00),
//	    MaxTokens:  budget.Tokens(50000),
//	}, func(ctx context.Context) error {
//	    // tracked calls in here count against the caps
//	    return doWork(ctx)
//	})
//
// Wrap builds the same thing as a reusable function, and NewScope exposes
// the scope directly for callers that want manual control:
//
//	scope := budget.NewScope(tracker, limits)
//	ctx = budget.NewContext(ctx, scope)
//	...
//	if err := scope.CheckLimits(); err != nil {
//	    // over a cap
//	}
//
// # Context Propagation
//
// Scopes travel on the context. NewContext installs a scope, FromContext
// recovers the innermost one, and Check is the one-line enforcement call
// used after tracked operations. Nesting works by deriving contexts: the
// inner scope shadows the outer one until its context unwinds.
//
// # Errors
//
// Breaches surface as BudgetExceededError or TokenLimitError, which carry
// the observed and permitted amounts and match ErrBudgetExceeded and
// ErrTokenLimit with errors.Is. When both caps are breached at once, the
// cost cap wins.
package budget
