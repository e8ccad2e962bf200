package budget

import "context"

// scopeKey is the context key for the active budget scope.
type scopeKey struct{}

// NewContext returns a context carrying scope. Components that honor budgets
// recover it with FromContext; deriving a context from an outer scope's
// context shadows the outer scope for the new context's lifetime.
func NewContext(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// FromContext returns the innermost budget scope carried by ctx, if any.
func FromContext(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	return scope, ok
}

// Check runs CheckLimits against the innermost scope in ctx. Contexts without
// a scope pass.
func Check(ctx context.Context) error {
	scope, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return scope.CheckLimits()
}
