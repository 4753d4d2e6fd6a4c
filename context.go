package csar

import "context"

// scopeContextKey is the single well-known context slot carrying the current
// scope. Launch helpers populate it; resolvers read it.
type scopeContextKey struct{}

// ContextWithScope returns a context carrying the given scope as the current
// scope for resolution.
func ContextWithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

// ScopeFromContext returns the scope carried by ctx, if any.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(*Scope)
	return scope, ok && scope != nil
}

// ConcernFromContext resolves the nearest concern of type C starting from
// the scope carried by ctx. Without a scope, only the process-wide defaults
// are consulted.
func ConcernFromContext[C Concern](ctx context.Context) (C, error) {
	scope, _ := ScopeFromContext(ctx)
	return ConcernOf[C](scope)
}

// FindConcernFromContext is the optional-returning variant of
// ConcernFromContext.
func FindConcernFromContext[C Concern](ctx context.Context) (C, bool) {
	scope, _ := ScopeFromContext(ctx)
	return FindConcernOf[C](scope)
}
