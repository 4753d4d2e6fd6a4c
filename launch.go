package csar

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Unit is a joinable handle to a launched unit of work.
type Unit struct {
	id    string
	scope *Scope
	done  chan struct{}
	err   error
}

// Go launches body on its own goroutine inside a new frozen scope seeded
// with the supplied concerns. The new scope is a child of the scope carried
// by ctx (a root when ctx carries none) and is attached to the context the
// body receives, so resolution inside the body sees the bound concerns
// first. When supplied concerns share a classification key, the later one
// wins. The name is diagnostic only.
//
// Beyond joining through the returned handle, no cancellation or timeout
// behavior is added; the body observes ctx like any other goroutine.
func Go(ctx context.Context, name string, body func(context.Context) error, concerns ...Concern) *Unit {
	parent, _ := ScopeFromContext(ctx)
	scope := NewScope(parent, name, concerns...)
	unit := &Unit{
		id:    uuid.NewString(),
		scope: scope,
		done:  make(chan struct{}),
	}
	label := name
	if label == "" {
		label = unit.id
	}
	go func() {
		defer close(unit.done)
		defer func() {
			if v := recover(); v != nil {
				unit.err = &PanicError{Unit: label, Value: v, Stack: debug.Stack()}
			}
		}()
		unit.err = body(ContextWithScope(ctx, scope))
	}()
	return unit
}

// Wait blocks until the unit's body returns and reports its error. A panic
// inside the body surfaces as a *PanicError.
func (u *Unit) Wait() error {
	<-u.done
	return u.err
}

// Done is closed when the unit's body has returned.
func (u *Unit) Done() <-chan struct{} {
	return u.done
}

// Scope returns the scope the unit runs under.
func (u *Unit) Scope() *Scope {
	return u.scope
}

// ID returns the unit's unique diagnostic identifier.
func (u *Unit) ID() string {
	return u.id
}

// Group launches several concern-bound units and joins them together. It
// wraps an errgroup: the first failing unit cancels the context the
// remaining units observe, and Wait reports that first error. This package
// adds no cancellation behavior of its own beyond what errgroup provides.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

// NewGroup creates a group derived from ctx.
func NewGroup(ctx context.Context) *Group {
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: ctx}
}

// Go launches body inside a new frozen scope seeded with the supplied
// concerns, a child of the scope carried by the group's context.
func (g *Group) Go(name string, body func(context.Context) error, concerns ...Concern) {
	parent, _ := ScopeFromContext(g.ctx)
	scope := NewScope(parent, name, concerns...)
	ctx := ContextWithScope(g.ctx, scope)
	g.eg.Go(func() error {
		return body(ctx)
	})
}

// Wait blocks until every launched unit has returned and reports the first
// error, if any.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
