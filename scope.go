package csar

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Scope is a node in the tree of execution-context scopes. Each node holds
// an optional parent reference (nil at a root) and an optional lookup view
// of locally registered concerns. The name and ID are diagnostic only.
//
// A scope's own lookups never walk the parent chain; that is the resolver's
// job (FindConcern, ResolveConcern). A scope built without a lookup view
// still links the chain and is simply skipped during resolution.
type Scope struct {
	parent    *Scope
	name      string
	id        string
	concerned Concerned
}

func newScope(parent *Scope, name string, concerned Concerned) *Scope {
	return &Scope{
		parent:    parent,
		name:      name,
		id:        uuid.NewString(),
		concerned: concerned,
	}
}

// frozenConcerns is the read-only lookup view of scopes seeded at
// construction time.
type frozenConcerns map[reflect.Type]Concern

func (m frozenConcerns) FindConcern(concernType reflect.Type) (Concern, bool) {
	concern, ok := m[concernType]
	return concern, ok
}

// NewScope creates an effectively frozen scope: the supplied concerns are
// captured at construction under their own concern types and the scope
// exposes no mutation surface afterward. When concerns share a key, the
// later one wins. Nil concerns are ignored. A nil parent makes this a root.
func NewScope(parent *Scope, name string, concerns ...Concern) *Scope {
	seeded := make(frozenConcerns, len(concerns))
	for _, concern := range concerns {
		if concern == nil {
			continue
		}
		seeded[concern.ConcernType()] = concern
	}
	return newScope(parent, name, seeded)
}

// NewRegistryScope creates a mutable scope backed by its own Registry,
// seeded with the supplied concerns. The registry remains reachable through
// Registry for later registration and removal.
func NewRegistryScope(parent *Scope, name string, concerns ...Concern) *Scope {
	registry := NewRegistry()
	for _, concern := range concerns {
		if concern == nil {
			continue
		}
		_, _ = registry.RegisterConcern(concern)
	}
	return newScope(parent, name, registry)
}

// NewDecoratedScope creates a scope whose lookups delegate to an arbitrary
// caller-supplied view. A nil view yields a pass-through node: it links the
// chain but never answers lookups.
func NewDecoratedScope(parent *Scope, name string, concerned Concerned) *Scope {
	return newScope(parent, name, concerned)
}

// FindConcern looks up the concern in this scope only.
func (s *Scope) FindConcern(concernType reflect.Type) (Concern, bool) {
	if s == nil || s.concerned == nil || concernType == nil {
		return nil, false
	}
	return s.concerned.FindConcern(concernType)
}

// Registry returns the scope's own mutable registry, or nil for scopes built
// frozen or decorated.
func (s *Scope) Registry() *Registry {
	if s == nil {
		return nil
	}
	registry, _ := s.concerned.(*Registry)
	return registry
}

// Parent returns the enclosing scope, nil at a root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Name returns the diagnostic name given at construction.
func (s *Scope) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// ID returns the scope's unique diagnostic identifier.
func (s *Scope) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

func (s *Scope) String() string {
	if s == nil {
		return "<nil scope>"
	}
	if s.name == "" {
		return s.id
	}
	return fmt.Sprintf("%s (%s)", s.name, s.id)
}
