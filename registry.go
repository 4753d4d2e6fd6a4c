package csar

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry maps classification keys to concern instances, holding at most
// one instance per key. It backs both the process-wide defaults and mutable
// scopes, and may be used standalone. All methods are safe for concurrent
// use; each call is individually atomic, but no cross-call transaction is
// provided, so a register racing a find may change what a later find sees.
type Registry struct {
	mu       sync.RWMutex
	concerns map[reflect.Type]Concern
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{concerns: make(map[reflect.Type]Concern)}
}

// RegisterConcern associates the concern with its own concern type,
// overwriting any existing registration for that key. It returns the
// previously registered concern, nil when there was none.
func (r *Registry) RegisterConcern(concern Concern) (Concern, error) {
	if concern == nil {
		return nil, ErrNilConcern
	}
	return r.RegisterConcernAs(concern.ConcernType(), concern)
}

// RegisterConcernAs associates the concern with an explicit classification
// key. The concern's dynamic type must be assignable to the key type.
func (r *Registry) RegisterConcernAs(concernType reflect.Type, concern Concern) (Concern, error) {
	if concern == nil {
		return nil, ErrNilConcern
	}
	if concernType == nil {
		return nil, ErrNilConcernType
	}
	if !reflect.TypeOf(concern).AssignableTo(concernType) {
		return nil, fmt.Errorf("%w: %T is not assignable to %s", ErrConcernTypeMismatch, concern, concernType)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := r.concerns[concernType]
	r.concerns[concernType] = concern
	return previous, nil
}

// RegisterConcerns registers each concern under its own concern type, in
// order. A later concern overwrites an earlier one sharing a key. The first
// invalid concern aborts the batch.
func (r *Registry) RegisterConcerns(concerns ...Concern) error {
	for _, concern := range concerns {
		if _, err := r.RegisterConcern(concern); err != nil {
			return err
		}
	}
	return nil
}

// FindConcern returns the concern registered under the given key, if any.
func (r *Registry) FindConcern(concernType reflect.Type) (Concern, bool) {
	r.mu.RLock()
	concern, ok := r.concerns[concernType]
	r.mu.RUnlock()
	return concern, ok
}

// UnregisterConcern removes the registration for the given key, returning
// the removed concern. Removing an absent key is a no-op reporting false.
func (r *Registry) UnregisterConcern(concernType reflect.Type) (Concern, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	concern, ok := r.concerns[concernType]
	if ok {
		delete(r.concerns, concernType)
	}
	return concern, ok
}

// Len reports the number of registered concerns.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.concerns)
}
