package csar

import (
	"fmt"
	"reflect"
)

// defaultConcerns is the process-wide fallback registry. It is created with
// the package, lives for the process, and stays mutable to any caller;
// registration is best-effort last-write-wins.
var defaultConcerns = NewRegistry()

// RegisterDefaultConcern registers the concern as the process-wide default
// for its concern type, returning any concern it replaced.
func RegisterDefaultConcern(concern Concern) (Concern, error) {
	return defaultConcerns.RegisterConcern(concern)
}

// RegisterDefaultConcernAs registers the concern as the process-wide default
// under an explicit classification key.
func RegisterDefaultConcernAs(concernType reflect.Type, concern Concern) (Concern, error) {
	return defaultConcerns.RegisterConcernAs(concernType, concern)
}

// RegisterDefaultConcerns registers each concern as a process-wide default
// under its own concern type; later concerns win for a shared key.
func RegisterDefaultConcerns(concerns ...Concern) error {
	return defaultConcerns.RegisterConcerns(concerns...)
}

// DefaultConcern returns the process-wide default for the given key, if any.
func DefaultConcern(concernType reflect.Type) (Concern, bool) {
	return defaultConcerns.FindConcern(concernType)
}

// UnregisterDefaultConcern removes the process-wide default for the given
// key, returning the removed concern.
func UnregisterDefaultConcern(concernType reflect.Type) (Concern, bool) {
	return defaultConcerns.UnregisterConcern(concernType)
}

// FindConcern resolves the concern nearest to the given scope: the scope's
// own registrations win, then each ancestor toward the root in order, then
// the process-wide defaults. Chain nodes without a lookup view are skipped.
// A nil scope consults only the defaults. No merging happens across levels;
// the first hit is the answer.
func FindConcern(scope *Scope, concernType reflect.Type) (Concern, bool) {
	if concernType == nil {
		return nil, false
	}
	for s := scope; s != nil; s = s.parent {
		if concern, ok := s.FindConcern(concernType); ok {
			return concern, true
		}
	}
	return defaultConcerns.FindConcern(concernType)
}

// ResolveConcern is the failing variant of FindConcern: when no local or
// default concern exists it returns an error wrapping ErrConcernNotFound
// that names the requested key.
func ResolveConcern(scope *Scope, concernType reflect.Type) (Concern, error) {
	if concernType == nil {
		return nil, ErrNilConcernType
	}
	if concern, ok := FindConcern(scope, concernType); ok {
		return concern, nil
	}
	return nil, notFoundError(concernType)
}

// ConcernOf resolves the nearest concern of type C for the given scope.
func ConcernOf[C Concern](scope *Scope) (C, error) {
	var zero C
	concern, err := ResolveConcern(scope, TypeOf[C]())
	if err != nil {
		return zero, err
	}
	typed, ok := concern.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %T registered for %s", ErrConcernTypeMismatch, concern, TypeOf[C]())
	}
	return typed, nil
}

// FindConcernOf is the optional-returning variant of ConcernOf.
func FindConcernOf[C Concern](scope *Scope) (C, bool) {
	concern, ok := FindConcern(scope, TypeOf[C]())
	if !ok {
		var zero C
		return zero, false
	}
	typed, ok := concern.(C)
	return typed, ok
}
