package csar

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrConcernNotFound indicates no local or default concern exists for a
	// requested classification key.
	ErrConcernNotFound = errors.New("csar: concern not found")
	// ErrNilConcern indicates a nil concern was passed where one is required.
	ErrNilConcern = errors.New("csar: nil concern")
	// ErrNilConcernType indicates a nil classification key.
	ErrNilConcernType = errors.New("csar: nil concern type")
	// ErrConcernTypeMismatch indicates a concern registered under an explicit
	// key it is not assignable to.
	ErrConcernTypeMismatch = errors.New("csar: concern type mismatch")
)

func notFoundError(concernType reflect.Type) error {
	return fmt.Errorf("%w: no local or default concern for type %s", ErrConcernNotFound, concernType)
}

// PanicError reports a panic recovered from a launched unit of work. The
// recovered value and the goroutine stack at the point of the panic are
// preserved for diagnostics.
type PanicError struct {
	Unit  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("csar: unit %s panicked: %v", e.Unit, e.Value)
}
