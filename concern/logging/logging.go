// Package logging defines the contract all logging concerns register under.
// Backends (zerologx, zapx) return Type from ConcernType, so callers resolve
// logging without naming a backend; an application selects one by importing
// exactly one backend provider.
package logging

import (
	"context"

	"github.com/globalmentor/csar"
)

// Level is a log severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Concern is the classification interface shared by logging backends.
type Concern interface {
	csar.Concern
	// Logf writes a leveled, formatted message.
	Logf(level Level, format string, args ...any)
}

// Type is the classification key all logging concerns register under.
var Type = csar.TypeOf[Concern]()

// Of resolves the nearest logging concern for the given scope.
func Of(scope *csar.Scope) (Concern, error) {
	return csar.ConcernOf[Concern](scope)
}

// FromContext resolves the nearest logging concern carried by ctx.
func FromContext(ctx context.Context) (Concern, error) {
	return csar.ConcernFromContext[Concern](ctx)
}
