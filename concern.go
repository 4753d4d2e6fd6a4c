package csar

import "reflect"

// Concern is a pluggable cross-cutting capability (logging, localization,
// configuration) that can be registered for later resolution. Its concern
// type is the classification key it registers and resolves under. A concern
// meant to be resolved through a shared contract returns that interface's
// type; otherwise it returns its own type. TypeOf produces either kind of
// key.
type Concern interface {
	// ConcernType returns the classification key for this concern.
	ConcernType() reflect.Type
}

// TypeOf returns the classification key for C. It works for interface and
// concrete types alike:
//
//	csar.TypeOf[logging.Concern]() // key of a shared contract
//	csar.TypeOf[*env.Environment]() // key of a concrete concern
func TypeOf[C Concern]() reflect.Type {
	return reflect.TypeOf((*C)(nil)).Elem()
}

// Concerned is the lookup capability shared by registries and scopes.
// Implementations answer for their own registrations only; walking enclosing
// scopes is the resolver's job.
type Concerned interface {
	// FindConcern returns the concern registered under the given key, if any.
	FindConcern(concernType reflect.Type) (Concern, bool)
}
