// Package csar resolves cross-cutting concerns (logging, localization,
// configuration) to implementations registered globally or locally to a
// hierarchical execution scope.
//
// Ownership boundary:
// - classification of concerns by type key
//
// - per-scope and process-wide registries
//
// - nearest-scope resolution with global fallback
//
// - provider bootstrap of process-wide defaults
//
// Resolution order:
// - the requesting scope's own registrations
//
// - each ancestor scope toward the root, first hit wins
//
// - the process-wide defaults; otherwise ErrConcernNotFound.
//
// Scopes are explicit values, carried to goroutines through context: launch
// a unit of work with Go or Group.Go and the body's context resolves the
// bound concerns first. Csar does not own concern implementations; backends
// live under concern/ and install themselves as defaults through providers.
package csar
