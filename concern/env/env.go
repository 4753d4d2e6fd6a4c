// Package env provides an environment concern: an immutable bag of string
// properties resolvable through csar, loadable from a TOML file.
package env

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"github.com/BurntSushi/toml"

	"github.com/globalmentor/csar"
)

// Environment is an immutable string-property concern. It registers under
// its own concrete type.
type Environment struct {
	values map[string]string
}

// New builds an Environment from the given properties. The map is copied so
// the environment stays immutable even if the caller mutates their
// reference.
func New(values map[string]string) *Environment {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return &Environment{values: copied}
}

// LoadFile reads a TOML file of flat `key = "value"` properties.
func LoadFile(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("env: read %s: %w", path, err)
	}
	values := map[string]string{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("env: parse %s: %w", path, err)
	}
	return &Environment{values: values}, nil
}

// ConcernType implements csar.Concern.
func (e *Environment) ConcernType() reflect.Type {
	return csar.TypeOf[*Environment]()
}

// Get returns the value for key, "" when absent.
func (e *Environment) Get(key string) string {
	return e.values[key]
}

// Lookup returns the value for key and whether it is defined.
func (e *Environment) Lookup(key string) (string, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Len reports the number of defined properties.
func (e *Environment) Len() int {
	return len(e.values)
}

// Of resolves the nearest Environment for the given scope.
func Of(scope *csar.Scope) (*Environment, error) {
	return csar.ConcernOf[*Environment](scope)
}

// FromContext resolves the nearest Environment carried by ctx.
func FromContext(ctx context.Context) (*Environment, error) {
	return csar.ConcernFromContext[*Environment](ctx)
}
