package csar

import (
	"fmt"
	"sync"
)

// Provider declares default concerns to install process-wide. Provider
// packages register themselves during init, so importing a provider package
// is what makes it discoverable:
//
//	import _ "github.com/globalmentor/csar/concern/logging/zerologx"
//
// The hosting process then calls Initialize once to seed the defaults.
type Provider interface {
	// Concerns returns the concerns this provider installs as process-wide
	// defaults.
	Concerns() ([]Concern, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() ([]Concern, error)

// Concerns implements Provider.
func (f ProviderFunc) Concerns() ([]Concern, error) {
	return f()
}

var (
	providerMu sync.Mutex
	providers  []Provider

	initOnce sync.Once
	initErr  error
)

// RegisterProvider adds a provider to the bootstrap list, normally from a
// provider package's init function. Providers registered after Initialize
// has run are never consulted. A nil provider is ignored.
func RegisterProvider(p Provider) {
	if p == nil {
		return
	}
	providerMu.Lock()
	providers = append(providers, p)
	providerMu.Unlock()
}

// Initialize seeds the process-wide defaults from every registered provider
// in registration order; a later provider's concern overwrites an earlier
// one sharing a classification key. It runs at most once: subsequent calls
// return the first run's result. The first provider failure aborts the run
// and is reported to the caller.
func Initialize() error {
	initOnce.Do(func() {
		providerMu.Lock()
		snapshot := make([]Provider, len(providers))
		copy(snapshot, providers)
		providerMu.Unlock()
		initErr = bootstrap(snapshot, defaultConcerns)
	})
	return initErr
}

// bootstrap drains the providers into the registry in order.
func bootstrap(providers []Provider, registry *Registry) error {
	for _, p := range providers {
		concerns, err := p.Concerns()
		if err != nil {
			return fmt.Errorf("csar: provider bootstrap: %w", err)
		}
		for _, concern := range concerns {
			if _, err := registry.RegisterConcern(concern); err != nil {
				return fmt.Errorf("csar: provider bootstrap: %w", err)
			}
		}
	}
	return nil
}
