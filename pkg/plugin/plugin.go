// Package plugin lets host applications extend the verification
// engine with packs of custom condition checks, registered into
// a rule engine at startup.
package plugin

import (
	"fmt"
	"sync"

	"digital.vasic.exercises/pkg/rule"
)

// Plugin defines the interface for a check pack.
type Plugin interface {
	// Name returns the plugin's unique name.
	Name() string
	// Version returns the plugin's version string.
	Version() string
	// Register adds the plugin's condition checks to the
	// given engine.
	Register(engine rule.Engine) error
}

// Registry manages plugin registration and application.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	applied map[string]bool
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
		applied: make(map[string]bool),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf(
			"plugin %q already registered", name,
		)
	}

	r.plugins[name] = p
	return nil
}

// Get retrieves a registered plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// ApplyAll registers the checks of every plugin that has not
// been applied yet into the given engine.
func (r *Registry) ApplyAll(engine rule.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, p := range r.plugins {
		if r.applied[name] {
			continue
		}
		if err := p.Register(engine); err != nil {
			return fmt.Errorf(
				"apply plugin %q: %w", name, err,
			)
		}
		r.applied[name] = true
	}
	return nil
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// CheckPack is a convenience Plugin implementation built from a
// map of condition type to check function.
type CheckPack struct {
	// PackName is the plugin name.
	PackName string
	// PackVersion is the plugin version.
	PackVersion string
	// Checks maps condition types to check functions.
	Checks map[string]rule.CheckFunc
}

// Name returns the pack name.
func (p *CheckPack) Name() string { return p.PackName }

// Version returns the pack version.
func (p *CheckPack) Version() string { return p.PackVersion }

// Register adds every check in the pack to the engine.
func (p *CheckPack) Register(engine rule.Engine) error {
	for condType, check := range p.Checks {
		if err := engine.Register(condType, check); err != nil {
			return err
		}
	}
	return nil
}
