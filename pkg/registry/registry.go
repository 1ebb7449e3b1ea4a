// Package registry resolves exercise identifiers to runnable
// verification modules. It lazily loads modules, caches them,
// de-duplicates concurrent loads, falls back across legacy
// naming conventions, and degrades to a sentinel module when
// no verification is available.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/verify"
)

// Loader produces a verification module on demand. It is
// invoked at most once per cached entry; a returned error marks
// the exercise as not yet verifiable.
type Loader func() (exercise.VerificationModule, error)

// Stats holds registry observability counters. Authoring
// tooling uses them to confirm every exercise has a reachable
// verification module before publishing.
type Stats struct {
	// TotalRegistered is the number of registered loaders.
	TotalRegistered int `json:"total_registered"`

	// TotalLoaded is the cumulative number of successful
	// loads.
	TotalLoaded int `json:"total_loaded"`

	// CacheHits counts resolves served from the cache.
	CacheHits int `json:"cache_hits"`

	// CacheMisses counts resolves that had to load.
	CacheMisses int `json:"cache_misses"`
}

// Registry defines the interface for module resolution.
type Registry interface {
	// Resolve returns the verification module for an exercise.
	// It never returns nil: when no module can be loaded the
	// sentinel module is returned, so the presentation layer
	// degrades gracefully. The error is non-nil only for
	// caller-level misuse (an empty exercise id).
	Resolve(id exercise.ID) (exercise.VerificationModule, error)

	// RegisterLoader adds a lazy loader for an exercise.
	RegisterLoader(id exercise.ID, loader Loader) error

	// RegisterDefinition adds a loader backed by a declarative
	// definition.
	RegisterDefinition(def *exercise.Definition) error

	// Invalidate drops the cached module for an exercise so
	// the next Resolve reloads it. Used when exercise content
	// is edited during authoring.
	Invalidate(id exercise.ID)

	// Stats returns the registry counters.
	Stats() Stats

	// Count returns the number of registered loaders.
	Count() int
}

// DefaultRegistry is the standard Registry implementation. It
// is safe for concurrent use: resolves for different exercises
// never block one another, and concurrent resolves for the same
// uncached exercise coalesce into a single load.
type DefaultRegistry struct {
	mu      sync.RWMutex
	loaders map[exercise.ID]Loader
	cache   map[exercise.ID]exercise.VerificationModule
	stats   Stats

	group  singleflight.Group
	logger exercise.Logger
}

// NewRegistry creates a new, empty DefaultRegistry. Registries
// are explicit owned objects: construct one at application
// start and pass it wherever resolution is needed, or build
// fresh instances per test.
func NewRegistry(opts ...RegistryOption) *DefaultRegistry {
	r := &DefaultRegistry{
		loaders: make(map[exercise.ID]Loader),
		cache: make(
			map[exercise.ID]exercise.VerificationModule,
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegistryOption configures a DefaultRegistry.
type RegistryOption func(*DefaultRegistry)

// WithLogger sets the logger used by the registry.
func WithLogger(logger exercise.Logger) RegistryOption {
	return func(r *DefaultRegistry) {
		r.logger = logger
	}
}

// RegisterLoader adds a lazy loader for an exercise. Returns an
// error if the id is empty, the loader is nil, or a loader for
// the id is already registered.
func (r *DefaultRegistry) RegisterLoader(
	id exercise.ID,
	loader Loader,
) error {
	if id == "" {
		return fmt.Errorf("exercise id cannot be empty")
	}
	if loader == nil {
		return fmt.Errorf("loader cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loaders[id]; exists {
		return fmt.Errorf(
			"loader already registered: %s", id,
		)
	}

	r.loaders[id] = loader
	return nil
}

// RegisterDefinition adds a loader that builds the module from
// a declarative definition on first resolve.
func (r *DefaultRegistry) RegisterDefinition(
	def *exercise.Definition,
) error {
	if def == nil {
		return fmt.Errorf("definition cannot be nil")
	}

	return r.RegisterLoader(def.ID, func() (
		exercise.VerificationModule, error,
	) {
		return verify.FromDefinition(def), nil
	})
}

// Resolve returns the verification module for an exercise. On
// a cache miss it loads through the primary naming convention,
// then legacy alternates, caching the first success. Load
// faults downgrade to the sentinel module and are not cached,
// so authoring-time fixes become visible without Invalidate.
func (r *DefaultRegistry) Resolve(
	id exercise.ID,
) (exercise.VerificationModule, error) {
	if id == "" {
		return Sentinel(id), fmt.Errorf(
			"exercise id cannot be empty",
		)
	}

	r.mu.Lock()
	if m, ok := r.cache[id]; ok {
		r.stats.CacheHits++
		r.mu.Unlock()
		return m, nil
	}
	r.stats.CacheMisses++
	r.mu.Unlock()

	v, err, _ := r.group.Do(string(id), func() (any, error) {
		// Another waiter may have populated the cache while
		// this call was queued.
		r.mu.RLock()
		m, ok := r.cache[id]
		r.mu.RUnlock()
		if ok {
			return m, nil
		}

		loaded, loadErr := r.load(id)
		if loadErr != nil {
			return nil, loadErr
		}

		r.mu.Lock()
		r.cache[id] = loaded
		r.stats.TotalLoaded++
		r.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		if r.logger != nil {
			r.logger.Warn(
				"no verification module",
				"exercise", string(id),
				"error", err.Error(),
			)
		}
		return Sentinel(id), nil
	}

	return v.(exercise.VerificationModule), nil
}

// load tries the registered loader for the primary id, then
// each legacy alternate id, returning the first success.
func (r *DefaultRegistry) load(
	id exercise.ID,
) (exercise.VerificationModule, error) {
	var lastErr error

	for _, candidate := range candidates(id) {
		r.mu.RLock()
		loader, ok := r.loaders[candidate]
		r.mu.RUnlock()
		if !ok {
			continue
		}

		m, err := loader()
		if err != nil {
			lastErr = fmt.Errorf(
				"loader %s: %w", candidate, err,
			)
			continue
		}
		if m == nil {
			lastErr = fmt.Errorf(
				"loader %s returned nil module", candidate,
			)
			continue
		}
		return m, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf(
		"no loader registered for: %s", id,
	)
}

// candidates returns the id lookup order: the primary id first,
// then the legacy naming conventions still present in older
// exercise banks.
func candidates(id exercise.ID) []exercise.ID {
	out := []exercise.ID{
		id,
		exercise.ID("verify-" + string(id)),
	}

	underscored := strings.ReplaceAll(string(id), "-", "_")
	if underscored != string(id) {
		out = append(out, exercise.ID(underscored))
	}
	return out
}

// Invalidate drops the cached module for an exercise.
func (r *DefaultRegistry) Invalidate(id exercise.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, id)
}

// Stats returns a snapshot of the registry counters.
func (r *DefaultRegistry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.stats
	s.TotalRegistered = len(r.loaders)
	return s
}

// Count returns the number of registered loaders.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loaders)
}

// Clear removes all loaders and cached modules and resets the
// counters.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaders = make(map[exercise.ID]Loader)
	r.cache = make(
		map[exercise.ID]exercise.VerificationModule,
	)
	r.stats = Stats{}
}
