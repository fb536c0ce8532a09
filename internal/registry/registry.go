// Package registry provides a global registry of renderer backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
)

// Backend drives a show on a real terminal.
// It owns terminal setup, input polling, the frame clock and teardown;
// the show itself stays terminal-agnostic.
type Backend interface {
	// Name returns the identifier used on the command line (e.g., "tea").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run steps and renders the show until the user quits or ctx is done.
	// Terminal or render failures end the run and are returned.
	Run(ctx context.Context, show *fireworks.Show, cfg core.RuntimeConfig) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend package's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
