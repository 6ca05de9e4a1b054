package simulation

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds all registered scenarios.
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewRegistry creates a new scenario registry.
func NewRegistry() *Registry {
	return &Registry{
		scenarios: make(map[string]Scenario),
	}
}

// Register adds a scenario to the registry.
func (r *Registry) Register(s Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.scenarios[name]; exists {
		return fmt.Errorf("scenario %q is already registered", name)
	}

	r.scenarios[name] = s
	return nil
}

// Get retrieves a scenario by name.
func (r *Registry) Get(name string) (Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.scenarios[name]
	if !exists {
		return nil, fmt.Errorf("scenario %q not found", name)
	}

	return s, nil
}

// List returns the names of all registered scenarios, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// DefaultRegistry is the global scenario registry.
var DefaultRegistry = NewRegistry()

// Register adds a scenario to the default registry.
func Register(s Scenario) error {
	return DefaultRegistry.Register(s)
}

// Get retrieves a scenario from the default registry.
func Get(name string) (Scenario, error) {
	return DefaultRegistry.Get(name)
}

// List returns all scenario names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}
