package plugin

import (
	"sort"
	"sync"
)

// Registry maps plugin names to validated metadata. It is populated
// once at startup from the static plugin table and treated as frozen
// afterwards: entries are never removed or replaced. Reads are safe
// concurrently.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Metadata
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Metadata),
	}
}

// Register validates the metadata and inserts it keyed by name.
// Registration is all-or-nothing: a record that fails any structural
// check never enters the registry, and an already-taken name is never
// overwritten.
func (r *Registry) Register(m Metadata) error {
	if violations := Validate(m); len(violations) > 0 {
		return &ValidationError{Name: m.Name, Violations: violations}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[m.Name]; exists {
		return &DuplicatePluginError{Name: m.Name}
	}
	r.plugins[m.Name] = m
	return nil
}

// Get returns the metadata registered under name. The not-found error
// carries the sorted list of known names so callers can point the user
// at what is available.
func (r *Registry) Get(name string) (Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.plugins[name]
	if !ok {
		return Metadata{}, &PluginNotFoundError{Name: name, Known: r.namesLocked()}
	}
	return m, nil
}

// List returns every registered plugin sorted by name.
func (r *Registry) List() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Metadata, 0, len(r.plugins))
	for _, m := range r.plugins {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns the sorted registered plugin names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
