package registry

import "strings"

// ModuleDescriptor describes one installed module as reported by the host.
// The registry never mutates descriptors; it only reads them.
type ModuleDescriptor struct {
	ID          string
	DisplayName string
	Active      bool
}

// Snapshot is the host's module list at a single point in time.
type Snapshot []ModuleDescriptor

// Provider supplies the current snapshot on demand. How and when the host
// refreshes its list is the host's business.
type Provider func() Snapshot

// Registry answers presence and display-name queries against the provider's
// current snapshot.
type Registry struct {
	provider Provider
}

// New creates a registry backed by the given snapshot provider.
func New(provider Provider) *Registry {
	return &Registry{provider: provider}
}

// NewStatic creates a registry over a fixed module list. Useful for hosts
// whose module set never changes after startup, and for tests.
func NewStatic(modules ...ModuleDescriptor) *Registry {
	snapshot := Snapshot(modules)
	return &Registry{provider: func() Snapshot { return snapshot }}
}

// IsActive reports whether some installed module with the given identifier
// is currently active. An empty identifier never matches. Identifier
// comparison is case-insensitive.
func (r *Registry) IsActive(moduleID string) bool {
	if moduleID == "" {
		return false
	}
	for _, mod := range r.snapshot() {
		if mod.Active && strings.EqualFold(mod.ID, moduleID) {
			return true
		}
	}
	return false
}

// DisplayNameOf returns the display name of the first active module matching
// the given identifier. The second return value is false when the identifier
// is empty or no active match exists.
func (r *Registry) DisplayNameOf(moduleID string) (string, bool) {
	if moduleID == "" {
		return "", false
	}
	for _, mod := range r.snapshot() {
		if mod.Active && strings.EqualFold(mod.ID, moduleID) {
			return mod.DisplayName, true
		}
	}
	return "", false
}

func (r *Registry) snapshot() Snapshot {
	if r.provider == nil {
		return nil
	}
	return r.provider()
}
