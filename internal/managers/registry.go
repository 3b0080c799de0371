// Package managers holds the registry of package managers mpm knows about.
package managers

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/mpmtools/mpm/internal/platform"
	"gopkg.in/yaml.v3"
)

//go:embed managers.yaml
var registryData []byte

// Registry errors
var (
	ErrEmptyRegistry   = errors.New("registry defines no package managers")
	ErrNoPlatforms     = errors.New("package manager supports no platform")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownManager  = errors.New("unknown package manager")
)

// Manager describes one supported package manager
type Manager struct {
	ID        string   `yaml:"-"`
	Name      string   `yaml:"name"`
	CLI       string   `yaml:"cli"`
	Platforms []string `yaml:"platforms"`
}

// SupportsPlatform reports whether the manager runs on the given OS
func (m *Manager) SupportsPlatform(id string) bool {
	return slices.Contains(m.Platforms, id)
}

// Registry is an immutable set of package managers indexed by ID
type Registry struct {
	managers map[string]*Manager
	ids      []string
}

// Load decodes a YAML registry keyed by manager ID
func Load(data []byte) (*Registry, error) {
	var raw map[string]*Manager
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		managers: make(map[string]*Manager, len(raw)),
		ids:      make([]string, 0, len(raw)),
	}
	for id, m := range raw {
		if m == nil {
			m = &Manager{}
		}
		m.ID = id
		if m.Name == "" {
			m.Name = id
		}
		if len(m.Platforms) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoPlatforms, id)
		}
		for _, p := range m.Platforms {
			if !platform.IsKnown(p) {
				return nil, fmt.Errorf("%w %q for manager %s", ErrUnknownPlatform, p, id)
			}
		}
		r.managers[id] = m
		r.ids = append(r.ids, id)
	}
	slices.Sort(r.ids)

	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry embedded in the binary
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(registryData)
		if err != nil {
			panic("invalid managers.yaml: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// IDs returns all manager IDs, sorted
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// Len returns the number of managers
func (r *Registry) Len() int {
	return len(r.ids)
}

// Get looks up a manager by ID
func (r *Registry) Get(id string) (*Manager, error) {
	m, ok := r.managers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownManager, id)
	}
	return m, nil
}

// All returns every manager sorted by ID
func (r *Registry) All() []*Manager {
	all := make([]*Manager, 0, len(r.ids))
	for _, id := range r.ids {
		all = append(all, r.managers[id])
	}
	return all
}

// Supporting returns the managers available on any of the platforms,
// sorted by ID
func (r *Registry) Supporting(platformIDs ...string) []*Manager {
	var found []*Manager
	for _, id := range r.ids {
		m := r.managers[id]
		if slices.ContainsFunc(platformIDs, m.SupportsPlatform) {
			found = append(found, m)
		}
	}
	return found
}
