// Package labels generates the GitHub label catalog used in issue and PR
// management.
package labels

import (
	"slices"

	"github.com/mpmtools/mpm/internal/managers"
	"github.com/mpmtools/mpm/internal/models"
	"github.com/mpmtools/mpm/internal/platform"
)

// Label colors
const (
	PlatformColor = "#bfd4f2"
	ManagerColor  = "#bfdadc"
)

// Name prefixes of generated labels
const (
	platformPrefix = "platform: "
	managerPrefix  = "manager: "
)

// Catalog is the fixed configuration the generator expands
type Catalog struct {
	// Labels are emitted as-is
	Labels        []models.Label
	PlatformColor string
	ManagerColor  string
	// Groups maps a group label to the manager IDs it subsumes.
	// Grouped managers get no individual label.
	Groups map[string][]string
}

// Sources are the external enumerations feeding the catalog
type Sources struct {
	Platforms []string
	Managers  []string
}

// DefaultCatalog returns mpm's label catalog
func DefaultCatalog() Catalog {
	return Catalog{
		Labels: []models.Label{
			models.NewLabel("BitBar plugin", "#fef2c0"),
			models.NewLabel("bug", "#ee0701"),
			models.NewLabel("documentation", "#d4c5f9"),
			models.NewLabel("duplicate", "#cccccc"),
			models.NewLabel("enhancement", "#84b6eb"),
			models.NewLabel("help wanted", "#128A0C"),
			models.NewLabel("invalid", "#e6e6e6"),
			models.NewLabel("question", "#cc317c"),
			models.NewLabel("wontfix", "#ffffff"),
		},
		PlatformColor: PlatformColor,
		ManagerColor:  ManagerColor,
		// Managers sharing some roots are grouped together.
		Groups: map[string][]string{
			"dpkg-like": {"dpkg", "apt", "opkg"},
			"npm-like":  {"npm", "yarn"},
		},
	}
}

// DefaultSources reads the supported platforms and the embedded manager registry
func DefaultSources() Sources {
	return Sources{
		Platforms: platform.AllLabels(),
		Managers:  managers.Default().IDs(),
	}
}

// groupedManagers returns the set of manager IDs belonging to any group
func (c Catalog) groupedManagers() map[string]struct{} {
	grouped := make(map[string]struct{})
	for _, members := range c.Groups {
		for _, id := range members {
			grouped[id] = struct{}{}
		}
	}
	return grouped
}

// groupNames returns group labels in sorted order
func (c Catalog) groupNames() []string {
	var names []string
	for name := range c.Groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
