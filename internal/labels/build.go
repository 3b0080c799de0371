package labels

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mpmtools/mpm/internal/models"
)

// Build expands the catalog with the sources and returns all labels sorted
// by name, then color, then description.
func Build(catalog Catalog, sources Sources) []models.Label {
	grouped := catalog.groupedManagers()

	result := make([]models.Label, 0, len(catalog.Labels)+len(sources.Platforms)+len(sources.Managers)+len(catalog.Groups))
	result = append(result, catalog.Labels...)

	for _, id := range sources.Platforms {
		result = append(result, models.NewLabel(platformPrefix+id, catalog.PlatformColor))
	}

	for _, id := range sources.Managers {
		if _, ok := grouped[id]; ok {
			continue
		}
		result = append(result, models.NewLabel(managerPrefix+id, catalog.ManagerColor))
	}

	for _, group := range catalog.groupNames() {
		members := slices.Clone(catalog.Groups[group])
		slices.Sort(members)
		result = append(result, models.NewDescribedLabel(
			managerPrefix+group, catalog.ManagerColor, strings.Join(members, ", ")))
	}

	slices.SortStableFunc(result, compareLabels)
	return result
}

// compareLabels orders labels by name, color, then description.
// A missing description sorts first.
func compareLabels(a, b models.Label) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Color, b.Color); c != 0 {
		return c
	}
	switch {
	case a.Description == nil && b.Description == nil:
		return 0
	case a.Description == nil:
		return -1
	case b.Description == nil:
		return 1
	}
	return cmp.Compare(*a.Description, *b.Description)
}
