package labels

import (
	"fmt"
	"regexp"

	"github.com/mpmtools/mpm/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks every label has a name, a hex color and a unique name
func Validate(labels []models.Label) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l.Name == "" {
			return ErrEmptyName
		}
		if !hexColorRegex.MatchString(l.Color) {
			return fmt.Errorf("%w: %q for label %q", ErrInvalidColor, l.Color, l.Name)
		}
		if _, ok := seen[l.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l.Name)
		}
		seen[l.Name] = struct{}{}
	}
	return nil
}
