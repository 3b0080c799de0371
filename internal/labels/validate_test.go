package labels

import (
	"testing"

	"github.com/mpmtools/mpm/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		labels  []models.Label
		wantErr error
	}{
		{
			name:   "default catalog is valid",
			labels: Build(DefaultCatalog(), DefaultSources()),
		},
		{
			name:   "empty catalog is valid",
			labels: nil,
		},
		{
			name:   "mixed case hex color",
			labels: []models.Label{models.NewLabel("help wanted", "#128A0C")},
		},
		{
			name:    "empty name",
			labels:  []models.Label{models.NewLabel("", "#ffffff")},
			wantErr: ErrEmptyName,
		},
		{
			name:    "short color",
			labels:  []models.Label{models.NewLabel("bug", "#fff")},
			wantErr: ErrInvalidColor,
		},
		{
			name:    "color without hash",
			labels:  []models.Label{models.NewLabel("bug", "ee0701")},
			wantErr: ErrInvalidColor,
		},
		{
			name: "duplicate names",
			labels: []models.Label{
				models.NewLabel("bug", "#ee0701"),
				models.NewDescribedLabel("bug", "#ffffff", "again"),
			},
			wantErr: ErrDuplicateLabel,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.labels)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildDuplicatePlatformsFailValidation(t *testing.T) {
	t.Parallel()

	labels := Build(DefaultCatalog(), Sources{Platforms: []string{"Linux", "Linux"}})
	assert.ErrorIs(t, Validate(labels), ErrDuplicateLabel)
}
