package config

import "testing"

func TestThemeApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		theme    Theme
		expected Theme
	}{
		{
			name:     "empty theme uses default preset",
			theme:    Theme{},
			expected: DefaultTheme(),
		},
		{
			name:     "monochrome preset",
			theme:    Theme{Preset: "monochrome"},
			expected: MonochromeTheme(),
		},
		{
			name:  "custom values are kept",
			theme: Theme{Accent: "#FF0000"},
			expected: Theme{
				Preset:    "default",
				Accent:    "#FF0000",
				Subtle:    DefaultTheme().Subtle,
				Normal:    DefaultTheme().Normal,
				SuccessFg: DefaultTheme().SuccessFg,
				ErrorFg:   DefaultTheme().ErrorFg,
			},
		},
		{
			name:     "unknown preset falls back to default",
			theme:    Theme{Preset: "neon"},
			expected: Theme{Preset: "neon", Accent: "#874BFD", Subtle: "#585858", Normal: "#D0D0D0", SuccessFg: "#5FD75F", ErrorFg: "#FF0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := tt.theme
			theme.ApplyDefaults()
			if theme != tt.expected {
				t.Errorf("ApplyDefaults() = %+v, want %+v", theme, tt.expected)
			}
		})
	}
}
