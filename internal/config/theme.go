package config

// Theme defines the colors used by CLI output
type Theme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and headers)
	Accent string `yaml:"accent"`

	// Text colors
	Subtle string `yaml:"subtle"` // Muted text such as descriptions
	Normal string `yaml:"normal"`

	// Status colors
	SuccessFg string `yaml:"success_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultTheme returns the default theme (purple accent)
func DefaultTheme() Theme {
	return Theme{
		Preset:    "default",
		Accent:    "#874BFD",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		SuccessFg: "#5FD75F",
		ErrorFg:   "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Subtle:    "#808080",
		Normal:    "#D0D0D0",
		SuccessFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}

// GetPreset returns a preset theme by name
func GetPreset(name string) Theme {
	switch name {
	case "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (t *Theme) ApplyDefaults() {
	preset := GetPreset(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	if t.Accent == "" {
		t.Accent = preset.Accent
	}
	if t.Subtle == "" {
		t.Subtle = preset.Subtle
	}
	if t.Normal == "" {
		t.Normal = preset.Normal
	}
	if t.SuccessFg == "" {
		t.SuccessFg = preset.SuccessFg
	}
	if t.ErrorFg == "" {
		t.ErrorFg = preset.ErrorFg
	}
}
