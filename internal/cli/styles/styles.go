package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/mpmtools/mpm/internal/config"
	"github.com/mpmtools/mpm/internal/models"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style // For descriptions and secondary columns
	ValueStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SuccessFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderLabelChip renders a label as "[name]" with the label's color
func RenderLabelChip(label models.Label) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(label.Color)).
		Bold(true).
		Render("[" + label.Name + "]")
}

// RenderSwatch renders a two-cell block filled with a hex color
func RenderSwatch(hexColor string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor)).
		Render("  ")
}
