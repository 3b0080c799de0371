// Package setup holds the command writing mpm's configuration file
package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/cli/handler"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/config"
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write the mpm configuration file",
		Long: `Write a configuration file with mpm's defaults to
$XDG_CONFIG_HOME/mpm/config.yaml (or ~/.config/mpm/config.yaml).

Examples:
  mpm setup

  # Persist a labels file location
  mpm setup --output=/srv/repo/.github/labels.json

  # Replace an existing file with the monochrome theme
  mpm setup --theme=monochrome --force
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&setupHandler{}, parseSetupFlags),
	}

	cmd.Flags().String("output", "", "Labels file path to store in the config")
	cmd.Flags().String("theme", "default", "Theme preset (default, monochrome)")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (config path only)")

	return cmd
}

// setupHandler implements handler.Handler for writing the config
type setupHandler struct{}

// Execute implements the Handler interface
func (h *setupHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	path, err := config.Path()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config file: %w", err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to inspect config file: %w", statErr)
	}
	if exists && !args.GetBool("force") {
		return nil, fmt.Errorf("%w: %s already exists (use --force to overwrite)", cli.ErrUsage, path)
	}

	cfg := &config.Config{
		Labels: config.LabelsConfig{Output: args.GetString("output", "")},
		Theme:  config.GetPreset(args.GetString("theme", "default")),
	}
	if err := cfg.Save(); err != nil {
		return nil, err
	}

	slog.Info("config written", "path", path, "overwritten", exists)
	return &setupResult{Path: path, Overwritten: exists}, nil
}

// setupResult represents the written config file
type setupResult struct {
	Path        string `json:"path"`
	Overwritten bool   `json:"overwritten"`
}

// QuietValue implements quiet mode output
func (r *setupResult) QuietValue() string {
	return r.Path
}

func (r *setupResult) String() string {
	verb := "Created"
	if r.Overwritten {
		verb = "Overwrote"
	}
	return styles.SuccessStyle.Render("✓ "+verb+" config") + ": " + r.Path
}

func parseSetupFlags(cmd *cobra.Command) error {
	if err := cli.CheckExclusive(cmd, "json", "quiet"); err != nil {
		return err
	}
	theme, _ := cmd.Flags().GetString("theme")
	if theme != "default" && theme != "monochrome" {
		return fmt.Errorf("%w: unknown theme %q (must be: default, monochrome)", cli.ErrUsage, theme)
	}
	return nil
}
