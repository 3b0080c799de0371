//go:generate go run .. labels generate

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/cli/label"
	"github.com/mpmtools/mpm/internal/cli/manager"
	"github.com/mpmtools/mpm/internal/cli/setup"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/config"
	"github.com/mpmtools/mpm/internal/logging"
	"github.com/spf13/cobra"
)

// moduleDir anchors relative output paths such as ../.github/labels.json
var moduleDir = cli.SourceDir()

// NewRootCmd builds the mpm command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mpm",
		Short: "mpm - meta package manager project tools",
		Long:  `Maintenance tools for the meta package manager project.`,

		SilenceUsage:      true,
		PersistentPreRunE: initialize,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr instead of ~/.mpm/logs/mpm.log")

	rootCmd.AddCommand(label.LabelCmd(moduleDir))
	rootCmd.AddCommand(manager.ManagerCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	return rootCmd
}

// initialize loads configuration, logging and styles before any subcommand runs
func initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || cfg.Log.Verbose {
		logging.InitWriter(os.Stderr, slog.LevelDebug)
	} else if err := logging.Init(); err != nil {
		// Logging is best effort; keep going with warnings on stderr
		logging.InitWriter(os.Stderr, slog.LevelWarn)
		slog.Warn("failed to open log file", "error", err)
	}

	styles.Init(cfg.Theme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))

	slog.Debug("command started", "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
