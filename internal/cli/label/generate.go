package label

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/cli/handler"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/labels"
	"github.com/spf13/cobra"
)

// GenerateCmd returns the labels generate subcommand
func GenerateCmd(baseDir string) *cobra.Command {
	return newGenerateCmd(&generateHandler{
		baseDir: baseDir,
		catalog: labels.DefaultCatalog(),
		sources: labels.DefaultSources(),
	})
}

func newGenerateCmd(h *generateHandler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the label catalog to .github/labels.json",
		Long: `Generate GitHub labels to use in issues and PR management.

The catalog merges the general-purpose labels with one label per supported
platform and one label per package manager. Related managers are grouped
under a single label. The file is overwritten unconditionally.

Examples:
  # Regenerate the labels file
  mpm labels generate

  # Write somewhere else
  mpm labels generate --output=/tmp/labels.json

  # Fail when the committed file is out of date (CI)
  mpm labels generate --check

  # Refuse to write duplicate names or malformed colors
  mpm labels generate --strict

  # Quiet mode for bash capture
  LABELS_FILE=$(mpm labels generate --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(h, parseGenerateFlags),
	}

	cmd.Flags().String("output", "", "Labels file path (default ../.github/labels.json relative to the module; "+
		"required in -trimpath builds, where relative paths are taken from the working directory)")
	cmd.Flags().Bool("check", false, "Compare with the existing file instead of writing it")
	cmd.Flags().Bool("strict", false, "Fail on invalid or duplicate labels instead of warning")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

// generateHandler implements handler.Handler for label generation
type generateHandler struct {
	baseDir string
	catalog labels.Catalog
	sources labels.Sources
}

// Execute implements the Handler interface
func (h *generateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cfg := cli.ConfigFromContext(ctx)

	path, err := cli.GetOutputPath(args.GetCmd(), cfg, h.baseDir)
	if err != nil {
		return nil, err
	}

	generator := labels.NewGenerator(h.catalog, h.sources, slog.Default())
	generator.SetStrict(args.GetBool("strict"))

	if args.GetBool("check") {
		result, err := generator.Check(path)
		if err != nil {
			return nil, err
		}
		return &generateResult{Result: *result, Checked: true}, nil
	}

	result, err := generator.Generate(path)
	if err != nil {
		return nil, err
	}
	return &generateResult{Result: *result}, nil
}

// generateResult represents the result of label generation
type generateResult struct {
	labels.Result
	Checked bool `json:"checked"`
}

// QuietValue implements quiet mode output
func (r *generateResult) QuietValue() string {
	return r.Path
}

func (r *generateResult) String() string {
	if r.Checked {
		return styles.SuccessStyle.Render("✓ Labels file is up to date") + fmt.Sprintf(" (%d labels): %s", r.Count, r.Path)
	}
	status := "unchanged"
	if r.Changed {
		status = "updated"
	}
	return styles.SuccessStyle.Render(fmt.Sprintf("✓ Generated %d labels", r.Count)) +
		fmt.Sprintf(" (%s): %s", status, r.Path)
}

func parseGenerateFlags(cmd *cobra.Command) error {
	return cli.CheckExclusive(cmd, "json", "quiet")
}
