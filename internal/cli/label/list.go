package label

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/labels"
	"github.com/mpmtools/mpm/internal/models"
	"github.com/spf13/cobra"
)

// ListCmd returns the labels list subcommand
func ListCmd() *cobra.Command {
	return newListCmd(labels.DefaultCatalog(), labels.DefaultSources())
}

func newListCmd(catalog labels.Catalog, sources labels.Sources) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the label catalog",
		Long: `List the labels mpm generates, without writing anything.

Examples:
  # Human-readable list with color swatches
  mpm labels list

  # Rendered markdown table
  mpm labels list --markdown

  # JSON output for agents
  mpm labels list --json

  # Quiet mode (one name per line)
  mpm labels list --quiet
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, labels.Build(catalog, sources))
		},
	}

	cmd.Flags().Bool("markdown", false, "Render as a markdown table")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runList(cmd *cobra.Command, catalog []models.Label) error {
	if err := cli.CheckExclusive(cmd, "json", "quiet", "markdown"); err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	markdown, _ := cmd.Flags().GetBool("markdown")

	// Output based on mode
	if quietMode {
		for _, lbl := range catalog {
			fmt.Println(lbl.Name)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"labels":  catalog,
		})
	}

	if markdown {
		out, err := renderMarkdown(catalog)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	// Human-readable output
	if len(catalog) == 0 {
		fmt.Println("No labels in catalog")
		return nil
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Labels (%d):", len(catalog))))
	for _, lbl := range catalog {
		line := fmt.Sprintf("  %s %s %s", styles.RenderSwatch(lbl.Color), lbl.Color, styles.RenderLabelChip(lbl))
		if desc := lbl.DescriptionText(); desc != "" {
			line += " " + styles.SubtleStyle.Render(desc)
		}
		fmt.Println(line)
	}
	return nil
}

// markdownTable formats labels as a markdown table
func markdownTable(catalog []models.Label) string {
	var b strings.Builder
	b.WriteString("| Name | Color | Description |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, lbl := range catalog {
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n",
			escapeCell(lbl.Name), lbl.Color, escapeCell(lbl.DescriptionText()))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderMarkdown renders the catalog table for the terminal
func renderMarkdown(catalog []models.Label) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdownTable(catalog))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
