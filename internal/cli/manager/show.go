package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpmtools/mpm/internal/cli/handler"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/managers"
	"github.com/spf13/cobra"
)

// ShowCmd returns the managers show subcommand
func ShowCmd() *cobra.Command {
	return newShowCmd(managers.Default())
}

func newShowCmd(registry *managers.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one package manager",
		Long: `Show a package manager from the registry.

Examples:
  mpm managers show brew

  # JSON output for agents
  mpm managers show npm --json

  # Quiet mode prints the CLI binary name
  mpm managers show cask --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(&showHandler{registry: registry}),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (CLI name only)")

	return cmd
}

// showHandler implements handler.Handler for a single manager
type showHandler struct {
	registry *managers.Registry
}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	m, err := h.registry.Get(args.Args[0])
	if err != nil {
		return nil, err
	}
	return &managerShowResult{Manager: newManagerEntry(m)}, nil
}

// managerShowResult represents a single manager
type managerShowResult struct {
	Manager managerEntry `json:"manager"`
}

// QuietValue implements quiet mode output
func (r *managerShowResult) QuietValue() string {
	return r.Manager.CLI
}

func (r *managerShowResult) String() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(r.Manager.Name))
	fmt.Fprintf(&b, "\n  ID:        %s", styles.ValueStyle.Render(r.Manager.ID))
	fmt.Fprintf(&b, "\n  CLI:       %s", styles.ValueStyle.Render(r.Manager.CLI))
	fmt.Fprintf(&b, "\n  Platforms: %s", styles.SubtleStyle.Render(r.Manager.platformLabels()))
	return b.String()
}
