// Package manager holds cli commands exposing the package manager registry
// e.g., mpm managers ...
package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/cli/handler"
	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/mpmtools/mpm/internal/managers"
	"github.com/mpmtools/mpm/internal/platform"
	"github.com/spf13/cobra"
)

// ManagerCmd returns the managers parent command
func ManagerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "managers",
		Aliases: []string{"manager"},
		Short:   "Inspect supported package managers",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// ListCmd returns the managers list subcommand
func ListCmd() *cobra.Command {
	return newListCmd(managers.Default())
}

func newListCmd(registry *managers.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported package managers",
		Long: `List the package managers mpm supports.

Examples:
  # All managers
  mpm managers list

  # Managers available on macOS or Windows
  mpm managers list --platform=macos,windows

  # Managers available on this machine
  mpm managers list --current

  # Quiet mode (one ID per line)
  mpm managers list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&listHandler{registry: registry}, parseListFlags),
	}

	cmd.Flags().StringSlice("platform", nil, "Only list managers supporting any of these platforms: "+platformChoices())
	cmd.Flags().Bool("current", false, "Only list managers supporting the platform mpm runs on")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing managers
type listHandler struct {
	registry *managers.Registry
}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	platformIDs := args.GetStringSlice("platform", nil)
	if args.GetBool("current") {
		current, err := platform.Current()
		if err != nil {
			return nil, err
		}
		platformIDs = append(platformIDs, current.ID)
	}

	found := h.registry.All()
	if len(platformIDs) > 0 {
		found = h.registry.Supporting(platformIDs...)
	}

	result := &managerListResult{
		Managers: make([]managerEntry, 0, len(found)),
		Total:    h.registry.Len(),
	}
	for _, m := range found {
		result.Managers = append(result.Managers, newManagerEntry(m))
	}
	return result, nil
}

func newManagerEntry(m *managers.Manager) managerEntry {
	return managerEntry{
		ID:        m.ID,
		Name:      m.Name,
		CLI:       m.CLI,
		Platforms: m.Platforms,
	}
}

type managerEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CLI       string   `json:"cli"`
	Platforms []string `json:"platforms"`
}

// platformLabels returns the human-readable labels of the entry's platforms
func (e managerEntry) platformLabels() string {
	labels := make([]string, 0, len(e.Platforms))
	for _, p := range e.Platforms {
		label, _ := platform.LabelFor(p)
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

// managerListResult represents the listed managers
type managerListResult struct {
	Managers []managerEntry `json:"managers"`
	// Total is the size of the registry before filtering
	Total    int            `json:"total"`
}

// QuietValue implements quiet mode output
func (r *managerListResult) QuietValue() string {
	ids := make([]string, 0, len(r.Managers))
	for _, m := range r.Managers {
		ids = append(ids, m.ID)
	}
	return strings.Join(ids, "\n")
}

func (r *managerListResult) String() string {
	if len(r.Managers) == 0 {
		return "No package managers found"
	}

	var b strings.Builder
	count := fmt.Sprintf("%d", len(r.Managers))
	if r.Total > len(r.Managers) {
		count = fmt.Sprintf("%d of %d", len(r.Managers), r.Total)
	}
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Package managers (%s):", count)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-10s %-20s %-10s %s\n", "ID", "Name", "CLI", "Platforms")
	b.WriteString("  " + strings.Repeat("-", 60))
	for _, m := range r.Managers {
		fmt.Fprintf(&b, "\n  %-10s %-20s %-10s %s", m.ID, m.Name, m.CLI, styles.SubtleStyle.Render(m.platformLabels()))
	}
	return b.String()
}

func parseListFlags(cmd *cobra.Command) error {
	if err := cli.CheckExclusive(cmd, "json", "quiet"); err != nil {
		return err
	}
	platformIDs, _ := cmd.Flags().GetStringSlice("platform")
	for _, id := range platformIDs {
		if !platform.IsKnown(id) {
			return fmt.Errorf("%w: unknown platform %q (must be: %s)", cli.ErrUsage, id, strings.Join(platform.IDs(), ", "))
		}
	}
	return nil
}

// platformChoices describes every supported platform as "id (Label)"
func platformChoices() string {
	choices := make([]string, 0, len(platform.All()))
	for _, def := range platform.All() {
		choices = append(choices, fmt.Sprintf("%s (%s)", def.ID, def.Label))
	}
	return strings.Join(choices, ", ")
}
