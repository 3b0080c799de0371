// Package label holds all cli commands related to the label catalog
// e.g., mpm labels ...
package label

import (
	"github.com/spf13/cobra"
)

// LabelCmd returns the labels parent command. Relative output paths are
// resolved against baseDir.
func LabelCmd(baseDir string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage the GitHub label catalog",
	}

	cmd.AddCommand(GenerateCmd(baseDir))
	cmd.AddCommand(ListCmd())

	return cmd
}
