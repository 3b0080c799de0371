package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/mpmtools/mpm/internal/config"
	"github.com/mpmtools/mpm/internal/labels"
	"github.com/spf13/cobra"
)

// ErrUsage indicates a command was invoked with an invalid flag combination
var ErrUsage = errors.New("invalid usage")

// SourceDir returns the directory holding the caller's source file.
// Relative output paths are resolved against it. It returns "" when the
// binary carries no absolute source paths, as with go build -trimpath.
func SourceDir() string {
	_, file, _, ok := runtime.Caller(1)
	return sourceDir(file, ok)
}

func sourceDir(file string, ok bool) string {
	if !ok || !filepath.IsAbs(file) {
		return ""
	}
	return filepath.Dir(file)
}

// GetOutputPath resolves the labels file path.
// Precedence: --output flag, MPM_LABELS_FILE, config file, default.
func GetOutputPath(cmd *cobra.Command, cfg *config.Config, baseDir string) (string, error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("failed to parse output flag: %w", err)
	}
	if output == "" && cfg != nil {
		output = cfg.Labels.Output
	}
	return labels.ResolveOutput(baseDir, output)
}

// CheckExclusive returns ErrUsage when more than one of the named boolean
// flags is set
func CheckExclusive(cmd *cobra.Command, names ...string) error {
	var set []string
	for _, name := range names {
		if v, _ := cmd.Flags().GetBool(name); v {
			set = append(set, "--"+name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %v cannot be combined", ErrUsage, set)
	}
	return nil
}
