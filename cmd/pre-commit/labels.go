package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mpmtools/mpm/internal/labels"
)

// labelsFile is the generated catalog, relative to the repository root
var labelsFile = filepath.Join(".github", "labels.json")

// labelSources are the directories whose changes affect the catalog
var labelSources = []string{
	"internal/labels/",
	"internal/managers/",
	"internal/platform/",
}

// LabelsFormatter regenerates the label catalog when its inputs are staged
type LabelsFormatter struct {
	logger *slog.Logger
}

func (l *LabelsFormatter) Name() string {
	return "labels"
}

// GetStagedFiles returns the catalog path if any label source is staged
func (l *LabelsFormatter) GetStagedFiles(ctx context.Context) ([]string, error) {
	staged, err := stagedFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(filterFiles(staged, touchesLabels)) == 0 {
		return nil, nil
	}
	return []string{labelsFile}, nil
}

func (l *LabelsFormatter) Format(ctx context.Context, file string) error {
	gen := labels.NewGenerator(labels.DefaultCatalog(), labels.DefaultSources(), l.logger)
	result, err := gen.Generate(file)
	if err != nil {
		return fmt.Errorf("label generation failed: %w", err)
	}
	if !result.Changed {
		return nil
	}
	return restage(ctx, file)
}

func touchesLabels(file string) bool {
	for _, prefix := range labelSources {
		if strings.HasPrefix(file, prefix) && !strings.HasSuffix(file, "_test.go") {
			return true
		}
	}
	return false
}
