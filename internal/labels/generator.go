package labels

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mpmtools/mpm/internal/models"
)

// Result describes a generated or checked labels file
type Result struct {
	Path    string `json:"path"`
	Count   int    `json:"count"`
	Changed bool   `json:"changed"`
}

// Generator writes the label catalog to disk
type Generator struct {
	catalog Catalog
	sources Sources
	logger  *slog.Logger
	strict  bool
}

// NewGenerator creates a generator. A nil logger uses slog's default.
func NewGenerator(catalog Catalog, sources Sources, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		catalog: catalog,
		sources: sources,
		logger:  logger,
	}
}

// SetStrict makes validation failures abort Generate and Check instead of
// being logged as warnings
func (g *Generator) SetStrict(strict bool) {
	g.strict = strict
}

// Labels returns the sorted label catalog
func (g *Generator) Labels() []models.Label {
	return Build(g.catalog, g.sources)
}

// render builds, validates and serializes the catalog
func (g *Generator) render() ([]byte, int, error) {
	labels := g.Labels()
	if err := Validate(labels); err != nil {
		if g.strict {
			return nil, 0, err
		}
		g.logger.Warn("label catalog failed validation", "error", err)
	}
	data, err := Render(labels)
	if err != nil {
		return nil, 0, err
	}
	return data, len(labels), nil
}

// Generate overwrites the file at path with the rendered catalog
func (g *Generator) Generate(path string) (*Result, error) {
	data, count, err := g.render()
	if err != nil {
		return nil, err
	}

	changed, err := differs(path, data)
	if err != nil {
		return nil, err
	}

	if err := Write(path, data); err != nil {
		return nil, err
	}

	g.logger.Info("labels generated", "path", path, "count", count, "changed", changed)
	return &Result{Path: path, Count: count, Changed: changed}, nil
}

// Check compares the rendered catalog with the file at path without writing.
// It returns ErrStale along with the result when they differ.
func (g *Generator) Check(path string) (*Result, error) {
	data, count, err := g.render()
	if err != nil {
		return nil, err
	}

	changed, err := differs(path, data)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path, Count: count, Changed: changed}
	if changed {
		g.logger.Debug("labels file is stale", "path", path)
		return result, fmt.Errorf("%w: %s", ErrStale, path)
	}
	return result, nil
}

// differs reports whether the file at path holds something other than data.
// A missing file differs.
func differs(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read labels file: %w", err)
	}
	return !bytes.Equal(existing, data), nil
}
