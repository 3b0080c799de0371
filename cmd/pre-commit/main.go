package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mpmtools/mpm/internal/cli/styles"
)

// Formatter rewrites staged files and re-stages them
type Formatter interface {
	Name() string
	GetStagedFiles(ctx context.Context) ([]string, error)
	Format(ctx context.Context, file string) error
}

// FormatterResult holds the result of a formatter run
type FormatterResult struct {
	Name           string
	FilesFormatted int
	Error          error
}

func runFormatter(ctx context.Context, formatter Formatter) FormatterResult {
	result := FormatterResult{Name: formatter.Name()}

	files, err := formatter.GetStagedFiles(ctx)
	if err != nil {
		result.Error = err
		return result
	}

	var formatErrors []string
	for _, file := range files {
		if err := formatter.Format(ctx, file); err != nil {
			formatErrors = append(formatErrors, fmt.Sprintf("  %s: %v", file, err))
			continue
		}
		result.FilesFormatted++
	}

	if len(formatErrors) > 0 {
		result.Error = fmt.Errorf("formatting errors:\n%s", strings.Join(formatErrors, "\n"))
	}
	return result
}

func main() {
	ctx := context.Background()
	formatters := []Formatter{
		&GoFmtFormatter{},
		&LabelsFormatter{},
	}

	results := make([]FormatterResult, len(formatters))
	var wg sync.WaitGroup
	for i, formatter := range formatters {
		wg.Add(1)
		go func(i int, f Formatter) {
			defer wg.Done()
			results[i] = runFormatter(ctx, f)
		}(i, formatter)
	}
	wg.Wait()

	var hasError bool
	var totalFormatted int
	for _, result := range results {
		switch {
		case result.Error != nil:
			fmt.Fprintf(os.Stderr, "%s\n%v\n", styles.ErrorStyle.Render("✗ "+result.Name+" failed:"), result.Error)
			hasError = true
		case result.FilesFormatted > 0:
			fmt.Printf("%s formatted %d file(s)\n", styles.SuccessStyle.Render("✓ "+result.Name+":"), result.FilesFormatted)
			totalFormatted += result.FilesFormatted
		}
	}

	if hasError {
		os.Exit(1)
	}
	if totalFormatted > 0 {
		fmt.Println(styles.SuccessStyle.Render("✓ Pre-commit formatting complete"))
	}
}
