package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GoFmtFormatter formats staged Go files with gofmt
type GoFmtFormatter struct{}

func (g *GoFmtFormatter) Name() string {
	return "gofmt"
}

func (g *GoFmtFormatter) GetStagedFiles(ctx context.Context) ([]string, error) {
	staged, err := stagedFiles(ctx)
	if err != nil {
		return nil, err
	}
	return filterFiles(staged, func(file string) bool {
		return strings.HasSuffix(file, ".go")
	}), nil
}

func (g *GoFmtFormatter) Format(ctx context.Context, file string) error {
	if err := exec.CommandContext(ctx, "gofmt", "-w", file).Run(); err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	return restage(ctx, file)
}

// stagedFiles lists added, copied and modified paths in the index
func stagedFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}
	return strings.Split(strings.TrimSpace(string(output)), "\n"), nil
}

func filterFiles(files []string, keep func(string) bool) []string {
	var matched []string
	for _, file := range files {
		if file != "" && keep(file) {
			matched = append(matched, file)
		}
	}
	return matched
}

func restage(ctx context.Context, file string) error {
	if err := exec.CommandContext(ctx, "git", "add", file).Run(); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	return nil
}
