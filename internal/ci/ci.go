// Package ci runs the project's local CI pipeline
package ci

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/mpmtools/mpm/internal/cli/styles"
	"github.com/muesli/reflow/wordwrap"
)

// outputWidth is the wrap width for failed step output
const outputWidth = 100

// StepResult is the outcome of one pipeline step
type StepResult struct {
	Name    string
	Passed  bool
	Output  string
	Message string
}

// Step is a command the pipeline runs
type Step struct {
	Name    string
	Command []string
	// Passed and Failed are the summary messages
	Passed string
	Failed string
	// Check inspects successful output; a non-empty return fails the step
	Check func(output string) string
}

// ExecFunc runs a command and returns its combined output
type ExecFunc func(ctx context.Context, name string, args ...string) (string, error)

// Runner executes steps concurrently and reports a summary
type Runner struct {
	steps   []Step
	exec    ExecFunc
	out     io.Writer
	results []StepResult
	mu      sync.Mutex
}

// DefaultSteps returns the project's pipeline
func DefaultSteps() []Step {
	return []Step{
		{
			Name:    "Format Check",
			Command: []string{"gofmt", "-s", "-l", "."},
			Passed:  "All files properly formatted",
			Failed:  "Failed to run gofmt",
			Check: func(output string) string {
				if strings.TrimSpace(output) != "" {
					return "Files not formatted (run 'gofmt -s -w .')"
				}
				return ""
			},
		},
		{
			Name:    "Vet",
			Command: []string{"go", "vet", "./..."},
			Passed:  "Vet passed",
			Failed:  "Vet failed",
		},
		{
			Name:    "Test",
			Command: []string{"go", "test", "-race", "./..."},
			Passed:  "Tests passed",
			Failed:  "Tests failed",
		},
		{
			Name:    "Labels",
			Command: []string{"go", "run", ".", "labels", "generate", "--check"},
			Passed:  ".github/labels.json is up to date",
			Failed:  "Labels file is stale (run 'go generate ./cmd')",
		},
		{
			Name:    "Build",
			Command: []string{"go", "build", "-o", "bin/mpm", "."},
			Passed:  "Build successful",
			Failed:  "Build failed",
		},
	}
}

// NewRunner creates a runner executing steps with real processes
func NewRunner(out io.Writer, steps []Step) *Runner {
	return &Runner{
		steps:   steps,
		exec:    execCommand,
		out:     out,
		results: make([]StepResult, 0, len(steps)),
	}
}

func execCommand(ctx context.Context, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%s not found: %w", name, err)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

func (r *Runner) addResult(result StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// Run executes all steps and returns the process exit code
func (r *Runner) Run(ctx context.Context) int {
	fmt.Fprintln(r.out, styles.TitleStyle.Render("Running CI pipeline"))

	var wg sync.WaitGroup
	for _, step := range r.steps {
		wg.Add(1)
		go func(s Step) {
			defer wg.Done()
			r.addResult(r.runStep(ctx, s))
		}(step)
	}
	wg.Wait()

	return r.printSummary()
}

func (r *Runner) runStep(ctx context.Context, step Step) StepResult {
	output, err := r.exec(ctx, step.Command[0], step.Command[1:]...)
	if err != nil {
		return StepResult{Name: step.Name, Output: output, Message: fmt.Sprintf("%s: %v", step.Failed, err)}
	}
	if step.Check != nil {
		if msg := step.Check(output); msg != "" {
			return StepResult{Name: step.Name, Output: output, Message: msg}
		}
	}
	return StepResult{Name: step.Name, Passed: true, Message: step.Passed}
}

// Results returns a copy of the collected results
func (r *Runner) Results() []StepResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StepResult(nil), r.results...)
}

func (r *Runner) printSummary() int {
	var passed, failed []StepResult
	for _, result := range r.Results() {
		if result.Passed {
			passed = append(passed, result)
		} else {
			failed = append(failed, result)
		}
	}

	fmt.Fprintln(r.out)
	for _, result := range passed {
		fmt.Fprintf(r.out, "%s  %s\n", styles.SuccessStyle.Render("✅ PASS"), result.Name)
	}
	for _, result := range failed {
		fmt.Fprintf(r.out, "%s  %s - %s\n", styles.ErrorStyle.Render("❌ FAIL"), result.Name, result.Message)
		if result.Output != "" {
			fmt.Fprintln(r.out, styles.SubtleStyle.Render(wordwrap.String(strings.TrimRight(result.Output, "\n"), outputWidth)))
		}
	}
	fmt.Fprintln(r.out)

	if len(failed) > 0 {
		fmt.Fprintln(r.out, styles.ErrorStyle.Render(fmt.Sprintf("CI pipeline failed: %d/%d steps", len(failed), len(passed)+len(failed))))
		return 1
	}
	fmt.Fprintln(r.out, styles.SuccessStyle.Render("All CI steps passed!"))
	return 0
}
