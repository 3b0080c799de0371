package ci

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec returns canned output per command name
func fakeExec(outputs map[string]string, failing map[string]bool) ExecFunc {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		key := strings.Join(append([]string{name}, args...), " ")
		if failing[key] {
			return outputs[key], errors.New("exit status 1")
		}
		return outputs[key], nil
	}
}

func newTestRunner(steps []Step, exec ExecFunc) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewRunner(&out, steps)
	r.exec = exec
	return r, &out
}

func TestRunAllPassing(t *testing.T) {
	r, out := newTestRunner(DefaultSteps(), fakeExec(nil, nil))

	code := r.Run(context.Background())
	assert.Equal(t, 0, code)
	assert.Len(t, r.Results(), len(DefaultSteps()))
	assert.Contains(t, out.String(), "All CI steps passed!")
	for _, result := range r.Results() {
		assert.True(t, result.Passed, result.Name)
	}
}

func TestRunStaleLabels(t *testing.T) {
	failing := map[string]bool{"go run . labels generate --check": true}
	outputs := map[string]string{"go run . labels generate --check": "Error: labels file is out of date"}
	r, out := newTestRunner(DefaultSteps(), fakeExec(outputs, failing))

	code := r.Run(context.Background())
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Labels")
	assert.Contains(t, out.String(), "go generate ./cmd")
	assert.Contains(t, out.String(), "labels file is out of date")
	assert.Contains(t, out.String(), "1/5 steps")
}

func TestFormatCheckInspectsOutput(t *testing.T) {
	outputs := map[string]string{"gofmt -s -l .": "internal/labels/build.go\n"}
	steps := DefaultSteps()[:1]
	r, _ := newTestRunner(steps, fakeExec(outputs, nil))

	code := r.Run(context.Background())
	assert.Equal(t, 1, code)

	results := r.Results()
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "gofmt -s -w")
}

func TestExecCommandMissingTool(t *testing.T) {
	_, err := execCommand(context.Background(), "definitely-not-an-installed-tool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
