package manager

import (
	"strings"
	"testing"

	"github.com/mpmtools/mpm/internal/cli"
	"github.com/mpmtools/mpm/internal/managers"
	"github.com/mpmtools/mpm/internal/platform"
	"github.com/mpmtools/mpm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `
npm:
  name: Node's npm
  cli: npm
  platforms: [linux, macos, windows]
mas:
  name: Mac AppStore
  cli: mas
  platforms: [macos]
apt:
  name: APT
  cli: apt
  platforms: [linux]
`

func loadTestRegistry(t *testing.T) *managers.Registry {
	t.Helper()
	r, err := managers.Load([]byte(testRegistry))
	require.NoError(t, err)
	return r
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "quiet lists all IDs sorted",
			args: []string{"--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "apt\nmas\nnpm", strings.TrimSpace(output))
			},
		},
		{
			name: "platform filter",
			args: []string{"--platform", "macos", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "mas\nnpm", strings.TrimSpace(output))
			},
		},
		{
			name: "several platforms",
			args: []string{"--platform", "linux,macos", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "apt\nmas\nnpm", strings.TrimSpace(output))
			},
		},
		{
			name: "repeated platform flag",
			args: []string{"--platform", "linux", "--platform", "windows", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "apt\nnpm", strings.TrimSpace(output))
			},
		},
		{
			name: "filtered human-readable output shows registry size",
			args: []string{"--platform", "macos"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Package managers (2 of 3):")
			},
		},
		{
			name: "JSON output",
			args: []string{"--json", "--platform", "linux"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data := result["data"].(map[string]any)
				list := data["managers"].([]any)
				require.Len(t, list, 2)
				assert.Equal(t, float64(3), data["total"])
				assert.Equal(t, "apt", list[0].(map[string]any)["id"])
				assert.Equal(t, "npm", list[1].(map[string]any)["id"])
			},
		},
		{
			name: "human-readable output",
			args: nil,
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Package managers (3):")
				assert.Contains(t, output, "Mac AppStore")
				assert.Contains(t, output, "Linux, macOS, Windows")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutil.ExecuteCommand(t, newListCmd(loadTestRegistry(t)), tt.args...)
			require.NoError(t, err)
			tt.checkFunc(t, output)
		})
	}
}

func TestListCommandUnknownPlatform(t *testing.T) {
	_, err := testutil.ExecuteCommand(t, newListCmd(loadTestRegistry(t)), "--platform", "amiga")
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestListCommandCurrentPlatform(t *testing.T) {
	current, err := platform.Current()
	if err != nil {
		t.Skipf("no platform definition for this OS: %v", err)
	}

	registry := loadTestRegistry(t)
	output, err := testutil.ExecuteCommand(t, newListCmd(registry), "--current", "--quiet")
	require.NoError(t, err)

	var expected []string
	for _, m := range registry.Supporting(current.ID) {
		expected = append(expected, m.ID)
	}
	assert.Equal(t, expected, strings.Split(strings.TrimSpace(output), "\n"))
}

func TestListCommandDefaultRegistry(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, ListCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, managers.Default().IDs(), strings.Split(strings.TrimSpace(output), "\n"))
}

func TestManagerListResultEmpty(t *testing.T) {
	r := &managerListResult{}
	assert.Equal(t, "No package managers found", r.String())
	assert.Equal(t, "", r.QuietValue())
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "human-readable output",
			args: []string{"mas"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Mac AppStore")
				assert.Contains(t, output, "macOS")
			},
		},
		{
			name: "quiet prints the CLI name",
			args: []string{"npm", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "npm", strings.TrimSpace(output))
			},
		},
		{
			name: "JSON output",
			args: []string{"apt", "--json"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				data := result["data"].(map[string]any)
				m := data["manager"].(map[string]any)
				assert.Equal(t, "apt", m["id"])
				assert.Equal(t, []any{"linux"}, m["platforms"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutil.ExecuteCommand(t, newShowCmd(loadTestRegistry(t)), tt.args...)
			require.NoError(t, err)
			tt.checkFunc(t, output)
		})
	}
}

func TestShowCommandUnknownManager(t *testing.T) {
	_, err := testutil.ExecuteCommand(t, newShowCmd(loadTestRegistry(t)), "pacman")
	assert.ErrorIs(t, err, managers.ErrUnknownManager)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	_, err = testutil.ExecuteCommand(t, newShowCmd(loadTestRegistry(t)))
	assert.Error(t, err)
}
