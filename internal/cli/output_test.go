package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mpmtools/mpm/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithPath struct {
	Path  string
	Count int
}

func (m mockDataWithPath) QuietValue() string {
	return m.Path
}

func (m mockDataWithPath) String() string {
	return "wrote " + m.Path
}

type mockDataPlain struct {
	Name  string
	Value int
}

// captureStderr captures stderr during function execution
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, result map[string]any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, result map[string]any) {
				dataMap := result["data"].(map[string]any)
				if dataMap["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", dataMap["test"])
				}
			},
		},
		{
			name: "struct with quiet value",
			data: mockDataWithPath{Path: "/tmp/labels.json", Count: 3},
			validate: func(t *testing.T, result map[string]any) {
				dataMap := result["data"].(map[string]any)
				if dataMap["Path"] != "/tmp/labels.json" {
					t.Errorf("Expected data.Path to be '/tmp/labels.json', got %v", dataMap["Path"])
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]any) {
				if result["data"] != nil {
					t.Errorf("Expected data to be nil, got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			output := testutil.CaptureOutput(t, func() {
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})

			result := testutil.ParseJSON(t, output)
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantOutput string
	}{
		{
			name:       "quiet value is printed alone",
			data:       mockDataWithPath{Path: "/tmp/labels.json"},
			wantOutput: "/tmp/labels.json",
		},
		{
			name:       "data without quiet value falls back to human output",
			data:       mockDataPlain{Name: "Test", Value: 1},
			wantOutput: "{Name:Test Value:1}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if strings.TrimSpace(output) != tt.wantOutput {
				t.Errorf("Expected output %q, got %q", tt.wantOutput, output)
			}
		})
	}
}

func TestOutputFormatter_QuietTakesPrecedenceOverJSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true, Quiet: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Success(mockDataWithPath{Path: "/tmp/labels.json"})
	})
	if strings.TrimSpace(output) != "/tmp/labels.json" {
		t.Errorf("Expected quiet output, got %q", output)
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Success(mockDataWithPath{Path: "/tmp/labels.json"})
	})
	if strings.TrimSpace(output) != "wrote /tmp/labels.json" {
		t.Errorf("Expected Stringer output, got %q", output)
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.ErrorWithSuggestion("STALE_LABELS", "labels file is out of date", "run mpm labels generate")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "STALE_LABELS" {
		t.Errorf("Expected code STALE_LABELS, got %v", errData["code"])
	}
	if errData["suggestion"] != "run mpm labels generate" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}

	var stdout string
	stderr := captureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			_ = formatter.Error("WRITE_ERROR", "permission denied")
		})
	})

	if stdout != "" {
		t.Errorf("Expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "permission denied") {
		t.Errorf("Expected message on stderr, got %q", stderr)
	}
	if strings.Contains(stderr, "Suggestion") {
		t.Errorf("Expected no suggestion line, got %q", stderr)
	}
}
