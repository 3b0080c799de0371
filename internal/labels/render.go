package labels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/mpmtools/mpm/internal/models"
)

// DefaultOutput is the labels file location, relative to the module directory
const DefaultOutput = "../.github/labels.json"

const indent = "    "

// Render serializes labels as an indented JSON array with no trailing newline.
// Non-ASCII characters are written as \uXXXX escapes.
func Render(labels []models.Label) ([]byte, error) {
	if labels == nil {
		labels = []models.Label{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(labels); err != nil {
		return nil, fmt.Errorf("failed to encode labels: %w", err)
	}

	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites every non-ASCII rune of encoded JSON as a \u escape,
// using surrogate pairs outside the basic multilingual plane. Non-ASCII bytes
// only occur inside JSON strings, so the result stays valid JSON.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out.WriteRune(r)
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&out, `\u%04x`, r)
	}
	return out.Bytes()
}

// Write replaces the file at path with data. Missing parent directories are
// not created.
func Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write labels file: %w", err)
	}
	return nil
}

// ResolveOutput returns path as an absolute, cleaned path. Relative paths are
// taken from baseDir. An empty baseDir means the module directory is unknown:
// explicit relative paths are then taken from the working directory and the
// default path fails with ErrNoModuleDir.
func ResolveOutput(baseDir, path string) (string, error) {
	if path == "" {
		if baseDir == "" {
			return "", ErrNoModuleDir
		}
		path = DefaultOutput
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return abs, nil
}
