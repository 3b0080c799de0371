// Package platform lists the operating systems mpm supports.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
)

// OS identifiers
const (
	Linux   = "linux"
	MacOS   = "macos"
	Windows = "windows"
)

// ErrUnsupportedOS indicates a GOOS value mpm has no definition for
var ErrUnsupportedOS = errors.New("unsupported operating system")

// OS pairs an identifier with its human-readable label
type OS struct {
	ID    string
	Label string
}

var definitions = []OS{
	{ID: Linux, Label: "Linux"},
	{ID: MacOS, Label: "macOS"},
	{ID: Windows, Label: "Windows"},
}

// goosToID maps runtime.GOOS values to OS identifiers
var goosToID = map[string]string{
	"linux":   Linux,
	"darwin":  MacOS,
	"windows": Windows,
}

// All returns every supported OS in definition order
func All() []OS {
	return slices.Clone(definitions)
}

// IDs returns all OS identifiers, sorted
func IDs() []string {
	ids := make([]string, 0, len(definitions))
	for _, def := range definitions {
		ids = append(ids, def.ID)
	}
	slices.Sort(ids)
	return ids
}

// AllLabels returns the labels of all supported OSes, sorted
func AllLabels() []string {
	labels := make([]string, 0, len(definitions))
	for _, def := range definitions {
		labels = append(labels, def.Label)
	}
	slices.Sort(labels)
	return labels
}

// LabelFor returns the label of the OS with the given identifier
func LabelFor(id string) (string, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def.Label, true
		}
	}
	return "", false
}

// IsKnown reports whether id is a supported OS identifier
func IsKnown(id string) bool {
	_, ok := LabelFor(id)
	return ok
}

// FromGOOS maps a runtime.GOOS value to its OS definition
func FromGOOS(goos string) (OS, error) {
	id, ok := goosToID[goos]
	if !ok {
		return OS{}, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
	label, _ := LabelFor(id)
	return OS{ID: id, Label: label}, nil
}

// Current returns the OS the binary is running on
func Current() (OS, error) {
	return FromGOOS(runtime.GOOS)
}
