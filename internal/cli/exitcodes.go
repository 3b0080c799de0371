package cli

import (
	"errors"

	"github.com/mpmtools/mpm/internal/labels"
	"github.com/mpmtools/mpm/internal/managers"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: filesystem errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, invalid flag combinations, an output path that
	// cannot be resolved without --output.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown package manager IDs.
	ExitNotFound = 3

	// ExitDataErr indicates the data on disk does not match what mpm generates.
	// Use for: a stale labels file detected by --check.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid label names or colors, duplicate labels.
	ExitValidation = 5
)

// ErrorCode returns the machine-readable code of a command error and a
// suggestion for fixing it, which may be empty
func ErrorCode(err error) (code, suggestion string) {
	switch {
	case errors.Is(err, labels.ErrStale):
		return "STALE_LABELS", "run 'go generate ./cmd' or 'mpm labels generate'"
	case errors.Is(err, labels.ErrNoModuleDir):
		return "NO_MODULE_DIR", "pass --output or set MPM_LABELS_FILE"
	case errors.Is(err, labels.ErrEmptyName),
		errors.Is(err, labels.ErrInvalidColor),
		errors.Is(err, labels.ErrDuplicateLabel):
		return "VALIDATION_ERROR", "drop --strict to write the catalog anyway"
	case errors.Is(err, managers.ErrUnknownManager):
		return "MANAGER_NOT_FOUND", "run 'mpm managers list' to see known IDs"
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ""
	default:
		return "ERROR", ""
	}
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, labels.ErrStale):
		return ExitDataErr
	case errors.Is(err, labels.ErrEmptyName),
		errors.Is(err, labels.ErrInvalidColor),
		errors.Is(err, labels.ErrDuplicateLabel):
		return ExitValidation
	case errors.Is(err, ErrUsage), errors.Is(err, labels.ErrNoModuleDir):
		return ExitUsage
	case errors.Is(err, managers.ErrUnknownManager):
		return ExitNotFound
	default:
		return ExitError
	}
}
