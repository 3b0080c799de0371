package labels

import "errors"

// Label catalog errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("label name cannot be empty")
	ErrInvalidColor   = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrDuplicateLabel = errors.New("duplicate label name")

	// ErrNoModuleDir indicates the default output path cannot be resolved
	// because the module source directory is unknown
	ErrNoModuleDir = errors.New("module source directory unknown (binary built with -trimpath?); pass --output or set MPM_LABELS_FILE")

	// ErrStale indicates the labels file on disk differs from the generated catalog
	ErrStale = errors.New("labels file is out of date")
)
