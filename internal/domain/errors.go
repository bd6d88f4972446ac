package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// Validation failures, wrapped by ValidationError.
var (
	ErrBlankFolder     = errors.New("folder is required")
	ErrFolderNotFound  = errors.New("folder does not exist")
	ErrNotDirectory    = errors.New("not a directory")
	ErrBlankKeyword    = errors.New("keyword is required")
	ErrInvalidPattern  = errors.New("invalid exclude pattern")
	ErrInvalidPlanItem = errors.New("invalid plan item")
)

// ValidationError reports caller input that was rejected before any
// filesystem work started.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EnumerationError reports that the folder tree could not be scanned. It is
// fatal to the build pass: no partial plan is returned.
type EnumerationError struct {
	Root m.Path
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerate %s: %v", e.Root, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
