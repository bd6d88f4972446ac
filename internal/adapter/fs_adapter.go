// Package adapter contains filesystem and persistence adapters for the keytrim CLI.
package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// RenameFSAdapter abstracts the filesystem operations the domain layer
// relies on when planning and applying renames. It hides direct `os`
// access so planning and execution can be tested without touching the disk.
type RenameFSAdapter interface {
	// Walk traverses every entry under root, depth first and in lexical
	// order within each directory.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether any entry (file, directory or link) occupies path.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// Rename moves a file from one path to another.
	Rename(from, to m.Path) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalRenameFSAdapter implements RenameFSAdapter on the local disk.
type LocalRenameFSAdapter struct{}

// NewLocalRenameFSAdapter constructs a LocalRenameFSAdapter instance ready to
// be wired into the workflow.
func NewLocalRenameFSAdapter() *LocalRenameFSAdapter {
	return &LocalRenameFSAdapter{}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalRenameFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalRenameFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists checks the path without following symlinks.
func (a *LocalRenameFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Lstat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// MkdirAll creates a directory and all parent directories.
func (a *LocalRenameFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// Rename moves from to to via os.Rename.
func (a *LocalRenameFSAdapter) Rename(from, to m.Path) error {
	return os.Rename(string(from), string(to))
}
