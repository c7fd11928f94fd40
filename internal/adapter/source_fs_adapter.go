// Package adapter contains infrastructure adapters for the testwatch CLI.
package adapter

import (
	"context"
	"os"
	"path/filepath"
)

// SourceFSAdapter abstracts the filesystem reads the selection logic relies on.
// It hides direct `os` access so selection can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path string) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Walk visits every directory below root, root included.
	Walk(ctx context.Context, root string, fn func(dir string) error) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(path)
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is a watched project file
	return os.ReadFile(path)
}

// Walk calls fn for root and every directory beneath it.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root string, fn func(dir string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !d.IsDir() {
			return nil
		}

		return fn(path)
	})
}
