// Package model defines the data structures shared by the test watcher.
package model

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when a path does not live under the watch root.
var ErrOutsideRoot = errors.New("path is outside the watch root")

// ChangedPath is a slash-separated path relative to the watch root.
// The leading "/" denotes the watch root, not the filesystem root.
type ChangedPath string

// NewChangedPath normalizes an absolute (or root-relative) filesystem path to a ChangedPath.
func NewChangedPath(root, name string) (ChangedPath, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}

	if !filepath.IsAbs(name) {
		name = filepath.Join(absRoot, name)
	}

	rel, err := filepath.Rel(absRoot, filepath.Clean(name))
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", name, err)
	}

	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s: %w", name, ErrOutsideRoot)
	}

	if rel == "." {
		return "/", nil
	}

	return ChangedPath("/" + rel), nil
}

// ParseChangedPath accepts user input such as "grails-app/x.groovy" or
// "/grails-app/x.groovy" and returns its normalized form.
func ParseChangedPath(value string) ChangedPath {
	cleaned := path.Clean("/" + filepath.ToSlash(strings.TrimSpace(value)))
	return ChangedPath(cleaned)
}

// String implements fmt.Stringer.
func (p ChangedPath) String() string {
	return string(p)
}

// Under reports whether p equals root or lies beneath it.
func (p ChangedPath) Under(root string) bool {
	s := string(p)
	root = strings.TrimSuffix(root, "/")

	return s == root || strings.HasPrefix(s, root+"/")
}

// BareName returns the last path element up to its first dot.
// "/test/unit/FooTests.groovy" becomes "FooTests".
func (p ChangedPath) BareName() string {
	base := path.Base(string(p))
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}

	return base
}

// Trimmed returns the path without its leading slash, suitable for glob matching.
func (p ChangedPath) Trimmed() string {
	return strings.TrimPrefix(string(p), "/")
}

// FSPath joins p onto the filesystem root directory.
func (p ChangedPath) FSPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(p.Trimmed()))
}
