package domain

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"testwatch.dev/pkg/testwatch/internal/adapter"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// Resolver derives the conventional test file for a changed source file.
type Resolver interface {
	Resolve(ctx context.Context, changed m.ChangedPath, kind m.TestKind) (m.ChangedPath, bool)
}

type resolver struct {
	adapter.SourceFSAdapter
	root        string
	conventions Conventions
}

// NewResolver creates a Resolver that checks candidates below root.
func NewResolver(fsAdapter adapter.SourceFSAdapter, root string, conventions Conventions) Resolver {
	return &resolver{
		SourceFSAdapter: fsAdapter,
		root:            root,
		conventions:     conventions,
	}
}

// Resolve returns the first candidate that differs from changed and exists on disk.
func (r *resolver) Resolve(ctx context.Context, changed m.ChangedPath, kind m.TestKind) (m.ChangedPath, bool) {
	for _, candidate := range r.candidates(changed, kind) {
		// A file is never its own derived test.
		if candidate == changed {
			continue
		}

		if r.isFile(ctx, candidate) {
			slog.Debug("Resolved conventional test", "source", changed, "test", candidate, "kind", kind)
			return candidate, true
		}
	}

	return "", false
}

// candidates lists one rewrite per matching source root, in convention order.
func (r *resolver) candidates(changed m.ChangedPath, kind m.TestKind) []m.ChangedPath {
	testRoot := r.conventions.TestRoot(kind)
	suffix := r.conventions.Suffix(kind)

	var out []m.ChangedPath

	for _, sourceRoot := range r.conventions.SourceRoots {
		if sourceRoot == "" || !strings.Contains(string(changed), sourceRoot) {
			continue
		}

		rewritten := strings.Replace(string(changed), sourceRoot, testRoot, 1)
		out = append(out, m.ChangedPath(insertSuffix(rewritten, suffix)))
	}

	return out
}

func (r *resolver) isFile(ctx context.Context, candidate m.ChangedPath) bool {
	info, err := r.FileInfo(ctx, candidate.FSPath(r.root))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// insertSuffix puts suffix right before the first dot of the last element,
// matching how BareName cuts the name.
func insertSuffix(p, suffix string) string {
	dir, base := path.Split(p)
	if i := strings.Index(base, "."); i >= 0 {
		return dir + base[:i] + suffix + base[i:]
	}

	return p + suffix
}
