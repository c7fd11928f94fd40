package domain

import (
	"context"
	"log/slog"

	"testwatch.dev/pkg/testwatch/internal/adapter"
	m "testwatch.dev/pkg/testwatch/internal/model"
	"testwatch.dev/pkg/testwatch/pkg"
)

// Selector maps a batch of changed paths to the tests that cover them.
type Selector interface {
	Select(ctx context.Context, paths []m.ChangedPath, scanInline bool) m.Selection
}

type selector struct {
	adapter.SourceFSAdapter
	Resolver
	root        string
	conventions Conventions
}

// NewSelector creates a Selector reading files below root.
func NewSelector(fsAdapter adapter.SourceFSAdapter, resolver Resolver, root string, conventions Conventions) Selector {
	return &selector{
		SourceFSAdapter: fsAdapter,
		Resolver:        resolver,
		root:            root,
		conventions:     conventions,
	}
}

// Select walks paths in order. Test files select themselves; other files contribute
// their RunTest directives (when scanInline is set) and their conventional tests.
// Each test appears at most once per kind, in first-seen order.
func (s *selector) Select(ctx context.Context, paths []m.ChangedPath, scanInline bool) m.Selection {
	unit := pkg.NewOrderedSet[m.TestIdentifier]()
	integration := pkg.NewOrderedSet[m.TestIdentifier]()

	collect := func(id m.TestIdentifier) {
		if id.Kind == m.Integration {
			integration.Add(id)
			return
		}

		unit.Add(id)
	}

	for _, changed := range paths {
		if ctx.Err() != nil {
			break
		}

		fsPath := changed.FSPath(s.root)

		info, err := s.FileInfo(ctx, fsPath)
		if err != nil {
			// Removed files (or editor temp files) show up as stale events.
			slog.Debug("Skipping stale path", "path", changed, "error", err)
			continue
		}

		if info.IsDir() {
			continue
		}

		if kind, ok := s.conventions.KindOf(changed); ok {
			collect(m.TestIdentifier{Kind: kind, Name: changed.BareName()})
			continue
		}

		if scanInline {
			s.collectDirectives(ctx, changed, fsPath, collect)
		}

		for _, kind := range []m.TestKind{m.Unit, m.Integration} {
			if test, ok := s.Resolve(ctx, changed, kind); ok {
				collect(m.TestIdentifier{Kind: kind, Name: test.BareName()})
			}
		}
	}

	return m.Selection{
		Unit:        unit.Items(),
		Integration: integration.Items(),
	}
}

func (s *selector) collectDirectives(ctx context.Context, changed m.ChangedPath, fsPath string, collect func(m.TestIdentifier)) {
	content, err := s.ReadFile(ctx, fsPath)
	if err != nil {
		slog.Warn("Failed to read changed file", "path", changed, "error", err)
		return
	}

	for _, directive := range ScanDirectives(string(content)) {
		collect(directive.Identifier())
	}
}
