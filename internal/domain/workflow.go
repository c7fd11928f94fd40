package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"testwatch.dev/pkg/testwatch/internal/adapter"
	"testwatch.dev/pkg/testwatch/internal/controller"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// optionsDebounce collapses the burst of events editors emit when saving the options file.
const optionsDebounce = 100 * time.Millisecond

// WatchArgs contains the arguments for watching a project.
type WatchArgs struct {
	Root          string
	Dirs          []string
	OptionsFile   string
	Ignore        []string
	Tick          time.Duration
	Tool          string
	Subcommand    string
	FailureMarker string
	EnvFile       string
	ScanInline    bool
	Conventions   Conventions
	NotifyCommand []string
	ReportPath    string
	OpenCommand   []string
}

// WhichArgs contains the arguments for a dry-run selection.
type WhichArgs struct {
	Root        string
	Paths       []string
	ScanInline  bool
	Conventions Conventions
	Tool        string
	Subcommand  string
	OptionsFile string
}

// Workflow defines the watcher use cases.
type Workflow interface {
	// Watch runs tests for changes under args.Root until ctx ends or the UI is closed.
	Watch(ctx context.Context, args WatchArgs) error
	// Which prints the tests and command line the given paths would trigger.
	Which(ctx context.Context, args WhichArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OptionsStore
	controller.UI
	runner   adapter.TestRunnerAdapter
	watcher  adapter.Watcher
	notifier adapter.Notifier
	viewer   adapter.ReportViewer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	optionsStore adapter.OptionsStore,
	runner adapter.TestRunnerAdapter,
	watcher adapter.Watcher,
	notifier adapter.Notifier,
	viewer adapter.ReportViewer,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		OptionsStore:    optionsStore,
		UI:              ui,
		runner:          runner,
		watcher:         watcher,
		notifier:        notifier,
		viewer:          viewer,
	}
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	for _, pattern := range args.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	optionsPath := underRoot(root, args.OptionsFile)

	initial, err := w.initialOptions(ctx, optionsPath)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	dirs := make([]string, 0, len(args.Dirs))
	for _, dir := range args.Dirs {
		dirs = append(dirs, underRoot(root, dir))
	}

	events, err := w.watcher.Watch(watchCtx, dirs, []string{optionsPath})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if err := w.Start(watchCtx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	coordinator := NewCoordinator(
		NewSelector(w.SourceFSAdapter, NewResolver(w.SourceFSAdapter, root, args.Conventions), root, args.Conventions),
		NewCommandBuilder(args.Subcommand),
		NewClassifier(args.FailureMarker),
		w.runner,
		w.notifier,
		w.viewer,
		w.UI,
		CoordinatorConfig{
			Root:          root,
			Tool:          args.Tool,
			EnvFile:       underRootOrEmpty(root, args.EnvFile),
			ScanInline:    args.ScanInline,
			Tick:          args.Tick,
			NotifyCommand: args.NotifyCommand,
			ReportPath:    args.ReportPath,
			OpenCommand:   args.OpenCommand,
		},
	)

	slog.Info("Watching", "root", root, "dirs", args.Dirs, "options", optionsPath)
	w.DisplayWatching(watchCtx, root, args.Dirs, args.OptionsFile)
	coordinator.SetOptions(watchCtx, initial)

	changes := make(chan m.ChangedPath)
	options := make(chan m.OptionsSnapshot, 1)

	group, groupCtx := errgroup.WithContext(watchCtx)

	group.Go(func() error {
		router := eventRouter{
			store:       w.OptionsStore,
			root:        root,
			optionsPath: optionsPath,
			ignore:      args.Ignore,
			reload:      debounce.New(optionsDebounce),
		}

		return router.route(groupCtx, events, changes, options)
	})

	group.Go(func() error {
		return coordinator.Run(groupCtx, changes, options)
	})

	group.Go(func() error {
		w.Wait(groupCtx)
		cancel()

		return nil
	})

	return group.Wait()
}

// initialOptions reads the options file at startup. A missing file means defaults;
// a malformed one is fatal so the developer notices before anything runs.
func (w *workflow) initialOptions(ctx context.Context, optionsPath string) (m.OptionsSnapshot, error) {
	snapshot, err := w.Read(ctx, optionsPath)
	if err == nil {
		return snapshot, nil
	}

	if errors.Is(err, adapter.ErrOptionsNotFound) {
		slog.Warn("Options file not found, using defaults", "path", optionsPath)
		return m.OptionsSnapshot{}, nil
	}

	return m.OptionsSnapshot{}, fmt.Errorf("read options: %w", err)
}

func (w *workflow) Which(ctx context.Context, args WhichArgs) error {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	paths := make([]m.ChangedPath, 0, len(args.Paths))
	for _, arg := range args.Paths {
		paths = append(paths, m.ParseChangedPath(arg))
	}

	selector := NewSelector(w.SourceFSAdapter, NewResolver(w.SourceFSAdapter, root, args.Conventions), root, args.Conventions)
	selection := selector.Select(ctx, paths, args.ScanInline)

	commandLine := ""
	if command, ok := NewCommandBuilder(args.Subcommand).Build(selection); ok {
		commandLine = CommandLine(args.Tool, command, w.extraOptions(ctx, underRoot(root, args.OptionsFile)))
	}

	if err := w.DisplaySelection(ctx, paths, selection, commandLine); err != nil {
		return fmt.Errorf("display selection: %w", err)
	}

	return nil
}

func (w *workflow) extraOptions(ctx context.Context, optionsPath string) string {
	snapshot, err := w.Read(ctx, optionsPath)
	if err != nil {
		slog.Debug("No command line options", "path", optionsPath, "error", err)
		return ""
	}

	return snapshot.CommandLineOptions
}

// eventRouter turns raw watch events into queue entries and options reloads.
type eventRouter struct {
	store       adapter.OptionsStore
	root        string
	optionsPath string
	ignore      []string
	reload      func(func())
}

func (r eventRouter) route(
	ctx context.Context,
	events <-chan m.WatchEvent,
	changes chan<- m.ChangedPath,
	options chan<- m.OptionsSnapshot,
) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			if !event.Op.Has(m.OpCreate | m.OpWrite | m.OpRemove | m.OpRename) {
				continue
			}

			if filepath.Clean(event.Path) == r.optionsPath {
				r.reload(func() { r.reloadOptions(ctx, options) })
				continue
			}

			changed, ok := r.accept(event)
			if !ok {
				continue
			}

			select {
			case <-ctx.Done():
				return nil
			case changes <- changed:
			}
		}
	}
}

func (r eventRouter) accept(event m.WatchEvent) (m.ChangedPath, bool) {
	changed, err := m.NewChangedPath(r.root, event.Path)
	if err != nil {
		slog.Debug("Dropping event outside root", "path", event.Path, "error", err)
		return "", false
	}

	for _, pattern := range r.ignore {
		if matched, _ := doublestar.Match(pattern, changed.Trimmed()); matched {
			slog.Debug("Ignoring change", "path", changed, "pattern", pattern)
			return "", false
		}
	}

	return changed, true
}

// reloadOptions re-reads the options file. On failure the previous snapshot stays in effect.
func (r eventRouter) reloadOptions(ctx context.Context, options chan<- m.OptionsSnapshot) {
	if ctx.Err() != nil {
		return
	}

	snapshot, err := r.store.Read(ctx, r.optionsPath)
	if err != nil {
		slog.Error("Failed to reload options, keeping previous", "path", r.optionsPath, "error", err)
		return
	}

	select {
	case <-ctx.Done():
	case options <- snapshot:
	}
}

func underRoot(root, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	return filepath.Join(root, name)
}

func underRootOrEmpty(root, name string) string {
	if name == "" {
		return ""
	}

	return underRoot(root, name)
}
