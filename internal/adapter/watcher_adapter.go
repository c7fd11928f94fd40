package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// Watcher delivers filesystem change notifications.
type Watcher interface {
	// Watch subscribes recursively to dirs and individually to files and streams
	// events until ctx is done, at which point the channel is closed.
	// Missing directories are skipped with a warning.
	Watch(ctx context.Context, dirs []string, files []string) (<-chan m.WatchEvent, error)
}

// FSNotifyWatcher is the fsnotify-backed Watcher.
type FSNotifyWatcher struct {
	fs SourceFSAdapter
}

// NewFSNotifyWatcher constructs a watcher that walks directories with fs.
func NewFSNotifyWatcher(fs SourceFSAdapter) *FSNotifyWatcher {
	return &FSNotifyWatcher{fs: fs}
}

type watchSession struct {
	watcher   *fsnotify.Watcher
	fs        SourceFSAdapter
	recursive map[string]struct{}
	files     map[string]struct{}
}

// Watch implements Watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, dirs []string, files []string) (<-chan m.WatchEvent, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	session := &watchSession{
		watcher:   watcher,
		fs:        w.fs,
		recursive: make(map[string]struct{}),
		files:     make(map[string]struct{}),
	}

	if err := session.addAll(ctx, dirs, files); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan m.WatchEvent, 64)

	go session.listen(ctx, events)

	return events, nil
}

func (s *watchSession) addAll(ctx context.Context, dirs []string, files []string) error {
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", dir, err)
		}

		info, err := s.fs.FileInfo(ctx, abs)
		if err != nil || !info.IsDir() {
			slog.Warn("Skipping missing watch root", "dir", abs, "error", err)
			continue
		}

		if err := s.addTree(ctx, abs); err != nil {
			return err
		}
	}

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", file, err)
		}

		s.files[abs] = struct{}{}

		// Editors often replace files on save, so the parent directory is watched instead.
		if err := s.watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", file, err)
		}
	}

	return nil
}

func (s *watchSession) addTree(ctx context.Context, root string) error {
	return s.fs.Walk(ctx, root, func(dir string) error {
		if err := s.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}

		s.recursive[dir] = struct{}{}

		return nil
	})
}

func (s *watchSession) listen(ctx context.Context, events chan<- m.WatchEvent) {
	defer close(events)
	defer func() { _ = s.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !s.handle(ctx, event, events) {
				return
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("Watcher error", "error", err)
		}
	}
}

// handle tracks directory changes and forwards relevant events. It returns false when ctx ends.
func (s *watchSession) handle(ctx context.Context, event fsnotify.Event, events chan<- m.WatchEvent) bool {
	name := filepath.Clean(event.Name)
	_, inTree := s.recursive[filepath.Dir(name)]
	_, isFile := s.files[name]

	if !inTree && !isFile {
		return true
	}

	if inTree && event.Has(fsnotify.Create) {
		if info, err := s.fs.FileInfo(ctx, name); err == nil && info.IsDir() {
			if err := s.addTree(ctx, name); err != nil {
				slog.Warn("Failed to watch new directory", "dir", name, "error", err)
			}
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		delete(s.recursive, name)
	}

	select {
	case <-ctx.Done():
		return false
	case events <- m.WatchEvent{Path: name, Op: translateOp(event.Op)}:
		return true
	}
}

func translateOp(op fsnotify.Op) m.WatchOp {
	var out m.WatchOp

	if op.Has(fsnotify.Create) {
		out |= m.OpCreate
	}

	if op.Has(fsnotify.Write) {
		out |= m.OpWrite
	}

	if op.Has(fsnotify.Remove) {
		out |= m.OpRemove
	}

	if op.Has(fsnotify.Rename) {
		out |= m.OpRename
	}

	if op.Has(fsnotify.Chmod) {
		out |= m.OpChmod
	}

	return out
}
