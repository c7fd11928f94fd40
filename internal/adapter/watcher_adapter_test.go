package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

func TestFSNotifyWatcher_ReportsWritesInNestedDirectories(t *testing.T) {
	root := t.TempDir()
	services := filepath.Join(root, "grails-app", "services")
	if err := os.MkdirAll(services, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := NewFSNotifyWatcher(NewLocalSourceFSAdapter())
	events, err := watcher.Watch(ctx, []string{root}, nil)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	target := filepath.Join(services, "FooService.groovy")
	writeTestFile(t, target, "class FooService {}\n")

	waitForEvent(t, events, target)
}

func TestFSNotifyWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := NewFSNotifyWatcher(NewLocalSourceFSAdapter())
	events, err := watcher.Watch(ctx, []string{root}, nil)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	newDir := filepath.Join(root, "test", "unit")
	if err := os.MkdirAll(filepath.Dir(newDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	waitForEvent(t, events, filepath.Dir(newDir))

	if err := os.Mkdir(newDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	waitForEvent(t, events, newDir)

	target := filepath.Join(newDir, "FooTests.groovy")
	writeTestFile(t, target, "class FooTests {}\n")
	waitForEvent(t, events, target)
}

func TestFSNotifyWatcher_SingleFileFiltersSiblings(t *testing.T) {
	root := t.TempDir()
	opts := filepath.Join(root, "testwatch.opts.json")
	writeTestFile(t, opts, "{}\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := NewFSNotifyWatcher(NewLocalSourceFSAdapter())
	events, err := watcher.Watch(ctx, nil, []string{opts})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeTestFile(t, filepath.Join(root, "unrelated.txt"), "x\n")
	writeTestFile(t, opts, `{"pause":{"value":"true"}}`+"\n")

	event := waitForEvent(t, events, opts)
	if event.Path != opts {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestFSNotifyWatcher_SkipsMissingRoots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	watcher := NewFSNotifyWatcher(NewLocalSourceFSAdapter())
	events, err := watcher.Watch(ctx, []string{filepath.Join(t.TempDir(), "missing")}, nil)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatalf("expected no events from a missing root")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("events channel was not closed after cancel")
	}
}

func TestTranslateOp(t *testing.T) {
	got := translateOp(fsnotify.Create | fsnotify.Write)
	if !got.Has(m.OpCreate) || !got.Has(m.OpWrite) || got.Has(m.OpRemove) {
		t.Fatalf("translateOp() = %s", got)
	}

	if translateOp(fsnotify.Chmod) != m.OpChmod {
		t.Fatalf("translateOp(Chmod) = %s", translateOp(fsnotify.Chmod))
	}
}

func waitForEvent(t *testing.T, events <-chan m.WatchEvent, path string) m.WatchEvent {
	t.Helper()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("events channel closed before %s was reported", path)
			}
			if event.Path == path {
				return event
			}
		case <-timeout:
			t.Fatalf("timed out waiting for an event on %s", path)
		}
	}
}
