package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLocalDesktopAdapter_Notify(t *testing.T) {
	adapter := NewLocalDesktopAdapter()
	out := filepath.Join(t.TempDir(), "notified.txt")

	// The message arrives as $0 of the inline script.
	adapter.Notify(context.Background(), []string{"sh", "-c", `printf '%s' "$0" > ` + out}, "Tests FAILED")

	got := waitForFile(t, out)
	if got != "Tests FAILED" {
		t.Fatalf("Notify() delivered %q, want %q", got, "Tests FAILED")
	}
}

func TestLocalDesktopAdapter_Open(t *testing.T) {
	adapter := NewLocalDesktopAdapter()
	out := filepath.Join(t.TempDir(), "opened.txt")

	adapter.Open(context.Background(), []string{"sh", "-c", `printf '%s' "$0" > ` + out}, "target/test-reports/html/index.html")

	got := waitForFile(t, out)
	if got != "target/test-reports/html/index.html" {
		t.Fatalf("Open() delivered %q", got)
	}
}

func TestLocalDesktopAdapter_DisabledAndMissingCommands(t *testing.T) {
	adapter := NewLocalDesktopAdapter()

	// Neither call may panic or block.
	adapter.Notify(context.Background(), nil, "ignored")
	adapter.Notify(context.Background(), []string{""}, "ignored")
	adapter.Open(context.Background(), []string{"testwatch-command-that-does-not-exist"}, "ignored")
}

func waitForFile(t *testing.T, path string) string {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return strings.TrimSpace(string(data))
		}
		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %s", path)
	return ""
}
