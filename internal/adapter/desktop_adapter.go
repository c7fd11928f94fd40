package adapter

import (
	"context"
	"log/slog"
	"os/exec"
)

// Notifier shows a short desktop notification. Calls are fire-and-forget.
type Notifier interface {
	// Notify launches command with message appended as its last argument.
	// An empty command disables notifications.
	Notify(ctx context.Context, command []string, message string)
}

// ReportViewer opens a generated test report. Calls are fire-and-forget.
type ReportViewer interface {
	// Open launches command with target appended as its last argument.
	Open(ctx context.Context, command []string, target string)
}

// LocalDesktopAdapter implements Notifier and ReportViewer by spawning processes.
type LocalDesktopAdapter struct{}

// NewLocalDesktopAdapter constructs a LocalDesktopAdapter.
func NewLocalDesktopAdapter() *LocalDesktopAdapter {
	return &LocalDesktopAdapter{}
}

// Notify implements Notifier.
func (a *LocalDesktopAdapter) Notify(ctx context.Context, command []string, message string) {
	a.launch(ctx, "notify", command, message)
}

// Open implements ReportViewer.
func (a *LocalDesktopAdapter) Open(ctx context.Context, command []string, target string) {
	a.launch(ctx, "open report", command, target)
}

// launch starts the process and reaps it in the background; the caller never waits.
func (a *LocalDesktopAdapter) launch(ctx context.Context, purpose string, command []string, lastArg string) {
	if len(command) == 0 || command[0] == "" {
		slog.Debug("Skipping disabled command", "purpose", purpose)
		return
	}

	if ctx.Err() != nil {
		return
	}

	args := append(append([]string{}, command[1:]...), lastArg)

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.Command(command[0], args...)
	if err := cmd.Start(); err != nil {
		slog.Error("Failed to launch command", "purpose", purpose, "command", command[0], "error", err)
		return
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("Command exited with error", "purpose", purpose, "command", command[0], "error", err)
		}
	}()
}
