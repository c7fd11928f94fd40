// Package controller provides the presentation layer for the test watcher.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// UI defines how the watcher reports progress to the developer.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait blocks until the UI is done or ctx ends.
	DisplayWatching(ctx context.Context, root string, dirs []string, optionsFile string)
	DisplayOptions(ctx context.Context, options m.OptionsSnapshot)
	DisplayQueued(ctx context.Context, path m.ChangedPath, pending int)
	DisplayNothingToRun(ctx context.Context, batch []m.ChangedPath)
	DisplayRunStarted(ctx context.Context, run m.Run)
	DisplayRunFinished(ctx context.Context, run m.Run, output m.RunOutput, verdict m.Classification)
	DisplaySelection(ctx context.Context, paths []m.ChangedPath, selection m.Selection, commandLine string) error
}

// NewUI returns the interactive TUI on a terminal, otherwise the line-based SimpleUI.
func NewUI(cmd *cobra.Command, tty bool, plain bool) UI {
	if tty && !plain {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
