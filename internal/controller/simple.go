package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

var (
	passedLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failedLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	errorLabel  = color.New(color.FgYellow, color.Bold).SprintFunc()
	mutedLabel  = color.New(color.FgHiBlack).SprintFunc()
)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until ctx ends; SimpleUI has no way to be closed by the user.
func (s *SimpleUI) Wait(ctx context.Context) {
	<-ctx.Done()
}

// DisplayWatching prints the banner.
func (s *SimpleUI) DisplayWatching(ctx context.Context, root string, dirs []string, optionsFile string) {
	if ctx.Err() != nil {
		return
	}

	rule := strings.Repeat("-", 72)
	s.printf("%s\n", rule)
	s.printf("Watching %s (%s)... edit %s to pause/resume.\n", root, strings.Join(dirs, ", "), optionsFile)
	s.printf("%s\n", rule)
}

// DisplayOptions prints the current options snapshot.
func (s *SimpleUI) DisplayOptions(ctx context.Context, options m.OptionsSnapshot) {
	if ctx.Err() != nil {
		return
	}

	state := "RESUMING tests."
	if options.Paused {
		state = "PAUSING tests."
	}

	s.printf("%s\n", state)

	if options.CommandLineOptions != "" {
		s.printf("Using command line options %s\n", options.CommandLineOptions)
	}
}

// DisplayQueued prints a queued change.
func (s *SimpleUI) DisplayQueued(ctx context.Context, path m.ChangedPath, pending int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("changed %s %s\n", path.BareName(), mutedLabel(fmt.Sprintf("(%d pending)", pending)))
}

// DisplayNothingToRun reports a batch that mapped to no tests.
func (s *SimpleUI) DisplayNothingToRun(ctx context.Context, batch []m.ChangedPath) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Don't know what to run for %s\n", joinPaths(batch))
}

// DisplayRunStarted prints the command being run.
func (s *SimpleUI) DisplayRunStarted(ctx context.Context, run m.Run) {
	if ctx.Err() != nil {
		return
	}

	s.printf("---------\n")
	s.printf("Running %s\n", run.Command.String())
}

// DisplayRunFinished prints the verdict, with captured output on failures.
func (s *SimpleUI) DisplayRunFinished(ctx context.Context, _ m.Run, output m.RunOutput, verdict m.Classification) {
	if ctx.Err() != nil {
		return
	}

	elapsed := output.Duration.Seconds()

	switch verdict.Status {
	case m.Passed:
		s.printf("%s           in %.1fs\n", passedLabel("OK"), elapsed)
	case m.Failed:
		s.printOutput(output)
		s.printf("%s in %.1fs\n", failedLabel(verdict.Message), elapsed)
	case m.Errored:
		if output.Err != nil {
			s.printf("exec error: %v\n", output.Err)
		}

		s.printOutput(output)
		s.printf("%s in %.1fs\n", errorLabel(verdict.Message), elapsed)
	}
}

// DisplaySelection renders the tests chosen for paths and the resulting command line.
func (s *SimpleUI) DisplaySelection(ctx context.Context, paths []m.ChangedPath, selection m.Selection, commandLine string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if selection.Empty() {
		s.printf("Don't know what to run for %s\n", joinPaths(paths))
		return nil
	}

	s.printf("\n%s", renderSelectionTable(selection))
	s.printf("Command: %s\n", commandLine)

	return nil
}

func renderSelectionTable(selection m.Selection) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Test"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, id := range append(append([]m.TestIdentifier{}, selection.Unit...), selection.Integration...) {
		table.Append([]string{id.Kind.String(), id.Name})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d unit", len(selection.Unit)),
		fmt.Sprintf("%d integration", len(selection.Integration)),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printOutput(output m.RunOutput) {
	if output.Stdout != "" {
		s.printf("stdout: %s\n", strings.TrimRight(output.Stdout, "\n"))
	}

	if output.Stderr != "" {
		s.printf("stderr: %s\n", strings.TrimRight(output.Stderr, "\n"))
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func joinPaths(paths []m.ChangedPath) string {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, string(p))
	}

	return strings.Join(parts, " ")
}
