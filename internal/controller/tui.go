package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

const (
	maxRecentLines = 12
	maxOutputLines = 10
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	erroredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(newWatchModel(), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			slog.Error("TUI stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for it to release the terminal.
func (t *TUI) Close(_ context.Context) {
	program, done := t.handles()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits or ctx ends.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.handles()
	if done == nil {
		<-ctx.Done()
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayWatching implements UI.
func (t *TUI) DisplayWatching(_ context.Context, root string, dirs []string, optionsFile string) {
	t.send(watchingMsg{root: root, dirs: dirs, optionsFile: optionsFile})
}

// DisplayOptions implements UI.
func (t *TUI) DisplayOptions(_ context.Context, options m.OptionsSnapshot) {
	t.send(optionsMsg{options: options})
}

// DisplayQueued implements UI.
func (t *TUI) DisplayQueued(_ context.Context, path m.ChangedPath, pending int) {
	t.send(queuedMsg{path: path, pending: pending})
}

// DisplayNothingToRun implements UI.
func (t *TUI) DisplayNothingToRun(_ context.Context, batch []m.ChangedPath) {
	t.send(nothingToRunMsg{batch: batch})
}

// DisplayRunStarted implements UI.
func (t *TUI) DisplayRunStarted(_ context.Context, run m.Run) {
	t.send(runStartedMsg{run: run})
}

// DisplayRunFinished implements UI.
func (t *TUI) DisplayRunFinished(_ context.Context, run m.Run, output m.RunOutput, verdict m.Classification) {
	t.send(runFinishedMsg{run: run, output: output, verdict: verdict})
}

// DisplaySelection prints the selection without starting the program.
func (t *TUI) DisplaySelection(ctx context.Context, paths []m.ChangedPath, selection m.Selection, commandLine string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if selection.Empty() {
		_, err := fmt.Fprintf(t.output, "Don't know what to run for %s\n", joinPaths(paths))
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%sCommand: %s\n", renderSelectionTable(selection), commandLine)

	return err
}

func (t *TUI) handles() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	program, _ := t.handles()
	if program == nil {
		return
	}

	program.Send(msg)
}

type watchingMsg struct {
	root        string
	dirs        []string
	optionsFile string
}

type optionsMsg struct {
	options m.OptionsSnapshot
}

type queuedMsg struct {
	path    m.ChangedPath
	pending int
}

type nothingToRunMsg struct {
	batch []m.ChangedPath
}

type runStartedMsg struct {
	run m.Run
}

type runFinishedMsg struct {
	run     m.Run
	output  m.RunOutput
	verdict m.Classification
}

// watchModel is the Bubble Tea model for the watch screen.
type watchModel struct {
	root        string
	dirs        []string
	optionsFile string
	options     m.OptionsSnapshot
	state       m.RunState
	pending     int
	current     string
	last        *runFinishedMsg
	recent      []string
	spinner     spinner.Model
	quitting    bool
}

func newWatchModel() watchModel {
	return watchModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (wm watchModel) Init() tea.Cmd {
	return wm.spinner.Tick
}

//nolint:cyclop // One case per message type.
func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			wm.quitting = true
			return wm, tea.Quit
		}

		return wm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		wm.spinner, cmd = wm.spinner.Update(msg)

		return wm, cmd

	case watchingMsg:
		wm.root = msg.root
		wm.dirs = msg.dirs
		wm.optionsFile = msg.optionsFile

	case optionsMsg:
		wm.options = msg.options
		if msg.options.Paused {
			wm.log("PAUSING tests.")
		} else {
			wm.log("RESUMING tests.")
		}

	case queuedMsg:
		wm.pending = msg.pending
		wm.log(fmt.Sprintf("changed %s", msg.path.BareName()))

	case nothingToRunMsg:
		wm.pending = 0
		wm.log(fmt.Sprintf("Don't know what to run for %s", joinPaths(msg.batch)))

	case runStartedMsg:
		wm.state = m.Running
		wm.pending = 0
		wm.current = msg.run.Command.String()
		wm.log(fmt.Sprintf("Running %s", wm.current))

	case runFinishedMsg:
		wm.state = m.Idle
		wm.current = ""
		finished := msg
		wm.last = &finished
		wm.log(fmt.Sprintf("%s in %.1fs", msg.verdict.Message, msg.output.Duration.Seconds()))
	}

	return wm, nil
}

func (wm *watchModel) log(line string) {
	wm.recent = append(wm.recent, line)
	if len(wm.recent) > maxRecentLines {
		wm.recent = wm.recent[len(wm.recent)-maxRecentLines:]
	}
}

func (wm watchModel) View() string {
	if wm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                  testwatch - Continuous Tests                  ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")

	if wm.root != "" {
		fmt.Fprintf(&b, "  %s %s (%s)\n", headerStyle.Render("Watching"), wm.root, strings.Join(wm.dirs, ", "))
	}

	b.WriteString("  " + wm.statusLine() + "\n")

	if wm.last != nil {
		fmt.Fprintf(&b, "  Last run: %s  %s\n", verdictLabel(wm.last.verdict), mutedStyle.Render(wm.last.run.Command.String()))

		if wm.last.verdict.Status != m.Passed {
			for _, line := range outputTail(wm.last.output, maxOutputLines) {
				fmt.Fprintf(&b, "    %s\n", mutedStyle.Render(line))
			}
		}
	}

	if len(wm.recent) > 0 {
		b.WriteString("\n")

		for _, line := range wm.recent {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  edit %s to pause/resume | q: quit", wm.optionsFile)))
	b.WriteString("\n")

	return b.String()
}

func (wm watchModel) statusLine() string {
	switch {
	case wm.state == m.Running:
		return fmt.Sprintf("%s Running %s", wm.spinner.View(), wm.current)
	case wm.options.Paused:
		return pausedStyle.Render(fmt.Sprintf("Paused (%d pending)", wm.pending))
	default:
		return fmt.Sprintf("Idle (%d pending)", wm.pending)
	}
}

func verdictLabel(verdict m.Classification) string {
	switch verdict.Status {
	case m.Passed:
		return passedStyle.Render("PASSED")
	case m.Failed:
		return failedStyle.Render("FAILED")
	default:
		return erroredStyle.Render("ERROR")
	}
}

// outputTail returns the last n lines the process printed, stdout before stderr.
func outputTail(output m.RunOutput, n int) []string {
	var lines []string

	for _, stream := range []string{output.Stdout, output.Stderr} {
		stream = strings.TrimRight(stream, "\n")
		if stream != "" {
			lines = append(lines, strings.Split(stream, "\n")...)
		}
	}

	if output.Err != nil {
		lines = append(lines, fmt.Sprintf("exec error: %v", output.Err))
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return lines
}
