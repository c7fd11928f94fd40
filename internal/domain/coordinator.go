package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"testwatch.dev/pkg/testwatch/internal/adapter"
	"testwatch.dev/pkg/testwatch/internal/controller"
	m "testwatch.dev/pkg/testwatch/internal/model"
	"testwatch.dev/pkg/testwatch/pkg"
)

// DefaultTick is how often the coordinator re-checks the queue without external triggers.
const DefaultTick = time.Second

// CoordinatorConfig holds the settings a Coordinator needs to launch runs.
type CoordinatorConfig struct {
	Root          string
	Tool          string
	EnvFile       string
	ScanInline    bool
	Tick          time.Duration
	NotifyCommand []string
	ReportPath    string
	OpenCommand   []string
}

type completion struct {
	run    m.Run
	output m.RunOutput
}

// Coordinator owns the pending queue and the Idle/Running state machine.
// At most one test process is in flight. While paused, changes still accumulate
// but no run starts. Coordinator is not safe for concurrent use; Run is the
// only goroutine that should touch it once started.
type Coordinator struct {
	selector   Selector
	builder    CommandBuilder
	classifier *Classifier
	runner     adapter.TestRunnerAdapter
	notifier   adapter.Notifier
	viewer     adapter.ReportViewer
	ui         controller.UI
	config     CoordinatorConfig

	queue       pkg.OrderedSet[m.ChangedPath]
	state       m.RunState
	options     m.OptionsSnapshot
	optionsSeen bool
	current     *m.Run
	done        chan completion

	newID func() string
	now   func() time.Time
}

// NewCoordinator creates an idle, unpaused Coordinator with an empty queue.
func NewCoordinator(
	selector Selector,
	builder CommandBuilder,
	classifier *Classifier,
	runner adapter.TestRunnerAdapter,
	notifier adapter.Notifier,
	viewer adapter.ReportViewer,
	ui controller.UI,
	config CoordinatorConfig,
) *Coordinator {
	if config.Tick <= 0 {
		config.Tick = DefaultTick
	}

	return &Coordinator{
		selector:   selector,
		builder:    builder,
		classifier: classifier,
		runner:     runner,
		notifier:   notifier,
		viewer:     viewer,
		ui:         ui,
		config:     config,
		queue:      pkg.NewOrderedSet[m.ChangedPath](),
		state:      m.Idle,
		done:       make(chan completion, 1),
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// State returns the current run state.
func (c *Coordinator) State() m.RunState {
	return c.state
}

// Pending returns the number of queued paths.
func (c *Coordinator) Pending() int {
	return c.queue.Len()
}

// Options returns the last applied options snapshot.
func (c *Coordinator) Options() m.OptionsSnapshot {
	return c.options
}

// Current returns the in-flight run, if any.
func (c *Coordinator) Current() (m.Run, bool) {
	if c.current == nil {
		return m.Run{}, false
	}

	return *c.current, true
}

// Enqueue adds p to the pending queue. It never starts a run.
// It returns false when p was already queued.
func (c *Coordinator) Enqueue(ctx context.Context, p m.ChangedPath) bool {
	if c.queue.Contains(p) {
		slog.Debug("Change already queued", "path", p)
		return false
	}

	c.queue.Add(p)
	slog.Debug("Queued change", "path", p, "pending", c.queue.Len())
	c.ui.DisplayQueued(ctx, p, c.queue.Len())

	return true
}

// SetOptions applies a freshly read options snapshot.
func (c *Coordinator) SetOptions(ctx context.Context, options m.OptionsSnapshot) {
	previous := c.options
	first := !c.optionsSeen

	c.options = options
	c.optionsSeen = true

	if !first && previous == options {
		return
	}

	if first || previous.Paused != options.Paused {
		if options.Paused {
			slog.Info("PAUSING tests.")
		} else {
			slog.Info("RESUMING tests.")
		}
	}

	if options.CommandLineOptions != "" && (first || previous.CommandLineOptions != options.CommandLineOptions) {
		slog.Info("Using command line options", "options", options.CommandLineOptions)
	}

	c.ui.DisplayOptions(ctx, options)
}

// Tick starts a run when the coordinator is idle, unpaused and has pending changes.
// It is a no-op otherwise, so it can be called as often as convenient.
// It returns true when a test process was dispatched.
func (c *Coordinator) Tick(ctx context.Context) bool {
	if c.state != m.Idle || c.options.Paused || c.queue.Len() == 0 {
		return false
	}

	batch := c.queue.Drain()
	selection := c.selector.Select(ctx, batch, c.config.ScanInline)

	command, ok := c.builder.Build(selection)
	if !ok {
		slog.Info("Don't know what to run", "paths", batch)
		c.ui.DisplayNothingToRun(ctx, batch)

		return false
	}

	run := m.Run{
		ID:          c.newID(),
		Batch:       batch,
		Selection:   selection,
		Command:     command,
		CommandLine: CommandLine(c.config.Tool, command, c.options.CommandLineOptions),
		StartedAt:   c.now(),
	}

	c.state = m.Running
	c.current = &run

	slog.Info("Running tests", "run", run.ID, "command", run.CommandLine, "changes", len(batch))
	c.ui.DisplayRunStarted(ctx, run)

	// Shutdown does not cancel a run that already started.
	runCtx := context.WithoutCancel(ctx)
	request := adapter.RunRequest{
		Dir:         c.config.Root,
		CommandLine: run.CommandLine,
		EnvFile:     c.config.EnvFile,
	}

	go func() {
		output := c.runner.Run(runCtx, request)
		c.done <- completion{run: run, output: output}
	}()

	return true
}

func (c *Coordinator) complete(ctx context.Context, finished completion) {
	c.state = m.Idle
	c.current = nil

	verdict := c.classifier.Classify(finished.output.Err, finished.output.Stdout)

	slog.Info("Run finished",
		"run", finished.run.ID,
		"status", verdict.Status.String(),
		"duration", finished.output.Duration,
		"error", finished.output.Err,
	)

	logRunOutput(finished.run.ID, verdict.Status, finished.output)
	c.ui.DisplayRunFinished(ctx, finished.run, finished.output, verdict)

	if verdict.ShouldNotify {
		c.notifier.Notify(ctx, c.config.NotifyCommand, verdict.Message)
	}

	if verdict.OpenReport {
		c.viewer.Open(ctx, c.config.OpenCommand, c.reportPath())
	}
}

// logRunOutput records what the test process printed when a run did not pass.
func logRunOutput(id string, status m.RunStatus, output m.RunOutput) {
	switch status {
	case m.Failed:
		slog.Warn("Test process output", "run", id, "stdout", output.Stdout, "stderr", output.Stderr)
	case m.Errored:
		slog.Error("Test process output", "run", id, "error", output.Err, "stdout", output.Stdout, "stderr", output.Stderr)
	}
}

func (c *Coordinator) reportPath() string {
	if c.config.ReportPath == "" || filepath.IsAbs(c.config.ReportPath) {
		return c.config.ReportPath
	}

	return filepath.Join(c.config.Root, c.config.ReportPath)
}

// Run is the control loop. It multiplexes change events, options snapshots,
// the periodic tick and process completions until ctx is done.
// A closed input channel is ignored; the loop keeps serving the others.
func (c *Coordinator) Run(ctx context.Context, changes <-chan m.ChangedPath, options <-chan m.OptionsSnapshot) error {
	ticker := time.NewTicker(c.config.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if c.state == m.Running {
				slog.Info("Leaving in-flight run to finish on its own", "run", c.current.ID)
			}

			return nil

		case p, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}

			c.Enqueue(ctx, p)
			c.Tick(ctx)

		case snapshot, ok := <-options:
			if !ok {
				options = nil
				continue
			}

			c.SetOptions(ctx, snapshot)
			c.Tick(ctx)

		case <-ticker.C:
			c.Tick(ctx)

		case finished := <-c.done:
			c.complete(ctx, finished)
			c.Tick(ctx)
		}
	}
}
