package model

import "time"

// RunState tracks whether a test process is in flight.
type RunState int

const (
	// Idle means no test process is running.
	Idle RunState = iota
	// Running means a test process has been dispatched and has not completed.
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}

	return "idle"
}

// RunStatus is the outcome of a finished run.
type RunStatus int

const (
	// Passed means the tool finished without the failure marker.
	Passed RunStatus = iota
	// Failed means the failure marker appeared in stdout.
	Failed
	// Errored means the tool could not be launched or exited non-zero without the marker.
	Errored
)

func (s RunStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// Run describes one dispatched test invocation.
type Run struct {
	ID          string
	Batch       []ChangedPath
	Selection   Selection
	Command     Command
	CommandLine string
	StartedAt   time.Time
}

// RunOutput is what the process collaborator captured.
type RunOutput struct {
	Stdout   string
	Stderr   string
	Err      error
	Duration time.Duration
}

// Classification is the verdict on a finished run.
type Classification struct {
	Status       RunStatus
	ShouldNotify bool
	OpenReport   bool
	Message      string
}
