package domain

import (
	"strings"

	m "testwatch.dev/pkg/testwatch/internal/model"
)

// DefaultFailureMarker is printed by the test tool when any test fails.
const DefaultFailureMarker = "Tests FAILED"

// Notification messages.
const (
	MessageTestsFailed = "Tests FAILED"
	MessageRunError    = "Error Running Tests"
	MessageTestsPassed = "OK"
)

// Classifier decides the outcome of a run and whether to interrupt the developer.
// It remembers the previous outcome to avoid repeating failure pop-ups.
type Classifier struct {
	marker     string
	lastFailed bool
}

// NewClassifier creates a Classifier that looks for marker in stdout.
func NewClassifier(marker string) *Classifier {
	if marker == "" {
		marker = DefaultFailureMarker
	}

	return &Classifier{marker: marker}
}

// Classify inspects the exit error and captured stdout of a finished run.
func (c *Classifier) Classify(exitErr error, stdout string) m.Classification {
	var verdict m.Classification

	switch {
	case strings.Contains(stdout, c.marker):
		verdict = m.Classification{
			Status:       m.Failed,
			ShouldNotify: !c.lastFailed,
			OpenReport:   !c.lastFailed,
			Message:      MessageTestsFailed,
		}
	case exitErr != nil:
		verdict = m.Classification{
			Status:       m.Errored,
			ShouldNotify: true,
			Message:      MessageRunError,
		}
	default:
		verdict = m.Classification{
			Status:  m.Passed,
			Message: MessageTestsPassed,
		}
	}

	c.lastFailed = verdict.Status == m.Failed

	return verdict
}

// LastFailed reports whether the most recent run failed.
func (c *Classifier) LastFailed() bool {
	return c.lastFailed
}
