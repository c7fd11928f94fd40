package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"testwatch.dev/pkg/testwatch/internal/domain"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

func TestClassifier_Classify(t *testing.T) {
	exitErr := errors.New("exit status 1")

	type run struct {
		err    error
		stdout string
		want   m.Classification
	}

	failed := func(first bool) m.Classification {
		return m.Classification{Status: m.Failed, ShouldNotify: first, OpenReport: first, Message: domain.MessageTestsFailed}
	}
	passed := m.Classification{Status: m.Passed, Message: domain.MessageTestsPassed}
	errored := m.Classification{Status: m.Errored, ShouldNotify: true, Message: domain.MessageRunError}

	tests := []struct {
		name string
		runs []run
	}{
		{
			name: "pass",
			runs: []run{{stdout: "Tests PASSED", want: passed}},
		},
		{
			name: "marker wins over a clean exit",
			runs: []run{{stdout: "... Tests FAILED - view reports", want: failed(true)}},
		},
		{
			name: "consecutive failures notify once",
			runs: []run{
				{err: exitErr, stdout: "Tests FAILED", want: failed(true)},
				{err: exitErr, stdout: "Tests FAILED", want: failed(false)},
				{stdout: "ok", want: passed},
				{err: exitErr, stdout: "Tests FAILED", want: failed(true)},
			},
		},
		{
			name: "infrastructure errors always notify",
			runs: []run{
				{err: exitErr, want: errored},
				{err: exitErr, want: errored},
			},
		},
		{
			name: "error between failures resets edge detection",
			runs: []run{
				{stdout: "Tests FAILED", want: failed(true)},
				{err: exitErr, stdout: "command not found", want: errored},
				{stdout: "Tests FAILED", want: failed(true)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := domain.NewClassifier("")

			for i, r := range tt.runs {
				got := classifier.Classify(r.err, r.stdout)
				assert.Equal(t, r.want, got, "run %d", i)
				assert.Equal(t, r.want.Status == m.Failed, classifier.LastFailed(), "run %d", i)
			}
		})
	}
}

func TestClassifier_CustomMarker(t *testing.T) {
	classifier := domain.NewClassifier("BUILD FAILED")

	assert.Equal(t, m.Passed, classifier.Classify(nil, "Tests FAILED").Status)
	assert.Equal(t, m.Failed, classifier.Classify(nil, "BUILD FAILED").Status)
}
