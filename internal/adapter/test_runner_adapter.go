package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/joho/godotenv"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// RunRequest describes one invocation of the external test tool.
type RunRequest struct {
	// Dir is the working directory, normally the watch root.
	Dir string
	// CommandLine is handed to the shell verbatim.
	CommandLine string
	// EnvFile optionally names a dotenv file whose values are added to the environment.
	EnvFile string
}

// TestRunnerAdapter abstracts test process execution.
type TestRunnerAdapter interface {
	// Run executes the request and blocks until the process exits.
	Run(ctx context.Context, req RunRequest) m.RunOutput
}

// LocalTestRunnerAdapter runs command lines through the system shell using os/exec.
type LocalTestRunnerAdapter struct {
	shell []string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter that uses `sh -c`.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{
		shell: []string{"sh", "-c"},
	}
}

// Run executes the command line. No timeout is applied; the tool bounds itself.
func (a *LocalTestRunnerAdapter) Run(ctx context.Context, req RunRequest) m.RunOutput {
	start := time.Now()

	env, err := a.environment(req.EnvFile)
	if err != nil {
		return m.RunOutput{Err: err, Duration: time.Since(start)}
	}

	args := append(append([]string{}, a.shell[1:]...), req.CommandLine)

	// #nosec G204 - the command line comes from the user's own configuration
	cmd := exec.CommandContext(ctx, a.shell[0], args...)
	cmd.Dir = req.Dir
	cmd.Env = env

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Starting test process", "dir", req.Dir, "command", req.CommandLine)

	err = cmd.Run()

	return m.RunOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
		Duration: time.Since(start),
	}
}

func (a *LocalTestRunnerAdapter) environment(envFile string) ([]string, error) {
	env := os.Environ()

	if strings.TrimSpace(envFile) == "" {
		return env, nil
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		slog.Error("Failed to read env file", "path", envFile, "error", err)
		return nil, fmt.Errorf("read env file %s: %w", envFile, err)
	}

	for key, value := range values {
		env = append(env, key+"="+value)
	}

	return env, nil
}
