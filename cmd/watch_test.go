package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testwatch.dev/pkg/testwatch/internal/domain"
	domainmocks "testwatch.dev/pkg/testwatch/internal/domain/mocks"
)

func newConfiguredWatchCmd() *cobra.Command {
	cmd := newWatchCmd()
	configureWatchFlags(cmd)

	return cmd
}

func TestWatchCmd_HelpShowsConfigDefaults(t *testing.T) {
	tick := watchCmd.Flags().Lookup(tickFlagName)
	require.NotNil(t, tick)
	assert.Equal(t, "1s", tick.DefValue)

	var out bytes.Buffer
	watchCmd.SetOut(&out)
	t.Cleanup(func() { watchCmd.SetOut(nil) })
	require.NoError(t, watchCmd.Help())
	assert.Contains(t, out.String(), `how often to re-check the queue (default "1s")`)
}

func TestWatchCmd_Defaults(t *testing.T) {
	useTempLog(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newConfiguredWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Watch(mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Root == "." &&
			assert.ObjectsAreEqual([]string{"grails-app", "src", "test"}, args.Dirs) &&
			args.OptionsFile == "testwatch.opts.json" &&
			args.Tick == time.Second &&
			args.Tool == "grails" &&
			args.Subcommand == "test-app" &&
			args.FailureMarker == "Tests FAILED" &&
			args.ScanInline &&
			args.ReportPath == "target/test-reports/html/index.html" &&
			args.Conventions.UnitRoot == "/test/unit"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"watch"})
	require.NoError(t, cmd.Execute())
}

func TestWatchCmd_Flags(t *testing.T) {
	useTempLog(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newConfiguredWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Watch(mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return assert.ObjectsAreEqual([]string{"**/*.swp", "target/**"}, args.Ignore) &&
			args.Tick == 250*time.Millisecond &&
			args.EnvFile == ".env.test"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"watch", "-x", "**/*.swp", "--ignore", "target/**", "--tick", "250ms", "--env-file", ".env.test"})
	require.NoError(t, cmd.Execute())
}

func TestWatchCmd_PropagatesError(t *testing.T) {
	useTempLog(t)
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newConfiguredWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Watch(mock.Anything, mock.Anything).Return(errors.New("read options: invalid character")).Once()

	cmd.SetArgs([]string{"watch"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read options")
}

func TestWatchCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newConfiguredWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", "src"})

	require.Error(t, cmd.Execute())
}
