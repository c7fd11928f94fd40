package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempLog keeps command tests from writing a log file into the package directory.
func useTempLog(t *testing.T) {
	t.Helper()

	previous := viper.GetString(logFilenameKey)
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "testwatch.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, previous) })
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "testwatch", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useTempLog(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "// RunTest unit/FooServiceTests")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"watch", "which", "init", "config", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{rootFlagName, optionsFlagName, toolFlagName, subcommandFlagName, directivesFlagName, verboseFlagName} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, optionsStore)
	assert.NotNil(t, testAdapter)
	assert.NotNil(t, watcher)
	assert.NotNil(t, desktop)
	assert.NotNil(t, workflow)
}

func TestBindFlagToConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "bind"}
	cmd.Flags().String("sample-flag", "from-flag", "")

	bindFlagToConfig(cmd.Flags().Lookup("sample-flag"), "test.sample_flag")
	require.NoError(t, cmd.Flags().Set("sample-flag", "changed"))

	assert.Equal(t, "changed", viper.GetString("test.sample_flag"))
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute would call os.Exit(1), so only the command error is checked here.
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	_, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
