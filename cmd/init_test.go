package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func executeInit(t *testing.T) (string, error) {
	t.Helper()
	useTempLog(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesConfigAndOptionsFiles(t *testing.T) {
	tempDir := chdirTemp(t)

	_, err := executeInit(t)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "test-app")

	options, err := os.ReadFile(filepath.Join(tempDir, defaultOptionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(options), `"pause"`)
	assert.Contains(t, string(options), `"commandLineOptions"`)
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestInitCmd_KeepsExistingOptionsFile(t *testing.T) {
	tempDir := chdirTemp(t)

	optionsPath := filepath.Join(tempDir, defaultOptionsFile)
	existing := `{"pause":{"value":"true"},"commandLineOptions":{"value":"-echoOut"}}`
	require.NoError(t, os.WriteFile(optionsPath, []byte(existing), 0o644))

	out, err := executeInit(t)
	require.NoError(t, err)
	assert.Contains(t, out, "keeping existing")

	contents, err := os.ReadFile(optionsPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(contents))
}
