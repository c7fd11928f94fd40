package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testwatch.dev/pkg/testwatch/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "testwatch", configBaseName)
	assert.Equal(t, "testwatch.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "TESTWATCH", envPrefix)
	assert.Equal(t, "testwatch.opts.json", defaultOptionsFile)
	assert.Equal(t, ".testwatch.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, []string{"grails-app", "src", "test"}, viper.GetStringSlice(watchRootsKey))
	assert.Equal(t, time.Second, viper.GetDuration(watchTickKey))
	assert.Equal(t, domain.DefaultFailureMarker, viper.GetString(runFailureMarkerKey))
	assert.Equal(t, defaultReportPath, viper.GetString(reportPathKey))
	assert.Equal(t, defaultOpenCommand(), viper.GetStringSlice(reportOpenCommandKey))
	assert.Empty(t, viper.GetStringSlice(notifyCommandKey))
}

func TestConventionsFromConfig(t *testing.T) {
	assert.Equal(t, domain.DefaultConventions(), conventionsFromConfig())

	viper.Set(conventionsUnitSuffixKey, "Spec")
	t.Cleanup(func() { viper.Set(conventionsUnitSuffixKey, domain.DefaultConventions().UnitSuffix) })

	assert.Equal(t, "Spec", conventionsFromConfig().UnitSuffix)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	configureLogger(filepath.Join(t.TempDir(), "watch.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
	assert.Same(t, globalLogger, slog.Default())
}
