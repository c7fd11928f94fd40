package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"testwatch.dev/pkg/testwatch/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "testwatch"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName       = "root"
	optionsFlagName    = "options"
	toolFlagName       = "tool"
	subcommandFlagName = "subcommand"
	directivesFlagName = "directives"
	verboseFlagName    = "verbose"
	ignoreFlagName     = "ignore"
	tickFlagName       = "tick"
	envFileFlagName    = "env-file"

	rootConfigKey                   = "root"
	watchRootsKey                   = "watch.roots"
	watchIgnoreKey                  = "watch.ignore"
	watchTickKey                    = "watch.tick"
	optionsFileKey                  = "options.file"
	runToolKey                      = "run.tool"
	runSubcommandKey                = "run.subcommand"
	runFailureMarkerKey             = "run.failure_marker"
	runEnvFileKey                   = "run.env_file"
	directivesScanKey               = "directives.scan"
	conventionsSourceRootsKey       = "conventions.source_roots"
	conventionsUnitRootKey          = "conventions.unit.root"
	conventionsUnitSuffixKey        = "conventions.unit.suffix"
	conventionsIntegrationRootKey   = "conventions.integration.root"
	conventionsIntegrationSuffixKey = "conventions.integration.suffix"
	notifyCommandKey                = "notify.command"
	reportPathKey                   = "report.path"
	reportOpenCommandKey            = "report.open_command"
	uiPlainKey                      = "ui.plain"

	defaultRoot        = "."
	defaultOptionsFile = "testwatch.opts.json"
	defaultTool        = "grails"
	defaultReportPath  = "target/test-reports/html/index.html"
	defaultWatchTick   = time.Second

	envPrefix = "TESTWATCH"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".testwatch.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultWatchRoots = []string{"grails-app", "src", "test"}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults() {
	conventions := domain.DefaultConventions()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(watchRootsKey, defaultWatchRoots)
	viper.SetDefault(watchIgnoreKey, []string{})
	viper.SetDefault(watchTickKey, defaultWatchTick.String())
	viper.SetDefault(optionsFileKey, defaultOptionsFile)
	viper.SetDefault(runToolKey, defaultTool)
	viper.SetDefault(runSubcommandKey, domain.DefaultSubcommand)
	viper.SetDefault(runFailureMarkerKey, domain.DefaultFailureMarker)
	viper.SetDefault(runEnvFileKey, "")
	viper.SetDefault(directivesScanKey, true)
	viper.SetDefault(conventionsSourceRootsKey, conventions.SourceRoots)
	viper.SetDefault(conventionsUnitRootKey, conventions.UnitRoot)
	viper.SetDefault(conventionsUnitSuffixKey, conventions.UnitSuffix)
	viper.SetDefault(conventionsIntegrationRootKey, conventions.IntegrationRoot)
	viper.SetDefault(conventionsIntegrationSuffixKey, conventions.IntegrationSuffix)
	viper.SetDefault(notifyCommandKey, []string{})
	viper.SetDefault(reportPathKey, defaultReportPath)
	viper.SetDefault(reportOpenCommandKey, defaultOpenCommand())
	viper.SetDefault(uiPlainKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func defaultOpenCommand() []string {
	if runtime.GOOS == "darwin" {
		return []string{"open"}
	}

	return []string{"xdg-open"}
}

// conventionsFromConfig assembles the path conventions from viper.
func conventionsFromConfig() domain.Conventions {
	return domain.Conventions{
		SourceRoots:       viper.GetStringSlice(conventionsSourceRootsKey),
		UnitRoot:          viper.GetString(conventionsUnitRootKey),
		UnitSuffix:        viper.GetString(conventionsUnitSuffixKey),
		IntegrationRoot:   viper.GetString(conventionsIntegrationRootKey),
		IntegrationSuffix: viper.GetString(conventionsIntegrationSuffixKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
