package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"testwatch.dev/pkg/testwatch/internal/domain"
)

var watchIgnoreFlag []string
var watchTickFlag string
var watchEnvFileFlag string

const watchLongDescription = `Watch the project and run the tests covering every change.

Changes under the watch roots (grails-app, src and test by default) are queued
while a run is in progress and go out together in the next run. Set
"pause" to "true" in the options file to hold runs without losing changes.`

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the project and run affected tests",
		Long:  watchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, watchArgsFromConfig())
		},
	}

	return cmd
}

func init() {
	configureWatchFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&watchIgnoreFlag, ignoreFlagName, "x", viper.GetStringSlice(watchIgnoreKey), "ignore changes matching a glob, e.g. '**/*.swp' (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(ignoreFlagName), watchIgnoreKey)

	cmd.Flags().StringVar(&watchTickFlag, tickFlagName, viper.GetString(watchTickKey), "how often to re-check the queue")
	bindFlagToConfig(cmd.Flags().Lookup(tickFlagName), watchTickKey)

	cmd.Flags().StringVar(&watchEnvFileFlag, envFileFlagName, viper.GetString(runEnvFileKey), "dotenv file loaded into the test process environment")
	bindFlagToConfig(cmd.Flags().Lookup(envFileFlagName), runEnvFileKey)
}

func watchArgsFromConfig() domain.WatchArgs {
	return domain.WatchArgs{
		Root:          viper.GetString(rootConfigKey),
		Dirs:          viper.GetStringSlice(watchRootsKey),
		OptionsFile:   viper.GetString(optionsFileKey),
		Ignore:        viper.GetStringSlice(watchIgnoreKey),
		Tick:          viper.GetDuration(watchTickKey),
		Tool:          viper.GetString(runToolKey),
		Subcommand:    viper.GetString(runSubcommandKey),
		FailureMarker: viper.GetString(runFailureMarkerKey),
		EnvFile:       viper.GetString(runEnvFileKey),
		ScanInline:    viper.GetBool(directivesScanKey),
		Conventions:   conventionsFromConfig(),
		NotifyCommand: viper.GetStringSlice(notifyCommandKey),
		ReportPath:    viper.GetString(reportPathKey),
		OpenCommand:   viper.GetStringSlice(reportOpenCommandKey),
	}
}
