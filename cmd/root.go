// Package cmd provides the root command and CLI setup for testwatch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"testwatch.dev/pkg/testwatch/internal/adapter"
	"testwatch.dev/pkg/testwatch/internal/controller"
	"testwatch.dev/pkg/testwatch/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var optionsStore adapter.OptionsStore
var testAdapter adapter.TestRunnerAdapter
var watcher adapter.Watcher
var desktop *adapter.LocalDesktopAdapter
var workflow domain.Workflow
var ui controller.UI

var rootFlag string
var optionsFlag string
var toolFlag string
var subcommandFlag string
var directivesFlag bool
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout), viper.GetBool(uiPlainKey))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	optionsStore = adapter.NewLocalOptionsStore()
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	watcher = adapter.NewFSNotifyWatcher(fsAdapter)
	desktop = adapter.NewLocalDesktopAdapter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		optionsStore,
		testAdapter,
		watcher,
		desktop,
		desktop,
		ui,
	)
}

const rootLongDescription = `testwatch watches a Grails project and re-runs the narrowest
test-app invocation that covers the files you just changed.

Tests are found by convention (grails-app/services/FooService.groovy is
covered by test/unit/FooServiceTests.groovy) and by inline directives:

  // RunTest unit/FooServiceTests
  // RunTest integration/CheckoutIntegrationTests

Edit the options file (testwatch.opts.json by default) to pause runs or to
pass extra command line options to the test tool.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testwatch",
		Short: "Continuous test runner for Grails projects",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&rootFlag, rootFlagName, "r", viper.GetString(rootConfigKey), "project root to watch")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVar(&optionsFlag, optionsFlagName, viper.GetString(optionsFileKey), "options file, relative to the project root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(optionsFlagName), optionsFileKey)

	cmd.PersistentFlags().StringVar(&toolFlag, toolFlagName, viper.GetString(runToolKey), "test tool executable")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(toolFlagName), runToolKey)

	cmd.PersistentFlags().StringVar(&subcommandFlag, subcommandFlagName, viper.GetString(runSubcommandKey), "test tool subcommand that runs tests")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(subcommandFlagName), runSubcommandKey)

	cmd.PersistentFlags().BoolVar(&directivesFlag, directivesFlagName, viper.GetBool(directivesScanKey), "scan changed files for RunTest directives")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(directivesFlagName), directivesScanKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
