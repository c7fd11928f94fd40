package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"testwatch.dev/pkg/testwatch/internal/domain"
)

const whichLongDescription = `Show which tests a change would run, without running them.

Paths are relative to the project root, for example:
  testwatch which grails-app/services/FooService.groovy`

// whichCmd represents the which command.
var whichCmd = newWhichCmd()

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which [paths...]",
		Short: "Show the tests and command line selected for paths",
		Long:  whichLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Which(cmd.Context(), domain.WhichArgs{
				Root:        viper.GetString(rootConfigKey),
				Paths:       args,
				ScanInline:  viper.GetBool(directivesScanKey),
				Conventions: conventionsFromConfig(),
				Tool:        viper.GetString(runToolKey),
				Subcommand:  viper.GetString(runSubcommandKey),
				OptionsFile: viper.GetString(optionsFileKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
