package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default testwatch.yaml and options file",
		Long: `Create a testwatch.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually, and an options file in the
project root with runs unpaused.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			optionsPath := viper.GetString(optionsFileKey)
			if !filepath.IsAbs(optionsPath) {
				optionsPath = filepath.Join(viper.GetString(rootConfigKey), optionsPath)
			}

			err = optionsStore.WriteDefault(cmd.Context(), optionsPath)
			if errors.Is(err, fs.ErrExist) {
				cmd.Printf("keeping existing %s\n", optionsPath)
				return nil
			}

			if err != nil {
				return fmt.Errorf("failed to write options file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
