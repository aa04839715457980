package cmd

import (
	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with sample values",
	Long:  `A new configuration file is written to ~/.iostream-config.yaml. It contains a "default" context with a roundtrip script on the os backend and a "scratch" context on the memory backend. The file is not created if it already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
