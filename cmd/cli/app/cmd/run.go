package cmd

import (
	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:               "run [script...]",
	Short:             "Runs scripts",
	Long:              `Runs the named scripts of the current context in the given order`,
	Args:              ScriptArgsValidator,
	ValidArgsFunction: ScriptArgsCompletion,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectRunCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(args)
	},
}
