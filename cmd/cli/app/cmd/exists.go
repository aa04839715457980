package cmd

import (
	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(existsCmd)
}

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Checks whether a file can be opened",
	Long:  `Prints true when the path can be opened for reading and false otherwise`,
	Args:  cobra.MatchAll(cobra.ExactArgs(1), validateBackendFlag),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectStreamCommandHandler()
		if err != nil {
			return err
		}

		backend := handler.ResolveBackend(backendFlags())
		return handler.HandleExists(backend, args[0])
	},
}
