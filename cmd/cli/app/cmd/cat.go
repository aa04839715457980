package cmd

import (
	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

var catLines *bool

func init() {
	catLines = catCmd.Flags().BoolP("lines", "l", false, "Read line by line with gets instead of one read")
	rootCmd.AddCommand(catCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Prints a file",
	Long:  `Opens the path as a File with mode "r" and copies its content to stdout`,
	Args:  cobra.MatchAll(cobra.ExactArgs(1), validateBackendFlag),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectStreamCommandHandler()
		if err != nil {
			return err
		}

		backend := handler.ResolveBackend(backendFlags())
		return handler.HandleCat(backend, args[0], *catLines)
	},
}
