package cmd

import (
	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

var writeMode *string

func init() {
	writeMode = writeCmd.Flags().StringP("mode", "m", "w", "Mode the file is opened with (w, a, r+, w+, a+)")
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:   "write <path> [text]",
	Short: "Writes text to a file",
	Long:  `Opens the path as a File with the given mode and writes the text in one write. Without text, stdin is written instead.`,
	Args:  cobra.MatchAll(cobra.RangeArgs(1, 2), validateBackendFlag),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectStreamCommandHandler()
		if err != nil {
			return err
		}

		var text *string
		if len(args) == 2 {
			text = &args[1]
		}
		backend := handler.ResolveBackend(backendFlags())
		return handler.HandleWrite(backend, args[0], *writeMode, text)
	},
}
