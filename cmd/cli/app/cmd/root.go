package cmd

import (
	"os"

	"iostream/internal/adapters/templater"
	"iostream/internal/cli/output"
	"iostream/internal/core"
	"iostream/internal/core/host"
	"iostream/internal/core/stream"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose     *bool
	backendType *string
	backendRoot *string
)

var rootCmd = &cobra.Command{
	Use:   "iostream",
	Short: "Buffered file streams driven by scripts",
	Long: `iostream opens files as buffered IO and File streams and drives them
with small YAML scripts stored in named contexts.

Configuration is stored in ~/.iostream-config.yaml. Run 'iostream initialize'
to create a sample configuration file.

Common workflows:
  iostream run roundtrip          Run a script from the current context
  iostream cat <path>             Print a file through a File stream
  iostream write <path> <text>    Write text through a File stream
  iostream context set <name>     Switch to a different context`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(*verbose)
		if err != nil {
			return err
		}
		stream.SetLogger(logger)
		host.SetLogger(logger)
		core.SetLogger(logger)
		templater.SetLogger(logger)
		return nil
	},
	SilenceErrors: true,
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.Encoding = "console"
	return config.Build()
}

func Execute() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	backendType = rootCmd.PersistentFlags().String("backend", "", "Backend for cat, write and exists (os or memory); defaults to the current context's")
	backendRoot = rootCmd.PersistentFlags().String("root", "", "Root directory of the backend")
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
