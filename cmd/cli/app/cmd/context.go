package cmd

import (
	"fmt"

	"iostream/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	contextCmd.AddCommand(contextListCmd)
	contextCmd.AddCommand(contextPrintCmd)
	contextCmd.AddCommand(contextSetCmd)
	rootCmd.AddCommand(contextCmd)
}

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manages the configuration context",
	Long:  `Commands for managing and viewing the configuration context`,
}

var contextListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available contexts",
	Long:  `Reads the available contexts from the configuration file and prints them to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectContextCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

var contextPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Prints the current context",
	Long:  `Prints the current context, including its backend and scripts, as json to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectContextCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandlePrint()
	},
}

var contextSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Sets the current context",
	Long:  `Sets the current context to the specified context`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		configRepo, err := app.InjectConfigRepo()
		if err != nil {
			return fmt.Errorf("error injecting config repo: %v", err)
		}
		config, err := configRepo.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		if !config.ContextExists(args[0]) {
			return fmt.Errorf("context '%s' not found", args[0])
		}
		return nil
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		configRepo, err := app.InjectConfigRepo()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		config, err := configRepo.LoadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var contexts []string
		for _, context := range config.Contexts {
			contexts = append(contexts, context.Name)
		}
		return contexts, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectContextCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet(args[0])
	},
}
