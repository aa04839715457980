package cmd

import (
	"fmt"
	"slices"

	"iostream/cmd/cli/app"
	"iostream/internal/core/domain"

	"github.com/spf13/cobra"
)

func ScriptArgsValidator(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return err
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return fmt.Errorf("error injecting config repo: %v", err)
	}
	configContext, err := configRepo.LoadCurrentConfigurationContext()
	if err != nil {
		return fmt.Errorf("error loading current configuration context: %v", err)
	}

	for _, wantedScriptName := range args {
		if _, ok := configContext.GetScript(wantedScriptName); !ok {
			return fmt.Errorf("script %s not found", wantedScriptName)
		}
	}

	return nil
}

func ScriptArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	configContext, err := configRepo.LoadCurrentConfigurationContext()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var matchingScripts []string
	for scriptName := range configContext.Scripts {
		matchingScripts = append(matchingScripts, scriptName)
	}
	slices.Sort(matchingScripts)

	return matchingScripts, cobra.ShellCompDirectiveNoFileComp
}

// backendFlags returns the --backend and --root values. Execute registers
// them, so they are empty when a command runs without it.
func backendFlags() (string, string) {
	if backendType == nil || backendRoot == nil {
		return "", ""
	}
	return *backendType, *backendRoot
}

func validateBackendFlag(cmd *cobra.Command, args []string) error {
	flagType, _ := backendFlags()
	switch domain.BackendType(flagType) {
	case "", domain.BackendOS, domain.BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown backend '%s', expected %s or %s", flagType, domain.BackendOS, domain.BackendMemory)
	}
}
