package handler

import (
	"fmt"
	"io"
	"os"

	"iostream/internal/cli/output"
	"iostream/internal/core"
	"iostream/internal/core/host"
	"iostream/internal/ports"
)

type RunCommandHandler struct {
	configRepository core.ConfigRepository
	templater        ports.Templater
	openerFactory    ports.StreamOpenerFactory
	out              io.Writer
}

func ProvideRunCommandHandler(
	configRepository core.ConfigRepository,
	templater ports.Templater,
	openerFactory ports.StreamOpenerFactory,
) RunCommandHandler {
	return RunCommandHandler{
		configRepository: configRepository,
		templater:        templater,
		openerFactory:    openerFactory,
		out:              os.Stdout,
	}
}

// Handle runs the named scripts of the current context in order, each
// against a fresh runtime on the context's backend. It stops at the first
// failing script.
func (h *RunCommandHandler) Handle(executionPlan []string) error {
	configContext, err := h.configRepository.LoadCurrentConfigurationContext()
	if err != nil {
		return err
	}

	renderValues, err := core.CreateTemplatingValues(h.configRepository)
	if err != nil {
		return err
	}

	opener, err := h.openerFactory.ForBackend(configContext.Backend)
	if err != nil {
		return err
	}

	for _, scriptName := range executionPlan {
		script, ok := configContext.GetScript(scriptName)
		if !ok {
			return fmt.Errorf("script '%s' not found in context '%s'", scriptName, configContext.Name)
		}

		output.PrintStep(h.out, fmt.Sprintf("Running %s", output.Bold(scriptName)))

		interpreter := host.NewInterpreter(host.NewRuntime(opener), h.templater, renderValues, h.out)
		if err := interpreter.Run(scriptName, script); err != nil {
			return err
		}
	}
	return nil
}
