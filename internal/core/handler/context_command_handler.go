package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"iostream/internal/cli/output"
	"iostream/internal/core"
)

type ContextCommandHandler struct {
	configRepository core.ConfigRepository
	out              io.Writer
}

func ProvideContextCommandHandler(
	configRepository core.ConfigRepository,
) ContextCommandHandler {
	return ContextCommandHandler{
		configRepository: configRepository,
		out:              os.Stdout,
	}
}

func (h *ContextCommandHandler) HandleSet(contextName string) error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	if !config.ContextExists(contextName) {
		return fmt.Errorf("context not found: %s", contextName)
	}
	return h.configRepository.SaveCurrentContextName(contextName)
}

// HandleList prints every context, marking the current one. A missing or
// unreadable current-context file only means nothing is marked.
func (h *ContextCommandHandler) HandleList() error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	currentContextName, _ := h.configRepository.LoadCurrentContextName()
	for _, context := range config.Contexts {
		if context.Name == currentContextName {
			fmt.Fprintf(h.out, "%s %s\n", output.SymbolInfo, output.Bold(context.Name))
		} else {
			fmt.Fprintf(h.out, "  %s\n", context.Name)
		}
	}
	return nil
}

func (h *ContextCommandHandler) HandlePrint() error {
	configContext, err := h.configRepository.LoadCurrentConfigurationContext()
	if err != nil {
		return err
	}
	return prettyPrint(h.out, configContext)
}

func prettyPrint(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
