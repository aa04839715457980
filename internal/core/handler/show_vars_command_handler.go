package handler

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"iostream/internal/core"
)

type ShowVarsCommandHandler struct {
	configRepository core.ConfigRepository
	out              io.Writer
}

func ProvideShowVarsCommandHandler(
	configRepository core.ConfigRepository,
) ShowVarsCommandHandler {
	return ShowVarsCommandHandler{
		configRepository: configRepository,
		out:              os.Stdout,
	}
}

func (h *ShowVarsCommandHandler) Handle() error {
	values, err := core.CreateTemplatingValues(h.configRepository)
	if err != nil {
		return err
	}

	prettyPrintMap(h.out, values, 0)

	return nil
}

func prettyPrintMap(w io.Writer, values map[string]interface{}, indent int) {
	indentString := strings.Repeat(" ", indent)
	for _, key := range sortedKeys(values) {
		switch value := values[key].(type) {
		case map[string]interface{}:
			fmt.Fprintf(w, "%s%s:\n", indentString, key)
			prettyPrintMap(w, value, indent+2)
		case map[string]string:
			fmt.Fprintf(w, "%s%s:\n", indentString, key)
			nested := make(map[string]interface{}, len(value))
			for k, v := range value {
				nested[k] = v
			}
			prettyPrintMap(w, nested, indent+2)
		default:
			fmt.Fprintf(w, "%s%s: %v\n", indentString, key, value)
		}
	}
}

func sortedKeys(values map[string]interface{}) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
