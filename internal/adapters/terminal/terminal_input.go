package terminal

import (
	"fmt"
	"io"
	"os"

	"iostream/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads standard input using golang.org/x/term for terminal detection.
type TerminalInput struct {
	stdin *os.File
}

// ProvideTerminalInput creates a new TerminalInput adapter.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{stdin: os.Stdin}
}

func (t *TerminalInput) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(t.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(t.stdin.Fd()))
}
