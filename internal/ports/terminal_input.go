package ports

// TerminalInput reads what the user types or pipes into the process.
type TerminalInput interface {
	// ReadAll reads standard input to its end.
	ReadAll() ([]byte, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
