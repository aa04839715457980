package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
)

func style(code string, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", code, text, reset)
}

func Bold(text string) string {
	return style(bold, text)
}

func Dim(text string) string {
	return style(dim, text)
}

func Success(text string) string {
	return style(green, text)
}

func Error(text string) string {
	return style(red, text)
}

func Warning(text string) string {
	return style(yellow, text)
}

// PrintStep prints a step being executed with arrow
func PrintStep(w io.Writer, message string) {
	fmt.Fprintf(w, "  %s %s\n", SymbolArrow, message)
}

// PrintSuccess prints a success message with the + symbol
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message with X symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message with ! symbol to stderr
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
