package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode describes how much terminal capability output may assume.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text but takes no input.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen program.
	OutputModeInteractive
)

// String returns the lowercase name of the mode.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// defaultTerminalWidth is used when the width cannot be detected.
const defaultTerminalWidth = 100

// DetectOutputMode picks an OutputMode for stdout. plain and noColor force
// plain output; forceColor allows styling on a non-terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, os.LookupEnv, IsTerminal(os.Stdout), IsTerminal(os.Stdin))
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	lookupEnv func(string) (string, bool),
	stdoutTTY, stdinTTY bool,
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, _ := lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}
	if !stdoutTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if _, ci := lookupEnv("CI"); ci || !stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of w when it is a terminal, or a default.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTerminalWidth
}
