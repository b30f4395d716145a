package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal (e.g. a pipe) or
// the terminal refuses to report its size.
const DefaultWidth = 80

// TerminalWidth probes the width of the attached terminal, falling back to
// DefaultWidth when stdout is not a terminal.
func TerminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	//
	return uint(width)
}

// IsTerminal reports whether stdout is attached to a terminal, which decides
// whether ANSI escapes are worth emitting.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
