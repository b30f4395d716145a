// Package termio provides the small amount of terminal machinery the CLI
// needs: ANSI colour escapes and an aligned table printer.
package termio

import "fmt"

// TermBlack represents black
const TermBlack = uint(0)

// TermRed represents red
const TermRed = uint(1)

// TermGreen represents green
const TermGreen = uint(2)

// TermYellow represents yellow
const TermYellow = uint(3)

// TermBlue represents blue
const TermBlue = uint(4)

// TermMagenta represents magenta
const TermMagenta = uint(5)

// TermCyan represents cyan
const TermCyan = uint(6)

// TermWhite represents white
const TermWhite = uint(7)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033", 0}
}

// ResetAnsiEscape constructs a reset escape.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0", 1}
}

// BoldAnsiEscape constructs a bold escape.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1", 1}
}

// FgColour sets the foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.code(col + 30)
}

// BgColour sets the background colour.
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return p.code(col + 40)
}

// Build constructs the final escape.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}

func (p AnsiEscape) code(n uint) AnsiEscape {
	var escape string
	//
	if p.count > 0 {
		escape = fmt.Sprintf("%s;%d", p.escape, n)
	} else {
		escape = fmt.Sprintf("%s[%d", p.escape, n)
	}
	//
	return AnsiEscape{escape, p.count + 1}
}
