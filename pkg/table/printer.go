package table

import (
	"fmt"
	"io"

	"github.com/Dimitry-bit/quest/pkg/util/termio"
)

// ColumnFilter is a predicate which determines whether a given column should
// be included in the print out, or not.
type ColumnFilter = func(col int, t *Table) bool

// Highlighter identifies cells which should be highlighted.
type Highlighter = func(row int, col int, t *Table) bool

// Printer encapsulates various configuration options useful for printing out
// tables in human-readable forms.
type Printer struct {
	// First row to print
	startRow int
	// Row to stop printing at (exclusive)
	endRow int
	// Which columns to include
	colFilter ColumnFilter
	// Which cells to highlight
	highlighter Highlighter
	// Maximum width to print for any cell
	maxCellWidth uint
	// Enable ANSI escapes
	ansiEscapes bool
}

// NewPrinter constructs a default printer: all rows, all columns, no
// highlighting, unbounded cell width.
func NewPrinter() *Printer {
	emptyFilter := func(col int, t *Table) bool {
		return true
	}
	//
	emptyHighlighter := func(row int, col int, t *Table) bool {
		return false
	}
	//
	return &Printer{0, -1, emptyFilter, emptyHighlighter, ^uint(0), true}
}

// Start configures the starting row for this printer.
func (p *Printer) Start(start int) *Printer {
	p.startRow = start
	return p
}

// End configures the ending row (exclusive) for this printer.
func (p *Printer) End(end int) *Printer {
	p.endRow = end
	return p
}

// Columns configures a filter which selects columns to be included in the
// final print out.
func (p *Printer) Columns(filter ColumnFilter) *Printer {
	p.colFilter = filter
	return p
}

// Highlight configures a filter for cells which should be highlighted.
func (p *Printer) Highlight(highlighter Highlighter) *Printer {
	p.highlighter = highlighter
	return p
}

// MaxCellWidth sets the maximum width to use for any cell.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// AnsiEscapes enables or disables the use of ANSI escape sequences (e.g. for
// showing colour in a terminal).
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// Print a given table to the given writer using the configured printer.  A
// leading column shows row indices.
func (p *Printer) Print(out io.Writer, t *Table) {
	start := max(p.startRow, 0)
	end := t.NumRows()
	//
	if p.endRow >= 0 {
		end = min(end, p.endRow)
	}

	if start >= end {
		return
	}
	// Filter columns
	columns := make([]int, 0, t.NumColumns())
	for j := 0; j < t.NumColumns(); j++ {
		if p.colFilter(j, t) {
			columns = append(columns, j)
		}
	}
	//
	height := uint(end - start)
	tp := termio.NewTablePrinter(out, uint(1+len(columns)), height)
	// Construct suitable highlighting escape
	highlightEscape := termio.BoldAnsiEscape().FgColour(termio.TermRed)
	// Fill table
	for i := start; i < end; i++ {
		tp.Set(0, uint(i-start), fmt.Sprintf("%d", i))
		//
		for j, col := range columns {
			tp.Set(uint(j+1), uint(i-start), t.Cell(i, col))
			//
			if p.highlighter(i, col, t) {
				tp.SetEscape(uint(j+1), uint(i-start), highlightEscape)
			}
		}
	}
	// Cap cells
	tp.SetMaxWidths(p.maxCellWidth)
	tp.AnsiEscapes(p.ansiEscapes)
	// Done
	tp.Print()
}
