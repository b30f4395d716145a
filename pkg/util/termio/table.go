package termio

import (
	"fmt"
	"io"
)

// TablePrinter renders a fixed-size grid of cells as an aligned table.
type TablePrinter struct {
	out           io.Writer
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with the given dimensions, writing
// to the given writer.
func NewTablePrinter(out io.Writer, width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	//
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}
	//
	return &TablePrinter{out, widths, rows, escapes, true}
}

// Set the contents of a given cell in this table.
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table.
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape sets the escape to apply when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes.  Disabling them
// is useful in environments which would otherwise show the raw escape
// characters.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table.
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i := range p.widths {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], width)
	}
}

// SetMaxWidth puts an upper bound on the width of one column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table.  Cells longer than their column width are truncated with
// a ".." marker.
func (p *TablePrinter) Print() {
	for i := range p.rows {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		for j, cell := range row {
			width := p.widths[j]
			escape := escapes[j]
			//
			if p.enableEscapes && escape != "" {
				fmt.Fprint(p.out, escape)
			}
			//
			if uint(len(cell)) > width && width > 2 {
				fmt.Fprintf(p.out, " %s..", cell[0:width-2])
			} else if uint(len(cell)) > width {
				fmt.Fprintf(p.out, " %s", cell[0:width])
			} else {
				fmt.Fprintf(p.out, " %-*s", width, cell)
			}
			//
			if p.enableEscapes && escape != "" {
				fmt.Fprint(p.out, ResetAnsiEscape().Build())
			}

			fmt.Fprint(p.out, " |")
		}

		fmt.Fprintln(p.out)
	}
}
