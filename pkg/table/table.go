// Package table provides a mutable rectangular grid of string cells, along
// with the row/column operations needed to carve spreadsheet data into a
// shape the rest of the application can consume.  Identity is positional:
// rows and columns are addressed by zero-based index, never by key.
//
// A Table is not safe for concurrent mutation.  Callers must serialize all
// writes to a given instance; derived tables (Join, Reshape*, Copy, extracted
// rows/columns) own independent storage and can be handed off freely.
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered sequence of rows, each an ordered sequence of string
// cells.  Constructors normalize ragged input by right-padding every row
// with the empty string up to the widest row; after construction, every row
// has identical length.
type Table struct {
	rows [][]string
}

// NewTable constructs an empty table with no rows and no columns.
func NewTable() *Table {
	p := new(Table)
	p.rows = make([][]string, 0)
	//
	return p
}

// NewTableFromRows constructs a table from a list of rows.  Ragged input is
// accepted: shorter rows are right-padded with the empty string up to the
// length of the longest row.  Rows are copied, so the table never aliases
// the caller's storage.
func NewTableFromRows(rows [][]string) *Table {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	//
	p := new(Table)
	p.rows = make([][]string, len(rows))
	//
	for i, r := range rows {
		p.rows[i] = padRow(r, width)
	}
	//
	return p
}

// NewTableFromColumns constructs a table from a list of columns, transposing
// them into rows.  Ragged columns are accepted and padded identically to
// NewTableFromRows.
func NewTableFromColumns(columns [][]string) *Table {
	height := 0
	for _, c := range columns {
		height = max(height, len(c))
	}
	//
	rows := make([][]string, height)
	//
	for i := 0; i < height; i++ {
		rows[i] = make([]string, len(columns))
		for j, c := range columns {
			if i < len(c) {
				rows[i][j] = c[i]
			}
		}
	}
	//
	return &Table{rows}
}

// NumRows returns the number of rows in this table.
func (p *Table) NumRows() int {
	return len(p.rows)
}

// NumColumns returns the number of columns in this table, defined as the
// width of row 0 (or 0 when the table has no rows).
func (p *Table) NumColumns() int {
	if len(p.rows) == 0 {
		return 0
	}
	//
	return len(p.rows[0])
}

// IsEmpty reports whether this table has no rows.
func (p *Table) IsEmpty() bool {
	return len(p.rows) == 0
}

// First returns a copy of the first row.  Calling First on an empty table is
// a contract violation.
func (p *Table) First() []string {
	if len(p.rows) == 0 {
		panic("first row of empty table")
	}
	//
	return copyRow(p.rows[0])
}

// Last returns a copy of the last row.  Calling Last on an empty table is a
// contract violation.
func (p *Table) Last() []string {
	if len(p.rows) == 0 {
		panic("last row of empty table")
	}
	//
	return copyRow(p.rows[len(p.rows)-1])
}

// FirstOrNil returns a copy of the first row, or nil for an empty table.
func (p *Table) FirstOrNil() []string {
	if len(p.rows) == 0 {
		return nil
	}
	//
	return copyRow(p.rows[0])
}

// LastOrNil returns a copy of the last row, or nil for an empty table.
func (p *Table) LastOrNil() []string {
	if len(p.rows) == 0 {
		return nil
	}
	//
	return copyRow(p.rows[len(p.rows)-1])
}

// IndexOfRow returns the index of the first row whose contents equal the
// given row (same length, every cell equal), or -1 if no such row exists.
func (p *Table) IndexOfRow(row []string) int {
	for i, r := range p.rows {
		if rowsEqual(r, row) {
			return i
		}
	}
	// No match
	return -1
}

// IndexOfColumn returns the index of the first column whose contents equal
// the given column (same length, every cell equal), or -1 if no such column
// exists.
func (p *Table) IndexOfColumn(column []string) int {
	if len(column) != len(p.rows) {
		return -1
	}
	//
	for j := 0; j < p.NumColumns(); j++ {
		if rowsEqual(p.column(j), column) {
			return j
		}
	}
	// No match
	return -1
}

// Copy creates a deep, independent duplicate of this table.
func (p *Table) Copy() *Table {
	clone := new(Table)
	clone.rows = make([][]string, len(p.rows))
	//
	for i, r := range p.rows {
		clone.rows[i] = copyRow(r)
	}
	//
	return clone
}

// Equals reports structural equality: both tables hold the same row
// sequences, element for element.
func (p *Table) Equals(other *Table) bool {
	if len(p.rows) != len(other.rows) {
		return false
	}
	//
	for i, r := range p.rows {
		if !rowsEqual(r, other.rows[i]) {
			return false
		}
	}
	//
	return true
}

// Normalize right-pads every row with the empty string up to the widest row,
// restoring rectangularity after permissive AddRow / InsertRow calls.
func (p *Table) Normalize() {
	width := 0
	for _, r := range p.rows {
		width = max(width, len(r))
	}
	//
	for i, r := range p.rows {
		if len(r) < width {
			p.rows[i] = padRow(r, width)
		}
	}
}

func (p *Table) String() string {
	var id strings.Builder
	//
	id.WriteString("{")
	//
	for i, r := range p.rows {
		if i != 0 {
			id.WriteString(",")
		}
		//
		id.WriteString("[")
		//
		for j, c := range r {
			if j != 0 {
				id.WriteString(",")
			}

			id.WriteString(c)
		}
		//
		id.WriteString("]")
	}
	//
	id.WriteString("}")
	//
	return id.String()
}

// ===================================================================
// Helpers
// ===================================================================

// Materialize the jth column by scanning every row at a fixed offset.  Rows
// shorter than j (possible after permissive AddRow) contribute the empty
// string.
func (p *Table) column(j int) []string {
	col := make([]string, len(p.rows))
	//
	for i, r := range p.rows {
		if j < len(r) {
			col[i] = r[j]
		}
	}
	//
	return col
}

func (p *Table) checkRowIndex(index int) {
	if index < 0 || index >= len(p.rows) {
		panic(fmt.Sprintf("row index %d out-of-bounds (%d rows)", index, len(p.rows)))
	}
}

func (p *Table) checkColumnIndex(index int) {
	if index < 0 || index >= p.NumColumns() {
		panic(fmt.Sprintf("column index %d out-of-bounds (%d columns)", index, p.NumColumns()))
	}
}

func copyRow(row []string) []string {
	clone := make([]string, len(row))
	copy(clone, row)
	//
	return clone
}

func padRow(row []string, width int) []string {
	clone := make([]string, width)
	copy(clone, row)
	//
	return clone
}

func rowsEqual(l []string, r []string) bool {
	if len(l) != len(r) {
		return false
	}
	//
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	//
	return true
}
