package table

import "fmt"

// End is the sentinel span value meaning "through the last index on that
// axis".
const End = -1

// Span selects a sub-rectangle of a table.  FromRow and FromColumn must be
// valid existing indices.  For row-wise operations Count is the number of
// rows taken and Length the number of cells per row; for column-wise
// operations the roles swap.  Either may be End.
type Span struct {
	FromRow    int
	FromColumn int
	Count      int
	Length     int
}

// Cell returns the cell at the given row and column.  Both coordinates must
// be in range; anything else is a contract violation.
func (p *Table) Cell(row int, col int) string {
	p.checkRowIndex(row)
	p.checkColumnIndex(col)
	//
	return p.rows[row][col]
}

// GetRow returns a detached copy of the row at the given index.
func (p *Table) GetRow(index int) []string {
	return p.GetRows(Span{FromRow: index, FromColumn: 0, Count: 1, Length: End})[0]
}

// GetColumn returns a detached copy of the column at the given index.
func (p *Table) GetColumn(index int) []string {
	return p.GetColumns(Span{FromRow: 0, FromColumn: index, Count: 1, Length: End})[0]
}

// GetRows extracts a sub-rectangle as a list of rows (rows outer, columns
// inner).  Count counts rows and Length counts cells per row; End on either
// means "through the end of that axis".  The span must select an existing
// rectangle: FromRow/FromColumn must be valid indices and the resolved
// bounds must not exceed the table, otherwise the call is a contract
// violation.  Every returned row is a detached copy.
func (p *Table) GetRows(span Span) [][]string {
	count, length := p.resolveSpan(span, false)
	//
	rows := make([][]string, count)
	//
	for i := 0; i < count; i++ {
		row := make([]string, length)
		//
		for j := 0; j < length; j++ {
			row[j] = p.rows[span.FromRow+i][span.FromColumn+j]
		}
		//
		rows[i] = row
	}
	//
	return rows
}

// GetColumns extracts a sub-rectangle as a list of columns (columns outer,
// rows inner).  Count counts columns and Length counts cells per column.
// Validation matches GetRows.
func (p *Table) GetColumns(span Span) [][]string {
	count, length := p.resolveSpan(span, true)
	//
	columns := make([][]string, count)
	//
	for j := 0; j < count; j++ {
		column := make([]string, length)
		//
		for i := 0; i < length; i++ {
			column[i] = p.rows[span.FromRow+i][span.FromColumn+j]
		}
		//
		columns[j] = column
	}
	//
	return columns
}

// Resolve the End sentinels of a span and check the rectangle lies within
// this table.  For column-wise spans, count runs along the column axis and
// length along the row axis.
func (p *Table) resolveSpan(span Span, columnwise bool) (count int, length int) {
	p.checkRowIndex(span.FromRow)
	p.checkColumnIndex(span.FromColumn)
	//
	rowBudget := p.NumRows() - span.FromRow
	colBudget := p.NumColumns() - span.FromColumn
	//
	count, length = span.Count, span.Length
	//
	if columnwise {
		if count == End {
			count = colBudget
		}

		if length == End {
			length = rowBudget
		}

		if count < 0 || count > colBudget || length < 0 || length > rowBudget {
			panic(fmt.Sprintf("span %v exceeds %dx%d table", span, p.NumRows(), p.NumColumns()))
		}
	} else {
		if count == End {
			count = rowBudget
		}

		if length == End {
			length = colBudget
		}

		if count < 0 || count > rowBudget || length < 0 || length > colBudget {
			panic(fmt.Sprintf("span %v exceeds %dx%d table", span, p.NumRows(), p.NumColumns()))
		}
	}
	//
	return count, length
}
