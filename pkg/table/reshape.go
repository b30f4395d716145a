package table

import "fmt"

// JoinType selects which operand of a Join contributes its columns first.
type JoinType int

const (
	// JoinLeft takes the receiver's columns first, then all of the other
	// table's columns.
	JoinLeft JoinType = iota
	// JoinRight swaps the operands: the other table's columns come first.
	JoinRight
)

// Join zips this table's rows with another's, positionally, up to the
// shorter row count.  For each row pair the left operand contributes its
// first NumColumns cells followed by all of the right operand's cells; with
// JoinLeft the receiver is the left operand, with JoinRight the roles swap.
// This is a structural zip, not a relational key join: there is no key
// matching and no null-fill for the longer table's surplus rows.  The result
// is a new table sharing no storage with either operand.
func (p *Table) Join(other *Table, kind JoinType) *Table {
	left, right := p, other
	if kind == JoinRight {
		left, right = other, p
	}
	//
	height := min(len(left.rows), len(right.rows))
	width := left.NumColumns()
	//
	rows := make([][]string, height)
	//
	for i := 0; i < height; i++ {
		lhs := left.rows[i]
		if len(lhs) > width {
			lhs = lhs[:width]
		}
		//
		row := make([]string, 0, len(lhs)+len(right.rows[i]))
		row = append(row, lhs...)
		row = append(row, right.rows[i]...)
		rows[i] = row
	}
	//
	return &Table{rows}
}

// ReshapeColumn flattens a row segment into fixed-width chunks.  For every
// selected row (FromRow through FromRow+Count exclusive, or through the last
// row when Count is End), the cells from FromColumn onward are split into
// consecutive chunks of Length cells, each chunk becoming one row of the
// result.  A chunk whose first cell is empty terminates that source row's
// expansion; a non-empty trailing chunk shorter than Length is right-padded
// with empty strings.  The result is always Length cells wide, and its row
// count depends on the data, not just the span.
func (p *Table) ReshapeColumn(span Span) *Table {
	count, length := p.resolveReshape(span, p.NumRows(), p.NumColumns())
	//
	result := NewTable()
	//
	for i := 0; i < count; i++ {
		source := p.rows[span.FromRow+i]
		//
		for off := span.FromColumn; off < len(source); off += length {
			chunk := source[off:min(off+length, len(source))]
			// Expansion of this row stops at the first blank chunk.
			if len(chunk) == 0 || chunk[0] == "" {
				break
			}
			//
			result.rows = append(result.rows, padRow(chunk, length))
		}
	}
	//
	return result
}

// ReshapeRow is ReshapeColumn with the axis roles swapped: every selected
// column's cells from FromRow onward are chunked instead.  It delegates to
// ReshapeColumn over the transposed table with the span's row/column
// parameters permuted.
func (p *Table) ReshapeRow(span Span) *Table {
	transposed := NewTableFromColumns(p.rows)
	//
	return transposed.ReshapeColumn(Span{
		FromRow:    span.FromColumn,
		FromColumn: span.FromRow,
		Count:      span.Count,
		Length:     span.Length,
	})
}

// Resolve a reshape span: count selects source rows, length is the chunk
// width (End meaning "everything from FromColumn onward").
func (p *Table) resolveReshape(span Span, numRows int, numColumns int) (count int, length int) {
	p.checkRowIndex(span.FromRow)
	p.checkColumnIndex(span.FromColumn)
	//
	count, length = span.Count, span.Length
	//
	if count == End {
		count = numRows - span.FromRow
	}

	if length == End {
		length = numColumns - span.FromColumn
	}
	//
	if count < 0 || span.FromRow+count > numRows {
		panic(fmt.Sprintf("reshape span %v exceeds %d rows", span, numRows))
	}

	if length <= 0 {
		panic(fmt.Sprintf("reshape chunk width %d must be positive", length))
	}
	//
	return count, length
}
