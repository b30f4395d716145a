package table

import "fmt"

// RowPredicate selects rows for removal.  It receives the row's cells and
// its current index.
type RowPredicate = func(row []string, index int) bool

// ColumnPredicate selects columns for removal.  It receives the column
// materialized at call time, and the column's current index.
type ColumnPredicate = func(column []string, index int) bool

// AddRow appends the given row verbatim as the new last row.  Unlike the
// constructors, no width check is performed against NumColumns: an ad hoc
// AddRow can produce a non-rectangular table, and callers relying on
// rectangularity afterwards must call Normalize.  The row is copied.
func (p *Table) AddRow(row []string) {
	p.rows = append(p.rows, copyRow(row))
}

// AddColumn appends one cell per existing row.  A column shorter than
// NumRows pads the missing rows with the empty string; entries beyond
// NumRows are ignored.
func (p *Table) AddColumn(column []string) {
	for i := range p.rows {
		if i < len(column) {
			p.rows[i] = append(p.rows[i], column[i])
		} else {
			p.rows[i] = append(p.rows[i], "")
		}
	}
}

// InsertRow inserts the given row (verbatim, copied) at the given index,
// shifting subsequent rows down.  The index must satisfy
// 0 <= index <= NumRows; anything else is a contract violation.
func (p *Table) InsertRow(index int, row []string) {
	if index < 0 || index > len(p.rows) {
		panic(fmt.Sprintf("row insertion at %d out-of-bounds (%d rows)", index, len(p.rows)))
	}
	//
	p.rows = append(p.rows, nil)
	copy(p.rows[index+1:], p.rows[index:])
	p.rows[index] = copyRow(row)
}

// InsertColumn inserts one cell per existing row at the given column index,
// shifting subsequent columns right.  Padding follows AddColumn: short
// columns pad with the empty string, excess entries are ignored.  The index
// must satisfy 0 <= index <= NumColumns; anything else is a contract
// violation.
func (p *Table) InsertColumn(index int, column []string) {
	if index < 0 || index > p.NumColumns() {
		panic(fmt.Sprintf("column insertion at %d out-of-bounds (%d columns)", index, p.NumColumns()))
	}
	//
	for i := range p.rows {
		cell := ""
		if i < len(column) {
			cell = column[i]
		}
		//
		row := p.rows[i]
		row = append(row, "")
		copy(row[index+1:], row[index:])
		row[index] = cell
		p.rows[i] = row
	}
}

// DropRow removes the row at the given index.  An out-of-range index is a
// deliberate no-op (not a contract violation), so callers can drop an index
// without bounds-checking first.
func (p *Table) DropRow(index int) {
	if index < 0 || index >= len(p.rows) {
		return
	}
	//
	p.rows = append(p.rows[:index], p.rows[index+1:]...)
}

// DropColumn removes the column at the given index.  As with DropRow, an
// out-of-range index is a no-op.
func (p *Table) DropColumn(index int) {
	if index < 0 || index >= p.NumColumns() {
		return
	}
	//
	for i, row := range p.rows {
		if index < len(row) {
			p.rows[i] = append(row[:index], row[index+1:]...)
		}
	}
}

// DropRowWhere removes every row for which the predicate holds.  The scan
// runs from the highest index to the lowest so removal never shifts an index
// the predicate has yet to see.
func (p *Table) DropRowWhere(predicate RowPredicate) {
	for i := len(p.rows) - 1; i >= 0; i-- {
		if predicate(p.rows[i], i) {
			p.DropRow(i)
		}
	}
}

// DropColumnWhere removes every column for which the predicate holds.  Each
// column is materialized at call time; the reverse scan keeps indices stable
// during removal.
func (p *Table) DropColumnWhere(predicate ColumnPredicate) {
	for j := p.NumColumns() - 1; j >= 0; j-- {
		if predicate(p.column(j), j) {
			p.DropColumn(j)
		}
	}
}

// DropAllRowsExcept retains only the rows at the listed positions.  Retained
// rows keep their original order regardless of the order of indices;
// out-of-range entries are ignored.
func (p *Table) DropAllRowsExcept(indices []int) {
	keep := indexSet(indices)
	//
	p.DropRowWhere(func(_ []string, index int) bool {
		return !keep[index]
	})
}

// DropAllColumnsExcept retains only the columns at the listed positions,
// with the same ordering rule as DropAllRowsExcept.
func (p *Table) DropAllColumnsExcept(indices []int) {
	keep := indexSet(indices)
	//
	p.DropColumnWhere(func(_ []string, index int) bool {
		return !keep[index]
	})
}

func indexSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	//
	return set
}
