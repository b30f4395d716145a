package table

import (
	"testing"
)

func Test_Cell_01(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"a", "b"}, {"c", "d"}})
	//
	if tbl.Cell(1, 0) != "c" {
		t.Errorf("expected c, got %s", tbl.Cell(1, 0))
	}
	//
	check_Panics(t, func() { tbl.Cell(2, 0) })
	check_Panics(t, func() { tbl.Cell(0, 2) })
	check_Panics(t, func() { tbl.Cell(-1, 0) })
}

func Test_GetRows_01(t *testing.T) {
	tbl := NewTableFromRows([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	//
	rows := tbl.GetRows(Span{FromRow: 1, FromColumn: 1, Count: 2, Length: 2})
	//
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	//
	check_Row(t, rows[0], "e", "f")
	check_Row(t, rows[1], "h", "i")
}

// End clamps to the table remainder on both axes.
func Test_GetRows_02(t *testing.T) {
	tbl := NewTableFromRows([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	})
	//
	rows := tbl.GetRows(Span{FromRow: 0, FromColumn: 1, Count: End, Length: End})
	//
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	//
	check_Row(t, rows[0], "b", "c")
	check_Row(t, rows[1], "e", "f")
}

func Test_GetRows_03(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"a", "b"}, {"c", "d"}})
	//
	check_Panics(t, func() { tbl.GetRows(Span{FromRow: 2, FromColumn: 0, Count: 1, Length: 1}) })
	check_Panics(t, func() { tbl.GetRows(Span{FromRow: 0, FromColumn: 2, Count: 1, Length: 1}) })
	check_Panics(t, func() { tbl.GetRows(Span{FromRow: 1, FromColumn: 0, Count: 2, Length: 1}) })
	check_Panics(t, func() { tbl.GetRows(Span{FromRow: 0, FromColumn: 1, Count: 1, Length: 2}) })
	// An empty table has no valid FromRow at all.
	check_Panics(t, func() { NewTable().GetRows(Span{FromRow: 0, FromColumn: 0, Count: End, Length: End}) })
}

func Test_GetColumns_01(t *testing.T) {
	tbl := NewTableFromRows([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	// Columns outer, rows inner.
	columns := tbl.GetColumns(Span{FromRow: 1, FromColumn: 0, Count: 2, Length: 2})
	//
	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(columns))
	}
	//
	check_Row(t, columns[0], "d", "g")
	check_Row(t, columns[1], "e", "h")
}

func Test_GetColumns_02(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"a", "b"}, {"c", "d"}})
	//
	check_Panics(t, func() { tbl.GetColumns(Span{FromRow: 0, FromColumn: 0, Count: 3, Length: End}) })
	check_Panics(t, func() { tbl.GetColumns(Span{FromRow: 1, FromColumn: 0, Count: 1, Length: 2}) })
}

func Test_GetRow_01(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"a", "b"}, {"c", "d"}})
	//
	check_Row(t, tbl.GetRow(1), "c", "d")
	check_Row(t, tbl.GetColumn(1), "b", "d")
	//
	check_Panics(t, func() { tbl.GetRow(2) })
	check_Panics(t, func() { tbl.GetColumn(2) })
}

// Extracts are detached: mutating a result never affects the table.
func Test_GetRow_02(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"a", "b"}})
	//
	row := tbl.GetRow(0)
	row[0] = "mutated"
	//
	if tbl.Cell(0, 0) != "a" {
		t.Errorf("extracted row aliases table storage")
	}
	//
	col := tbl.GetColumn(0)
	col[0] = "mutated"
	//
	if tbl.Cell(0, 0) != "a" {
		t.Errorf("extracted column aliases table storage")
	}
}
