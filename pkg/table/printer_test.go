package table

import (
	"bytes"
	"strings"
	"testing"
)

func Test_Printer_01(t *testing.T) {
	tbl := NewTableFromRows([][]string{
		{"Title", "Status"},
		{"T1", "Accepted"},
	})
	//
	var buf bytes.Buffer
	NewPrinter().AnsiEscapes(false).Print(&buf, tbl)
	//
	lines := splitLines(buf.String())
	//
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	//
	for _, cell := range []string{"0", "Title", "Status"} {
		if !strings.Contains(lines[0], cell) {
			t.Errorf("missing %q in %q", cell, lines[0])
		}
	}
	//
	for _, cell := range []string{"1", "T1", "Accepted"} {
		if !strings.Contains(lines[1], cell) {
			t.Errorf("missing %q in %q", cell, lines[1])
		}
	}
}

func Test_Printer_02(t *testing.T) {
	tbl := NewTableFromRows([][]string{
		{"a"}, {"b"}, {"c"}, {"d"},
	})
	//
	var buf bytes.Buffer
	NewPrinter().Start(1).End(3).AnsiEscapes(false).Print(&buf, tbl)
	//
	out := buf.String()
	//
	if strings.Contains(out, "a") || strings.Contains(out, "d") {
		t.Errorf("rows outside range printed: %q", out)
	}

	if !strings.Contains(out, "b") || !strings.Contains(out, "c") {
		t.Errorf("rows inside range missing: %q", out)
	}
}

func Test_Printer_03(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"keep", "drop"}})
	//
	var buf bytes.Buffer
	printer := NewPrinter().AnsiEscapes(false).Columns(func(col int, t *Table) bool {
		return col == 0
	})
	printer.Print(&buf, tbl)
	//
	if strings.Contains(buf.String(), "drop") {
		t.Errorf("filtered column printed: %q", buf.String())
	}
}

// Long cells are truncated with a marker.
func Test_Printer_04(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"abcdefghijklmnop"}})
	//
	var buf bytes.Buffer
	NewPrinter().MaxCellWidth(8).AnsiEscapes(false).Print(&buf, tbl)
	//
	if !strings.Contains(buf.String(), "abcdef..") {
		t.Errorf("expected truncated cell, got %q", buf.String())
	}
}

// Highlighted cells carry an escape when ANSI is enabled, and the escape is
// reset afterwards.
func Test_Printer_05(t *testing.T) {
	tbl := NewTableFromRows([][]string{{"hot"}})
	//
	var buf bytes.Buffer
	printer := NewPrinter().Highlight(func(row int, col int, t *Table) bool {
		return true
	})
	printer.Print(&buf, tbl)
	//
	if !strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected ANSI escape, got %q", buf.String())
	}

	if !strings.Contains(buf.String(), "\033[0m") {
		t.Errorf("expected ANSI reset, got %q", buf.String())
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
