package sheets

import (
	"strings"
	"testing"
)

func Test_ReadCSV_01(t *testing.T) {
	input := "Title,Status\nT1,Accepted\nT2,Rejected\n"
	//
	rows, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[2][1] != "Rejected" {
		t.Errorf("expected Rejected, got %q", rows[2][1])
	}
}

// Ragged records pass through untouched; normalization is the table's job.
func Test_ReadCSV_02(t *testing.T) {
	input := "Title,Status,Deadline\nT1\nT2,Accepted\n"
	//
	rows, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if len(rows[0]) != 3 || len(rows[1]) != 1 || len(rows[2]) != 2 {
		t.Errorf("expected ragged rows preserved, got %v", rows)
	}
}

func Test_ReadCSV_03(t *testing.T) {
	if _, err := ReadCSV("does-not-exist.csv"); err == nil {
		t.Errorf("expected error for missing file")
	}
}
