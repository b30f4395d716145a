package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a local CSV file as raw rows.  Records of varying length
// are accepted, mirroring what a spreadsheet range fetch can return.
func ReadCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	//
	defer file.Close()
	//
	return readCSV(file)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Spreadsheet exports are frequently ragged.
	reader.FieldsPerRecord = -1
	//
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	//
	return rows, nil
}
