// Package export renders query results as delimited text: one header line
// of column names followed by one line per row, with standard CSV quoting
// for embedded delimiters.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write streams columns and rows to w as CSV.
func Write(w io.Writer, columns []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes columns and rows to the file at path, creating or
// truncating it. Fails with a wrapped I/O error when the destination
// cannot be opened.
func WriteFile(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export destination: %w", err)
	}
	defer f.Close()

	if err := Write(f, columns, rows); err != nil {
		return err
	}
	return f.Close()
}
