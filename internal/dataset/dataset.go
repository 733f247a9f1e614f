// Package dataset loads and writes decision tables as CSV or XLSX files.
// The first row is treated as headers; the first column is the alternative
// identifier, the remaining columns are criteria.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decisionlab/topsis/internal/topsis"
)

var (
	// ErrFileAccess indicates the input file is missing or unreadable.
	ErrFileAccess = errors.New("dataset: file not found")

	// ErrUnsupported indicates a file extension other than .csv or .xlsx.
	ErrUnsupported = errors.New("dataset: only .csv or .xlsx files are supported")
)

// Table is a raw decision table: headers plus data rows of untyped cells.
// Validation and numeric parsing happen in the topsis package.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads a decision table from a file, dispatching on the extension.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileAccess, path)
	}
	defer f.Close() //nolint:errcheck

	return Read(f, path)
}

// Read parses a decision table from r. name is only used to pick the
// format by extension, which makes Read usable for uploaded files.
func Read(r io.Reader, name string) (*Table, error) {
	switch ext(name) {
	case ".csv":
		return readCSV(r, name)
	case ".xlsx", ".xls":
		return readXLSX(r, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
}

// WriteFile writes the table with the Topsis Score and Rank columns
// appended, in the table's row order, dispatching on the extension.
func WriteFile(path string, t *Table, res topsis.Result) error {
	write := WriteCSV
	switch ext(path) {
	case ".csv":
	case ".xlsx", ".xls":
		write = WriteXLSX
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: unable to write output file: %w", err)
	}

	writeErr := write(f, t, res)

	if closeErr := f.Close(); writeErr == nil && closeErr != nil {
		writeErr = fmt.Errorf("dataset: unable to write output file: %w", closeErr)
	}
	return writeErr
}

// resultHeaders are the two columns appended to the original table.
var resultHeaders = []string{"Topsis Score", "Rank"}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
