package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/decisionlab/topsis/internal/topsis"
)

func readCSV(r io.Reader, name string) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %s is empty (no header row)", name)
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// WriteCSV serializes the table plus the result columns to w. Result rows
// must be aligned with the table's data rows.
func WriteCSV(w io.Writer, t *Table, res topsis.Result) error {
	if len(res) != len(t.Rows) {
		return fmt.Errorf("dataset: %d result rows for %d table rows", len(res), len(t.Rows))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, t.Headers...), resultHeaders...)); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for i, row := range t.Rows {
		out := append(append([]string{}, row...), formatScore(res[i].Score), strconv.Itoa(res[i].Rank))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
