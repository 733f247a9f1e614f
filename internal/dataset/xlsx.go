package dataset

import (
	"fmt"
	"io"

	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader, name string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", name, err)
	}
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q of %s: %w", sheet, name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: %s is empty (no header row)", name)
	}

	headers := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// excelize drops trailing empty cells; pad so every row matches
		// the header width and missing values surface as empty cells.
		for len(row) < len(headers) {
			row = append(row, "")
		}
		data = append(data, row)
	}
	return &Table{Headers: headers, Rows: data}, nil
}

// WriteXLSX serializes the table plus the result columns to w as a single
// sheet workbook. Result rows must be aligned with the table's data rows.
func WriteXLSX(w io.Writer, t *Table, res topsis.Result) error {
	if len(res) != len(t.Rows) {
		return fmt.Errorf("dataset: %d result rows for %d table rows", len(res), len(t.Rows))
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck
	sheet := f.GetSheetName(0)

	header := make([]any, 0, len(t.Headers)+2)
	for _, h := range t.Headers {
		header = append(header, h)
	}
	for _, h := range resultHeaders {
		header = append(header, h)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		out := make([]any, 0, len(row)+2)
		for _, cell := range row {
			out = append(out, cell)
		}
		out = append(out, res[i].Score, res[i].Rank)
		if err := setRow(f, sheet, i+2, out); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("dataset: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("dataset: row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("dataset: write row %d: %w", row, err)
	}
	return nil
}
