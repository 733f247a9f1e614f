package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/mattn/go-runewidth"
)

// printResultTable renders an aligned identifier/score/rank table. Column
// widths are computed with runewidth so non-ASCII identifiers line up.
func printResultTable(w io.Writer, ids []string, res topsis.Result) {
	headers := []string{"Alternative", "Topsis Score", "Rank"}
	rows := make([][]string, len(res))
	for i, r := range res {
		rows[i] = []string{ids[i], strconv.FormatFloat(r.Score, 'f', 4, 64), strconv.Itoa(r.Rank)}
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for j, cell := range cells {
			padded[j] = runewidth.FillRight(cell, widths[j])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}
