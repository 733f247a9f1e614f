package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/stretchr/testify/require"
)

func TestPrintResultTable(t *testing.T) {
	var buf bytes.Buffer
	printResultTable(&buf, []string{"Phone A", "Phone B"}, topsis.Result{
		{Score: 0.7312, Rank: 1},
		{Score: 0.2688, Rank: 2},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Alternative")
	require.Contains(t, lines[0], "Topsis Score")
	require.Contains(t, lines[0], "Rank")
	require.Contains(t, lines[1], "0.7312")
	require.Contains(t, lines[2], "0.2688")

	// Score column starts at the same offset in every line.
	offset := strings.Index(lines[0], "Topsis Score")
	require.Equal(t, offset, strings.Index(lines[1], "0.7312"))
	require.Equal(t, offset, strings.Index(lines[2], "0.2688"))
}

func TestPrintResultTable_WideIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	printResultTable(&buf, []string{"候補A", "B"}, topsis.Result{
		{Score: 0.5, Rank: 1},
		{Score: 0.5, Rank: 1},
	})
	require.Contains(t, buf.String(), "候補A")
}
