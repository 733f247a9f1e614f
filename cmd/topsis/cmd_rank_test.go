package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decisionlab/topsis/internal/dataset"
	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Model,Price,RAM,Battery\nM1,250,16,12\nM2,200,16,8\nM3,300,32,16\n"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInputCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestRankCommand_WritesOutput(t *testing.T) {
	in := writeInputCSV(t)
	out := filepath.Join(t.TempDir(), "result.csv")

	stdout, err := runCLI(t, "rank", in, "1,1,1", "+,+,+", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Success: Result written to "+out)

	result, err := dataset.Load(out)
	require.NoError(t, err)
	require.Equal(t, []string{"Model", "Price", "RAM", "Battery", "Topsis Score", "Rank"}, result.Headers)
	require.Len(t, result.Rows, 3)
	// Output preserves the input row order.
	require.Equal(t, "M1", result.Rows[0][0])
	require.Equal(t, "M2", result.Rows[1][0])
	require.Equal(t, "M3", result.Rows[2][0])
}

func TestRankCommand_PrintTable(t *testing.T) {
	in := writeInputCSV(t)
	out := filepath.Join(t.TempDir(), "result.csv")

	stdout, err := runCLI(t, "rank", "--print", in, "1,1,1", "+,+,+", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Alternative")
	require.Contains(t, stdout, "Topsis Score")
	require.Contains(t, stdout, "M3")
}

func TestRankCommand_WrongArgumentCount(t *testing.T) {
	_, err := runCLI(t, "rank", "only-one.csv")
	require.Error(t, err)

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	require.Contains(t, usageErr.Message, "correct number of parameters required")
}

func TestRankCommand_MissingInputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "result.csv")
	_, err := runCLI(t, "rank", filepath.Join(t.TempDir(), "nope.csv"), "1,1,1", "+,+,+", out)
	require.ErrorIs(t, err, dataset.ErrFileAccess)
}

func TestRankCommand_ValidationErrors(t *testing.T) {
	in := writeInputCSV(t)
	out := filepath.Join(t.TempDir(), "result.csv")

	tests := []struct {
		name    string
		weights string
		impacts string
		wantErr error
	}{
		{"weight count mismatch", "1,1", "+,+,+", topsis.ErrCountMismatch},
		{"invalid impact token", "1,1,1", "+,*,-", topsis.ErrFormat},
		{"weights without comma", "1 1 1", "+,+,+", topsis.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "rank", in, tt.weights, tt.impacts, out)
			require.ErrorIs(t, err, tt.wantErr)
			// No output file is written on validation failure.
			_, statErr := os.Stat(out)
			require.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRankCommand_NonNumericCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "Model,Price,RAM\nM1,250,fast\nM2,200,8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := runCLI(t, "rank", path, "1,1", "+,+", filepath.Join(t.TempDir(), "out.csv"))
	require.ErrorIs(t, err, topsis.ErrNonNumeric)
}

func TestRankCommand_ZeroColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "Model,A,B\nM1,0,1\nM2,0,2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := runCLI(t, "rank", path, "1,1", "+,+", filepath.Join(t.TempDir(), "out.csv"))
	require.ErrorIs(t, err, topsis.ErrDegenerateColumn)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := newRootCommand()
	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, strings.Fields(sub.Use)[0])
	}
	require.Contains(t, names, "rank")
	require.Contains(t, names, "serve")
}

func TestUsageError_Error(t *testing.T) {
	err := &UsageError{Message: "bad invocation"}
	require.Equal(t, "bad invocation", err.Error())
	require.True(t, errors.As(error(err), new(*UsageError)))
}
