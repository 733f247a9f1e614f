package main

import (
	"fmt"
	"log/slog"

	"github.com/decisionlab/topsis/internal/dataset"
	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/spf13/cobra"
)

func newRankCommand() *cobra.Command {
	var printTable bool

	cmd := &cobra.Command{
		Use:   "rank <input> <weights> <impacts> <output>",
		Short: "Rank a decision table and write the result file",
		Long: `Rank a decision table and write the result file.

The input file (.csv or .xlsx) must have the alternative identifier in the
first column and numeric criteria in the remaining columns. Weights and
impacts are comma-separated with one entry per criteria column; impacts are
"+" for benefit criteria and "-" for cost criteria.

The output file is the input table with the Topsis Score and Rank columns
appended, in the original row order.

Example:
  topsis rank data.csv "1,1,1,2" "+,+,-,+" result.csv`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 4 {
				return &UsageError{Message: fmt.Sprintf(
					"correct number of parameters required: rank <input> <weights> <impacts> <output>, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, args[0], args[1], args[2], args[3], printTable)
		},
	}

	cmd.Flags().BoolVar(&printTable, "print", false, "Print the ranked result table to stdout")

	return cmd
}

func runRank(cmd *cobra.Command, inputPath, weights, impacts, outputPath string, printTable bool) error {
	table, err := dataset.Load(inputPath)
	if err != nil {
		return err
	}
	slog.Debug("table loaded", "path", inputPath, "rows", len(table.Rows), "columns", len(table.Headers))

	in, err := topsis.ParseInput(table.Rows, weights, impacts)
	if err != nil {
		return err
	}

	res, err := topsis.Rank(in.Matrix, in.Weights, in.Impacts)
	if err != nil {
		return err
	}

	if err := dataset.WriteFile(outputPath, table, res); err != nil {
		return err
	}

	if printTable {
		printResultTable(cmd.OutOrStdout(), in.IDs, res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Success: Result written to %s\n", outputPath)
	return nil
}
