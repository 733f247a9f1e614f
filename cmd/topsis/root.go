package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topsis",
		Short: "Rank alternatives with the TOPSIS multi-criteria decision method",
		Long: `Topsis ranks a set of alternatives described by numeric criteria.

Criteria are normalized and weighted, each alternative is compared against
the ideal-best and ideal-worst points, and a closeness score in [0,1] plus
a rank (1 = best) is attached to every row.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
