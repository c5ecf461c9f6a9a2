package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hwbench",
		Short: "hwbench - benchmark, score, and compare hardware",
		Long: `hwbench runs standard benchmark tools (sysbench, fio, iperf3) against
the local system, normalizes the noisy raw numbers onto a common 0-100
scale, and turns them into workload-weighted scores you can compare
across machines and feed into capacity planning.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newPlanCommand())
	cmd.AddCommand(newProfilesCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
