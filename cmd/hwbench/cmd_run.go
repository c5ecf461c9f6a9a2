package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/perfkit/hwbench/internal/config"
	"github.com/perfkit/hwbench/internal/orchestration"
	"github.com/perfkit/hwbench/internal/reporting"
	"github.com/perfkit/hwbench/internal/spinner"
)

var (
	runSystemID string
	runOutDir   string
	runRuns     int
	runParallel bool
	runArchive  bool
	runSeed     int64
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmarks on this system and score the results",
		Long: `Run the enabled component benchmarks, repeat each one the configured
number of times, and write a scored result bundle.

Configuration is read from .hwbench.yaml (searched upward from the
current directory); flags override the file. Components whose benchmark
tool is missing or fails are skipped and reported, never scored as 0.`,
		Args: cobra.NoArgs,
		RunE: runCommandE,
	}

	cmd.Flags().StringVarP(&runSystemID, "system", "s", "", "System name for the result bundle (default: hostname)")
	cmd.Flags().StringVarP(&runOutDir, "output", "o", "", "Output directory for the result bundle")
	cmd.Flags().IntVar(&runRuns, "runs", 0, "Number of runs per benchmark (overrides config)")
	cmd.Flags().BoolVar(&runParallel, "parallel", false, "Run component benchmarks concurrently (results may interfere)")
	cmd.Flags().BoolVar(&runArchive, "archive", false, "Also write a zstd-compressed archive of the bundle")
	cmd.Flags().Int64Var(&runSeed, "seed", -1, "Seed for bootstrap confidence intervals (-1: non-deterministic)")

	return cmd
}

func runCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if runRuns > 0 {
		cfg.Runs = runRuns
	}
	outDir := cfg.OutputDir
	if runOutDir != "" {
		outDir = runOutDir
	}

	systemID := runSystemID
	if systemID == "" {
		systemID, err = os.Hostname()
		if err != nil {
			return fmt.Errorf("no --system given and hostname lookup failed: %w", err)
		}
	}

	baselines, err := cfg.BaselineTable()
	if err != nil {
		return err
	}
	profiles, err := cfg.WorkloadProfiles()
	if err != nil {
		return err
	}

	runner := &orchestration.Runner{
		SystemID:      systemID,
		Config:        cfg,
		Baselines:     baselines,
		Profiles:      profiles,
		Parallel:      runParallel,
		BootstrapSeed: runSeed,
	}

	var sp *spinner.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		sp = spinner.Start(os.Stderr, "benchmarking "+systemID)
		runner.Progress = sp.Update
	}

	result, err := runner.Execute(cmd.Context())
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	bundlePath := filepath.Join(outDir, systemID+".json")
	if err := reporting.WriteBundle(bundlePath, result); err != nil {
		return err
	}

	if runArchive {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling result for archive: %w", err)
		}
		archivePath := filepath.Join(outDir, systemID+".tar.zst")
		if err := reporting.WriteArchive(archivePath, map[string][]byte{systemID + ".json": data}); err != nil {
			return err
		}
	}

	printRunSummary(os.Stdout, result, bundlePath)

	if len(result.Skipped) > 0 {
		return &PartialResultError{Skipped: result.Skipped}
	}
	return nil
}
