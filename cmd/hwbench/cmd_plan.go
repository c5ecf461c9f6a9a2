package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perfkit/hwbench/internal/config"
	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/plan"
)

var (
	planWorkload string
	planFormat   string
	planCosts    []string
)

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <result1.json> [result2.json ...]",
		Short: "Recommend systems for a workload, optionally cost-adjusted",
		Long: `Rank benchmarked systems for a workload profile.

Without costs, systems rank by their workload composite score. With
--cost for EVERY system, they rank by performance per cost unit instead.
Partial cost data is rejected: it would silently favor the systems that
happen to be missing a price.`,
		Args: cobra.MinimumNArgs(1),
		RunE: planCommandE,
	}

	cmd.Flags().StringVarP(&planWorkload, "workload", "w", "general_purpose", "Workload profile to plan for")
	cmd.Flags().StringVarP(&planFormat, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringArrayVarP(&planCosts, "cost", "c", nil, "System cost as name=price (repeat per system)")

	return cmd
}

func planCommandE(_ *cobra.Command, args []string) error {
	if planFormat != "table" && planFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", planFormat)
	}

	costs, err := parseCosts(planCosts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	profile, err := findProfile(cfg, planWorkload)
	if err != nil {
		return err
	}

	results, err := loadBundles(args)
	if err != nil {
		return err
	}

	inputs := make([]plan.Input, 0, len(results))
	for _, r := range results {
		composite, ok := r.Composite(planWorkload)
		if !ok {
			return fmt.Errorf("system %q has no composite for workload %q", r.SystemID, planWorkload)
		}
		in := plan.Input{
			SystemID:   r.SystemID,
			Categories: r.CategoryMap(),
			Composite:  composite,
		}
		if cost, ok := costs[r.SystemID]; ok {
			in.Cost = &cost
			delete(costs, r.SystemID)
		}
		inputs = append(inputs, in)
	}
	for name := range costs {
		return fmt.Errorf("--cost given for unknown system %q", name)
	}

	capacityPlan, err := plan.NewEngine(profile).Plan(inputs)
	if err != nil {
		return err
	}

	if planFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(capacityPlan)
	}
	printPlanTable(os.Stdout, capacityPlan)
	return nil
}

func parseCosts(entries []string) (map[string]float64, error) {
	costs := make(map[string]float64, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --cost %q: expected name=price", entry)
		}
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --cost %q: %w", entry, err)
		}
		costs[name] = price
	}
	return costs, nil
}

func findProfile(cfg *config.Config, name string) (models.WorkloadProfile, error) {
	profiles, err := cfg.WorkloadProfiles()
	if err != nil {
		return models.WorkloadProfile{}, err
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return models.WorkloadProfile{}, fmt.Errorf("unknown workload %q: available: %s", name, strings.Join(names, ", "))
}
