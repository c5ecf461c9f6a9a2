package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perfkit/hwbench/internal/compare"
	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/reporting"
)

var (
	compareWorkload string
	compareFormat   string
	compareMatrix   string
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <result1.json> <result2.json> [result3.json ...]",
		Short: "Compare scored results from multiple systems",
		Long: `Compare result bundles from two or more systems side by side.

Each bundle is validated before use. Systems are ranked per category
and overall (using the composite for the chosen workload); the report
shows winners and each system's percentage gap to the best performer.`,
		Args: cobra.MinimumNArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareWorkload, "workload", "w", "general_purpose", "Workload whose composite ranks the systems overall")
	cmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "Output format: table, json, or csv")
	cmd.Flags().StringVar(&compareMatrix, "matrix", "", "Also write a systems x workloads CSV matrix to this file")

	return cmd
}

func compareCommandE(_ *cobra.Command, args []string) error {
	if compareFormat != "table" && compareFormat != "json" && compareFormat != "csv" {
		return fmt.Errorf("unsupported format %q: must be table, json, or csv", compareFormat)
	}

	results, err := loadBundles(args)
	if err != nil {
		return err
	}

	systems, err := systemScores(results, compareWorkload)
	if err != nil {
		return err
	}

	result, err := compare.Compare(systems)
	if err != nil {
		return err
	}

	if compareMatrix != "" {
		f, err := os.Create(compareMatrix)
		if err != nil {
			return fmt.Errorf("creating %s: %w", compareMatrix, err)
		}
		defer f.Close() //nolint:errcheck
		if err := reporting.WriteWorkloadMatrixCSV(f, results); err != nil {
			return err
		}
	}

	switch compareFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return reporting.WriteComparisonCSV(os.Stdout, result)
	default:
		printComparisonTable(os.Stdout, result)
		return nil
	}
}

func loadBundles(paths []string) ([]*models.SystemResult, error) {
	seen := make(map[string]string, len(paths))
	results := make([]*models.SystemResult, 0, len(paths))
	for _, path := range paths {
		r, err := reporting.LoadBundle(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[r.SystemID]; dup {
			return nil, fmt.Errorf("system %q appears in both %s and %s", r.SystemID, prev, path)
		}
		seen[r.SystemID] = path
		results = append(results, r)
	}
	return results, nil
}

// systemScores projects result bundles onto the comparator's input for
// one workload.
func systemScores(results []*models.SystemResult, workloadName string) ([]compare.SystemScores, error) {
	systems := make([]compare.SystemScores, 0, len(results))
	for _, r := range results {
		composite, ok := r.Composite(workloadName)
		if !ok {
			return nil, fmt.Errorf("system %q has no composite for workload %q (re-run with a config that defines it)",
				r.SystemID, workloadName)
		}
		systems = append(systems, compare.SystemScores{
			SystemID:   r.SystemID,
			Categories: r.CategoryMap(),
			Composite:  composite,
		})
	}
	return systems, nil
}
