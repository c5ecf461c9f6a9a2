package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/workload"
)

// round2 formats a score the way reports present them: two decimals.
// The core keeps full precision; rounding happens only at this boundary.
func round2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WriteComparisonCSV renders a comparison result as CSV: one row per
// system, one column per category plus the composite.
func WriteComparisonCSV(w io.Writer, result *models.ComparisonResult) error {
	cw := csv.NewWriter(w)

	header := []string{"system", "composite"}
	for _, cr := range result.Categories {
		header = append(header, cr.Component.String())
	}
	header = append(header, "delta_vs_winner_pct")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: %w", err)
	}

	// Index category entries by system for row assembly.
	catScores := make(map[models.Component]map[string]float64, len(result.Categories))
	for _, cr := range result.Categories {
		m := make(map[string]float64, len(cr.Entries))
		for _, e := range cr.Entries {
			m[e.SystemID] = e.Score
		}
		catScores[cr.Component] = m
	}

	for _, entry := range result.Overall {
		row := []string{entry.SystemID, round2(entry.Score)}
		for _, cr := range result.Categories {
			if score, ok := catScores[cr.Component][entry.SystemID]; ok {
				row = append(row, round2(score))
			} else {
				row = append(row, "") // not benchmarked
			}
		}
		row = append(row, round2(entry.DeltaPercent))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteWorkloadMatrixCSV renders a systems × workloads pivot of
// composite scores, one row per system sorted by id, one column per
// workload profile present in any result.
func WriteWorkloadMatrixCSV(w io.Writer, results []*models.SystemResult) error {
	workloads := workloadNames(results)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"system"}, workloads...)); err != nil {
		return fmt.Errorf("csv: %w", err)
	}

	sorted := make([]*models.SystemResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SystemID < sorted[j].SystemID })

	for _, r := range sorted {
		row := []string{r.SystemID}
		for _, name := range workloads {
			if cs, ok := r.Composite(name); ok {
				row = append(row, round2(cs.Score))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// workloadNames collects the union of workload names across results:
// built-ins first in their canonical order, then customs sorted.
func workloadNames(results []*models.SystemResult) []string {
	seen := make(map[string]bool)
	for _, r := range results {
		for _, cs := range r.Composites {
			seen[cs.Workload] = true
		}
	}

	var names []string
	for _, p := range workload.BuiltinProfiles() {
		if seen[p.Name] {
			names = append(names, p.Name)
			delete(seen, p.Name)
		}
	}
	var customs []string
	for name := range seen {
		customs = append(customs, name)
	}
	sort.Strings(customs)
	return append(names, customs...)
}
