package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/perfkit/hwbench/internal/models"
)

// rawPrinter formats raw metric values with thousands separators so
// figures like 48,213 IOPS stay readable.
var rawPrinter = message.NewPrinter(language.English)

// badge maps a 0-100 score to a coarse rating, matching the thresholds
// used throughout the reports.
func badge(score float64) string {
	switch {
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	case score >= 30:
		return "below avg"
	default:
		return "poor"
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

func printRunSummary(w io.Writer, result *models.SystemResult, bundlePath string) {
	fmt.Fprintf(w, "System: %s (%d runs per benchmark)\n\n", result.SystemID, result.Runs)

	for _, cr := range result.Components {
		fmt.Fprintf(w, "%s: %.2f/100 (%s)\n", padRight(cr.Component.String(), 8), cr.Category.Score, badge(cr.Category.Score))
		for _, ms := range cr.Stats {
			line := rawPrinter.Sprintf("    %s mean=%.2f median=%.2f", padRight(ms.Metric, 24), ms.Mean, ms.Median)
			if ms.Degenerate {
				line += " (degenerate)"
			} else {
				line += fmt.Sprintf(" ±%.1f%%", ms.VariancePercent)
			}
			fmt.Fprintln(w, line)
		}
	}

	for _, skipped := range result.Skipped {
		fmt.Fprintf(w, "%s: skipped (not benchmarked)\n", padRight(skipped.String(), 8))
	}

	fmt.Fprintf(w, "\nOverall score (general_purpose): %.2f/100\n", result.OverallScore)
	fmt.Fprintf(w, "Result bundle: %s\n", bundlePath)
}

func printComparisonTable(w io.Writer, result *models.ComparisonResult) {
	nameWidth := columnWidth(result.Systems)

	fmt.Fprintf(w, "Comparison of %d systems (workload: %s)\n\n", len(result.Systems), result.Workload)

	for _, cr := range result.Categories {
		fmt.Fprintf(w, "%s\n", strings.ToUpper(cr.Component.String()))
		printRanking(w, cr.Entries, nameWidth)
	}

	fmt.Fprintln(w, "OVERALL")
	printRanking(w, result.Overall, nameWidth)
	fmt.Fprintf(w, "Winner: %s\n", result.OverallWinner)
}

func printRanking(w io.Writer, entries []models.RankedScore, nameWidth int) {
	for _, e := range entries {
		marker := "  "
		if e.Rank == 1 {
			marker = "* "
		}
		fmt.Fprintf(w, "  %s%s  %6.2f  %s", marker, padRight(truncateName(e.SystemID, nameWidth), nameWidth), e.Score, padRight(badge(e.Score), 9))
		if e.Rank > 1 {
			fmt.Fprintf(w, "  -%.1f%%", e.DeltaPercent)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func printPlanTable(w io.Writer, p *models.CapacityPlan) {
	var names []string
	for _, r := range p.Recommendations {
		names = append(names, r.SystemID)
	}
	nameWidth := columnWidth(names)

	ranking := "composite score"
	if p.CostRanked {
		ranking = "performance per cost unit"
	}
	fmt.Fprintf(w, "Capacity plan for %s (ranked by %s)\n\n", p.Workload, ranking)

	for _, r := range p.Recommendations {
		fmt.Fprintf(w, "%2d. %s  %6.2f/100", r.Rank, padRight(truncateName(r.SystemID, nameWidth), nameWidth), r.CompositeScore)
		if r.Cost != nil {
			fmt.Fprint(w, rawPrinter.Sprintf("  cost=%.2f  perf/cost=%.4f", *r.Cost, *r.PerfPerCost))
		}
		if r.MeetsRequirements {
			fmt.Fprint(w, "  meets requirements")
		} else {
			fmt.Fprint(w, "  BELOW minimums")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nBest performance: %s\n", p.BestPerformance)
	if p.BestValue != "" {
		fmt.Fprintf(w, "Best value: %s\n", p.BestValue)
	}
}

// columnWidth sizes the system-name column: wide enough for the longest
// name, capped so one verbose hostname cannot blow up the table.
func columnWidth(names []string) int {
	const maxWidth = 32
	width := 8
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}
