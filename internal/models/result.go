package models

import "time"

// SystemResult is the complete scored output of benchmarking one
// system. It is the serialized record the compare and plan commands
// consume; rendering it to CSV/tables is the reporting layer's job.
type SystemResult struct {
	SystemID   string            `json:"system_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Runs       int               `json:"runs"`
	Samples    []RawSample       `json:"samples"`
	Components []ComponentResult `json:"components"`
	Composites []CompositeScore  `json:"composites"`

	// Skipped lists components that were enabled but produced no
	// usable samples. They are absent from Components; recording them
	// here keeps "failed" distinguishable from "disabled".
	Skipped []Component `json:"skipped_components,omitempty"`

	// OverallScore is the general_purpose composite, kept as a
	// headline number for single-system reports.
	OverallScore float64 `json:"overall_score"`
}

// ComponentResult holds the aggregated and scored view of one
// benchmarked component. Components that were disabled or produced no
// samples are absent from SystemResult.Components entirely. A missing
// category means "not benchmarked", never score 0.
type ComponentResult struct {
	Component Component     `json:"component"`
	Stats     []MetricStats `json:"stats"`
	Category  CategoryScore `json:"category"`
}

// CategoryMap returns the per-component category scores keyed by
// component.
func (r *SystemResult) CategoryMap() map[Component]CategoryScore {
	m := make(map[Component]CategoryScore, len(r.Components))
	for _, c := range r.Components {
		m[c.Component] = c.Category
	}
	return m
}

// Composite returns the composite score for the named workload.
func (r *SystemResult) Composite(workload string) (CompositeScore, bool) {
	for _, cs := range r.Composites {
		if cs.Workload == workload {
			return cs, true
		}
	}
	return CompositeScore{}, false
}
