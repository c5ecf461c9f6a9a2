package models

import (
	"fmt"
	"math"
)

// CategoryScore is the unweighted mean of a component's normalized
// sub-metric scores for one system.
type CategoryScore struct {
	SystemID  string    `json:"system_id"`
	Component Component `json:"component"`
	Score     float64   `json:"score"`

	// Metrics carries the per-metric scores the category was averaged
	// from, for reporting.
	Metrics []NormalizedScore `json:"metrics,omitempty"`
}

// WorkloadProfile is a named weight vector over components expressing
// how much each category matters for a usage pattern. Weights must be
// non-negative and sum to 1.0; MinScores are optional per-component
// minimums a system should meet to qualify for the workload.
type WorkloadProfile struct {
	Name      string                `json:"name"`
	Weights   map[Component]float64 `json:"weights"`
	MinScores map[Component]float64 `json:"min_scores,omitempty"`
}

// Validate checks the profile in place. Weight vectors that sum to
// something other than 1.0 are normalized; negative weights and empty
// vectors are rejected.
func (p *WorkloadProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("workload profile has no name")
	}
	if len(p.Weights) == 0 {
		return fmt.Errorf("workload profile %q has no weights", p.Name)
	}
	total := 0.0
	for c, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("workload profile %q: negative weight %.3f for %s", p.Name, w, c)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("workload profile %q: weights sum to zero", p.Name)
	}
	if math.Abs(total-1.0) > 1e-9 {
		normalized := make(map[Component]float64, len(p.Weights))
		for c, w := range p.Weights {
			normalized[c] = w / total
		}
		p.Weights = normalized
	}
	return nil
}

// CompositeScore is the workload-weighted combination of one system's
// category scores.
type CompositeScore struct {
	SystemID string  `json:"system_id"`
	Workload string  `json:"workload"`
	Score    float64 `json:"score"`
}
