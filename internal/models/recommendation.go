package models

// CapacityRecommendation ranks one system for a workload, optionally
// adjusted for hardware cost.
type CapacityRecommendation struct {
	SystemID       string  `json:"system_id"`
	Workload       string  `json:"workload"`
	CompositeScore float64 `json:"composite_score"`
	Rank           int     `json:"rank"`

	// Cost-based fields are nil when the plan was ranked purely on
	// performance (no costs supplied).
	Cost        *float64 `json:"cost,omitempty"`
	PerfPerCost *float64 `json:"performance_per_cost,omitempty"`

	// MeetsRequirements is true when every category score reaches the
	// workload profile's minimum for that component.
	MeetsRequirements bool `json:"meets_requirements"`
}

// CapacityPlan is the full output of a capacity-planning run.
type CapacityPlan struct {
	Workload        string                   `json:"workload"`
	CostRanked      bool                     `json:"cost_ranked"`
	Recommendations []CapacityRecommendation `json:"recommendations"`
	BestPerformance string                   `json:"best_performance"`

	// BestValue is the system with the lowest cost per score point.
	// Empty when no costs were supplied.
	BestValue string `json:"best_value,omitempty"`
}
