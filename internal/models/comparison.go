package models

// RankedScore is one system's position within a single ranking.
// DeltaPercent is the relative distance to the winner:
// (winner − entry) / winner × 100, or 0 when the winner scored 0.
type RankedScore struct {
	SystemID     string  `json:"system_id"`
	Score        float64 `json:"score"`
	Rank         int     `json:"rank"`
	DeltaPercent float64 `json:"delta_percent"`
}

// CategoryRanking ranks all compared systems within one category.
type CategoryRanking struct {
	Component Component     `json:"component"`
	Winner    string        `json:"winner"`
	Entries   []RankedScore `json:"entries"`
}

// ComparisonResult is a read-only view over a fixed set of systems'
// scores. It is recomputed from its inputs whenever the input set
// changes, never mutated in place.
type ComparisonResult struct {
	Systems       []string          `json:"systems"`
	Workload      string            `json:"workload"`
	Categories    []CategoryRanking `json:"categories"`
	OverallWinner string            `json:"overall_winner"`
	Overall       []RankedScore     `json:"overall"`
}
