package models

import "github.com/perfkit/hwbench/internal/statistics"

// Direction states whether larger raw values of a metric are better
// (throughput-like) or worse (latency-like).
type Direction string

const (
	HigherBetter Direction = "higher_better"
	LowerBetter  Direction = "lower_better"
)

// MetricStats summarizes the repeated-run samples of one metric.
// All statistics use the population standard deviation so variance
// figures stay comparable across systems with different run counts.
type MetricStats struct {
	Metric          string  `json:"metric"`
	Mean            float64 `json:"mean"`
	Median          float64 `json:"median"`
	StdDev          float64 `json:"std_dev"`
	VariancePercent float64 `json:"variance_percent"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	SampleCount     int     `json:"sample_count"`

	// Degenerate is set when the summary comes from a zero-mean or
	// single-sample input. VariancePercent is reported as 0 in that
	// case rather than a misleading number.
	Degenerate bool `json:"degenerate,omitempty"`

	// BootstrapCI is populated when more than one run is available.
	BootstrapCI *statistics.ConfidenceInterval `json:"bootstrap_ci,omitempty"`
}

// MetricBaseline is the reference range used to normalize one metric
// onto the 0–100 scale. MinRef must be strictly less than MaxRef.
type MetricBaseline struct {
	Metric    string    `json:"metric"`
	MinRef    float64   `json:"min_ref"`
	MaxRef    float64   `json:"max_ref"`
	Direction Direction `json:"direction"`
}

// NormalizedScore is one metric's mean mapped onto [0,100].
type NormalizedScore struct {
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
}
