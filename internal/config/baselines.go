package config

import "github.com/perfkit/hwbench/internal/models"

// DefaultBaselines returns the stock reference ranges used to normalize
// raw metrics when the config file supplies no overrides. The ranges
// bracket typical commodity hardware; scores clamp at the endpoints, so
// a machine outside the range still gets a sane 0 or 100.
func DefaultBaselines() []models.MetricBaseline {
	return []models.MetricBaseline{
		{Metric: "events_per_second", MinRef: 100, MaxRef: 10000, Direction: models.HigherBetter},
		{Metric: "latency_avg_ms", MinRef: 0.1, MaxRef: 100, Direction: models.LowerBetter},
		{Metric: "latency_95p_ms", MinRef: 0.2, MaxRef: 200, Direction: models.LowerBetter},
		{Metric: "transfer_rate_mib_sec", MinRef: 1000, MaxRef: 50000, Direction: models.HigherBetter},
		{Metric: "randread_iops", MinRef: 100, MaxRef: 100000, Direction: models.HigherBetter},
		{Metric: "randwrite_iops", MinRef: 100, MaxRef: 100000, Direction: models.HigherBetter},
		{Metric: "seq_read_bandwidth_kb", MinRef: 10000, MaxRef: 5000000, Direction: models.HigherBetter},
		{Metric: "seq_write_bandwidth_kb", MinRef: 10000, MaxRef: 5000000, Direction: models.HigherBetter},
		{Metric: "bandwidth_mbps", MinRef: 10, MaxRef: 10000, Direction: models.HigherBetter},
	}
}
