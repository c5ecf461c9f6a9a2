package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/perfkit/hwbench/internal/models"
)

// ErrUnknownMetric indicates a metric with no configured baseline.
var ErrUnknownMetric = errors.New("no baseline for metric")

// BaselineTable is the process-wide lookup of metric baselines. It is
// built once at startup and never mutated afterward, so normalization
// stays reproducible and safe to call from concurrent goroutines.
type BaselineTable struct {
	byMetric map[string]models.MetricBaseline
}

// NewBaselineTable validates the given baselines and builds an
// immutable table keyed by metric name. Later entries for the same
// metric override earlier ones, which is how user config overrides the
// built-in defaults.
func NewBaselineTable(baselines []models.MetricBaseline) (*BaselineTable, error) {
	byMetric := make(map[string]models.MetricBaseline, len(baselines))
	for _, b := range baselines {
		if b.Metric == "" {
			return nil, fmt.Errorf("%w: baseline has no metric name", ErrInvalidBaseline)
		}
		if b.MinRef >= b.MaxRef {
			return nil, fmt.Errorf("%w: %q has min_ref %.3f >= max_ref %.3f",
				ErrInvalidBaseline, b.Metric, b.MinRef, b.MaxRef)
		}
		switch b.Direction {
		case models.HigherBetter, models.LowerBetter:
		case "":
			b.Direction = models.HigherBetter
		default:
			return nil, fmt.Errorf("%w: %q has unknown direction %q",
				ErrInvalidBaseline, b.Metric, b.Direction)
		}
		byMetric[b.Metric] = b
	}
	return &BaselineTable{byMetric: byMetric}, nil
}

// Lookup returns the baseline for a metric name.
func (t *BaselineTable) Lookup(metric string) (models.MetricBaseline, bool) {
	b, ok := t.byMetric[metric]
	return b, ok
}

// NormalizeStats maps one metric's aggregated mean onto [0,100] using
// the table. Returns ErrUnknownMetric when the metric has no baseline.
func (t *BaselineTable) NormalizeStats(ms models.MetricStats) (models.NormalizedScore, error) {
	b, ok := t.byMetric[ms.Metric]
	if !ok {
		return models.NormalizedScore{}, fmt.Errorf("%w: %q", ErrUnknownMetric, ms.Metric)
	}
	return Normalize(ms.Mean, b)
}

// Metrics returns the configured metric names in sorted order.
func (t *BaselineTable) Metrics() []string {
	names := make([]string, 0, len(t.byMetric))
	for name := range t.byMetric {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
