// Package stats reduces repeated-run benchmark samples into summary
// statistics. It is the first stage of the scoring pipeline: raw run
// values in, one MetricStats record out.
package stats

import (
	"errors"
	"fmt"

	"github.com/perfkit/hwbench/internal/metrics"
	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/statistics"
)

// ErrInsufficientData is returned when a metric has no samples at all.
// A metric with zero runs cannot be summarized; callers decide whether
// to skip the metric or abort.
var ErrInsufficientData = errors.New("no samples to aggregate")

// Aggregate reduces the ordered run values of one metric into summary
// statistics. The standard deviation is the population form so that
// variance figures stay comparable across systems with different run
// counts.
//
// VariancePercent is std_dev / mean × 100. When the mean is 0 or only
// a single sample exists it is reported as 0 and the result is flagged
// Degenerate instead of hiding the condition inside a plausible number.
func Aggregate(metric string, values []float64) (models.MetricStats, error) {
	n := len(values)
	if n == 0 {
		return models.MetricStats{}, fmt.Errorf("metric %q: %w", metric, ErrInsufficientData)
	}

	mean := metrics.Mean(values)
	stdDev := metrics.StdDev(values)
	mn, mx := metrics.MinMax(values)

	ms := models.MetricStats{
		Metric:      metric,
		Mean:        mean,
		Median:      metrics.Median(values),
		StdDev:      stdDev,
		Min:         mn,
		Max:         mx,
		SampleCount: n,
	}

	switch {
	case n == 1:
		ms.StdDev = 0
		ms.VariancePercent = 0
		ms.Degenerate = true
	case mean == 0:
		ms.VariancePercent = 0
		ms.Degenerate = true
	default:
		ms.VariancePercent = stdDev / mean * 100
	}

	return ms, nil
}

// AggregateWithCI is Aggregate plus a seeded bootstrap confidence
// interval when more than one run is available. Pass a negative seed
// for a non-deterministic interval.
func AggregateWithCI(metric string, values []float64, seed int64) (models.MetricStats, error) {
	ms, err := Aggregate(metric, values)
	if err != nil {
		return ms, err
	}
	if len(values) > 1 {
		ci := statistics.BootstrapCIWithSeed(values, 0.95, seed)
		ms.BootstrapCI = &ci
	}
	return ms, nil
}
