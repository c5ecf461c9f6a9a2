// Package scoring maps heterogeneous raw metrics onto a common 0–100
// scale and folds a component's metric scores into one category score.
package scoring

import (
	"errors"
	"fmt"

	"github.com/perfkit/hwbench/internal/metrics"
	"github.com/perfkit/hwbench/internal/models"
)

var (
	// ErrInvalidBaseline indicates a baseline whose reference range is
	// empty or inverted (min_ref >= max_ref).
	ErrInvalidBaseline = errors.New("invalid metric baseline")

	// ErrEmptyCategory indicates a component with no normalized metric
	// scores. Callers must treat this as "not benchmarked", never as
	// score 0.
	ErrEmptyCategory = errors.New("no metrics for category")
)

// Normalize maps a raw metric value onto [0,100] using the baseline's
// reference range. Values outside the range clamp to the endpoints;
// lower_better metrics score 100 at min_ref and 0 at max_ref.
func Normalize(value float64, b models.MetricBaseline) (models.NormalizedScore, error) {
	if b.MinRef >= b.MaxRef {
		return models.NormalizedScore{}, fmt.Errorf("%w: %q has min_ref %.3f >= max_ref %.3f",
			ErrInvalidBaseline, b.Metric, b.MinRef, b.MaxRef)
	}

	fraction := (value - b.MinRef) / (b.MaxRef - b.MinRef)
	if b.Direction == models.LowerBetter {
		fraction = 1 - fraction
	}

	score := fraction * 100
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return models.NormalizedScore{Metric: b.Metric, Score: score}, nil
}

// ScoreCategory computes the unweighted arithmetic mean of a
// component's normalized sub-metric scores.
func ScoreCategory(systemID string, component models.Component, scores []models.NormalizedScore) (models.CategoryScore, error) {
	if len(scores) == 0 {
		return models.CategoryScore{}, fmt.Errorf("%s/%s: %w", systemID, component, ErrEmptyCategory)
	}

	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = s.Score
	}

	return models.CategoryScore{
		SystemID:  systemID,
		Component: component,
		Score:     metrics.Mean(values),
		Metrics:   scores,
	}, nil
}
