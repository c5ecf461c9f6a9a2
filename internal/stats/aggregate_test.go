package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_IdenticalRuns(t *testing.T) {
	ms, err := Aggregate("events_per_second", []float64{100, 100, 100})
	require.NoError(t, err)

	assert.Equal(t, "events_per_second", ms.Metric)
	assert.Equal(t, 100.0, ms.Mean)
	assert.Equal(t, 100.0, ms.Median)
	assert.Equal(t, 0.0, ms.StdDev)
	assert.Equal(t, 0.0, ms.VariancePercent)
	assert.Equal(t, 3, ms.SampleCount)
	assert.False(t, ms.Degenerate)
}

func TestAggregate_VariancePercent(t *testing.T) {
	// mean=100, population stddev=sqrt((400+0+400)/3)
	ms, err := Aggregate("bandwidth_mbps", []float64{80, 100, 120})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, ms.Mean, 1e-9)
	assert.InDelta(t, 16.329931618554518, ms.StdDev, 1e-9)
	assert.InDelta(t, 16.329931618554518, ms.VariancePercent, 1e-9)
	assert.False(t, ms.Degenerate)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate("events_per_second", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	assert.Contains(t, err.Error(), "events_per_second")
}

func TestAggregate_SingleSample(t *testing.T) {
	ms, err := Aggregate("randread_iops", []float64{5000})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, ms.Mean)
	assert.Equal(t, 0.0, ms.StdDev)
	assert.Equal(t, 0.0, ms.VariancePercent)
	assert.True(t, ms.Degenerate)
}

func TestAggregate_ZeroMean(t *testing.T) {
	ms, err := Aggregate("latency_avg_ms", []float64{-5, 0, 5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, ms.Mean)
	assert.Equal(t, 0.0, ms.VariancePercent)
	assert.True(t, ms.Degenerate)
	// the raw spread is still reported
	assert.Greater(t, ms.StdDev, 0.0)
}

func TestAggregate_Bounds(t *testing.T) {
	ms, err := Aggregate("transfer_rate_mib_sec", []float64{7000, 9000, 8000, 8500})
	require.NoError(t, err)

	assert.LessOrEqual(t, ms.Min, ms.Mean)
	assert.LessOrEqual(t, ms.Mean, ms.Max)
	assert.LessOrEqual(t, ms.Min, ms.Median)
	assert.LessOrEqual(t, ms.Median, ms.Max)
	assert.Equal(t, 7000.0, ms.Min)
	assert.Equal(t, 9000.0, ms.Max)
}

func TestAggregateWithCI(t *testing.T) {
	ms, err := AggregateWithCI("events_per_second", []float64{950, 1000, 1050}, 42)
	require.NoError(t, err)
	require.NotNil(t, ms.BootstrapCI)

	assert.InDelta(t, 1000.0, ms.BootstrapCI.Mean, 1e-9)
	assert.LessOrEqual(t, ms.BootstrapCI.Lower, ms.BootstrapCI.Mean)
	assert.GreaterOrEqual(t, ms.BootstrapCI.Upper, ms.BootstrapCI.Mean)

	// same seed, same interval
	again, err := AggregateWithCI("events_per_second", []float64{950, 1000, 1050}, 42)
	require.NoError(t, err)
	assert.Equal(t, ms.BootstrapCI.Lower, again.BootstrapCI.Lower)
	assert.Equal(t, ms.BootstrapCI.Upper, again.BootstrapCI.Upper)
}

func TestAggregateWithCI_SingleSample(t *testing.T) {
	ms, err := AggregateWithCI("events_per_second", []float64{1000}, 42)
	require.NoError(t, err)
	assert.Nil(t, ms.BootstrapCI)
}
