package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/hwbench/internal/models"
)

const sysbenchCPUOutput = `sysbench 1.0.20 (using system LuaJIT 2.1.0-beta3)

Running the test with following options:
Number of threads: 4
Initializing random number generator from current time

Prime numbers limit: 20000

Initializing worker threads...

Threads started!

CPU speed:
    events per second:  1432.87

General statistics:
    total time:                          10.0021s
    total number of events:              14334

Latency (ms):
         min:                                    2.64
         avg:                                    2.79
         max:                                   11.63
         95th percentile:                        3.02
         sum:                                39988.12

Threads fairness:
    events (avg/stddev):           3583.5000/15.74
    execution time (avg/stddev):   9.9970/0.00
`

const sysbenchMemoryOutput = `sysbench 1.0.20 (using system LuaJIT 2.1.0-beta3)

Running memory speed test with the following options:
  block size: 1KiB
  total size: 10240MiB
  operation: write
  scope: global

Initializing worker threads...

Threads started!

Total operations: 10485760 (4193257.53 per second)

10240.00 MiB transferred (4094.98 MiB/sec)

General statistics:
    total time:                          2.4995s
    total number of events:              10485760
`

func TestParseSysbenchCPU(t *testing.T) {
	samples, err := parseSysbenchCPU("node-a", 2, sysbenchCPUOutput)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	byMetric := make(map[string]models.RawSample)
	for _, s := range samples {
		assert.Equal(t, "node-a", s.SystemID)
		assert.Equal(t, models.ComponentCPU, s.Component)
		assert.Equal(t, 2, s.RunIndex)
		byMetric[s.Metric] = s
	}

	assert.Equal(t, 1432.87, byMetric["events_per_second"].Value)
	assert.Equal(t, 2.79, byMetric["latency_avg_ms"].Value)
	assert.Equal(t, 3.02, byMetric["latency_95p_ms"].Value)
}

func TestParseSysbenchCPU_NoLatency(t *testing.T) {
	samples, err := parseSysbenchCPU("node-a", 0, "CPU speed:\n    events per second:  900.10\n")
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "events_per_second", samples[0].Metric)
}

func TestParseSysbenchCPU_MissingThroughput(t *testing.T) {
	_, err := parseSysbenchCPU("node-a", 0, "no useful output here")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events-per-second")
}

func TestParseSysbenchMemory(t *testing.T) {
	samples, err := parseSysbenchMemory("node-a", 1, sysbenchMemoryOutput)
	require.NoError(t, err)
	require.Len(t, samples, 1)

	assert.Equal(t, "transfer_rate_mib_sec", samples[0].Metric)
	assert.Equal(t, 4094.98, samples[0].Value)
	assert.Equal(t, models.ComponentMemory, samples[0].Component)
	assert.Equal(t, 1, samples[0].RunIndex)
}

func TestParseSysbenchMemory_MissingRate(t *testing.T) {
	_, err := parseSysbenchMemory("node-a", 0, "garbage")
	require.Error(t, err)
}

func TestNewCPURunner_Params(t *testing.T) {
	r, err := newCPURunner("node-a", map[string]any{"threads": 8, "duration": 30})
	require.NoError(t, err)
	assert.Equal(t, 8, r.opts.Threads)
	assert.Equal(t, 30, r.opts.DurationSec)
	assert.Equal(t, 20000, r.opts.MaxPrime)
}

func TestNewCPURunner_UnknownParam(t *testing.T) {
	_, err := newCPURunner("node-a", map[string]any{"thredz": 8})
	require.Error(t, err)
}

func TestNewMemoryRunner_Defaults(t *testing.T) {
	r, err := newMemoryRunner("node-a", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, r.opts.Threads)
	assert.Equal(t, "1K", r.opts.BlockSize)
	assert.Equal(t, "10G", r.opts.TotalSize)
}
