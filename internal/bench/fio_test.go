package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/hwbench/internal/models"
)

const fioRandReadOutput = `{
  "fio version": "fio-3.28",
  "jobs": [
    {
      "jobname": "randread",
      "read": {
        "io_bytes": 1981808640,
        "bw": 193536,
        "iops": 48213.42
      },
      "write": {
        "io_bytes": 0,
        "bw": 0,
        "iops": 0
      }
    }
  ]
}`

const fioSeqWriteOutput = `{
  "fio version": "fio-3.28",
  "jobs": [
    {
      "jobname": "seqwrite",
      "read": {
        "io_bytes": 0,
        "bw": 0,
        "iops": 0
      },
      "write": {
        "io_bytes": 5242880000,
        "bw": 512000,
        "iops": 500.0
      }
    }
  ]
}`

func TestParseFioOutput_RandomRead(t *testing.T) {
	job := fioJobs[0]
	require.Equal(t, "randread", job.name)

	samples, err := parseFioOutput("node-a", 0, job, []byte(fioRandReadOutput))
	require.NoError(t, err)
	require.Len(t, samples, 1)

	assert.Equal(t, "randread_iops", samples[0].Metric)
	assert.Equal(t, 48213.42, samples[0].Value)
	assert.Equal(t, models.ComponentDisk, samples[0].Component)
}

func TestParseFioOutput_SequentialWrite(t *testing.T) {
	job := fioJobs[3]
	require.Equal(t, "seqwrite", job.name)

	samples, err := parseFioOutput("node-a", 1, job, []byte(fioSeqWriteOutput))
	require.NoError(t, err)
	require.Len(t, samples, 1)

	assert.Equal(t, "seq_write_bandwidth_kb", samples[0].Metric)
	assert.Equal(t, 512000.0, samples[0].Value)
}

func TestParseFioOutput_Malformed(t *testing.T) {
	_, err := parseFioOutput("node-a", 0, fioJobs[0], []byte("not json"))
	require.Error(t, err)
}

func TestParseFioOutput_NoJobs(t *testing.T) {
	_, err := parseFioOutput("node-a", 0, fioJobs[0], []byte(`{"jobs": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no jobs")
}

func TestNewDiskRunner_Defaults(t *testing.T) {
	r, err := newDiskRunner("node-a", nil)
	require.NoError(t, err)
	assert.Equal(t, ".", r.opts.Directory)
	assert.Equal(t, 256, r.opts.FileSizeMB)
	assert.Equal(t, 16, r.opts.IODepth)
	assert.True(t, r.opts.DirectIO)
}

func TestNewDiskRunner_SkipFlags(t *testing.T) {
	r, err := newDiskRunner("node-a", map[string]any{"skip_sequential": true})
	require.NoError(t, err)
	assert.True(t, r.opts.SkipSequent)
	assert.False(t, r.opts.SkipRandom)
}
