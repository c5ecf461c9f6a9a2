package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/perfkit/hwbench/internal/models"
)

// DiskOptions configures the fio disk benchmark.
type DiskOptions struct {
	Directory   string `mapstructure:"directory"`
	FileSizeMB  int    `mapstructure:"file_size_mb"`
	RuntimeSec  int    `mapstructure:"runtime"`
	IODepth     int    `mapstructure:"iodepth"`
	DirectIO    bool   `mapstructure:"direct"`
	SkipRandom  bool   `mapstructure:"skip_random"`
	SkipSequent bool   `mapstructure:"skip_sequential"`
}

// fioJob describes one fio invocation and how its result maps to
// metrics.
type fioJob struct {
	name      string
	rw        string
	blockSize string
	// read selects jobs[0].read over jobs[0].write in fio's JSON.
	read bool
	// iopsMetric / bwMetric name the sample each job contributes;
	// random jobs report IOPS, sequential jobs report bandwidth.
	iopsMetric string
	bwMetric   string
}

var fioJobs = []fioJob{
	{name: "randread", rw: "randread", blockSize: "4k", read: true, iopsMetric: "randread_iops"},
	{name: "randwrite", rw: "randwrite", blockSize: "4k", read: false, iopsMetric: "randwrite_iops"},
	{name: "seqread", rw: "read", blockSize: "1m", read: true, bwMetric: "seq_read_bandwidth_kb"},
	{name: "seqwrite", rw: "write", blockSize: "1m", read: false, bwMetric: "seq_write_bandwidth_kb"},
}

type diskRunner struct {
	systemID string
	opts     DiskOptions
}

func newDiskRunner(systemID string, params map[string]any) (*diskRunner, error) {
	opts := DiskOptions{Directory: ".", FileSizeMB: 256, RuntimeSec: 10, IODepth: 16, DirectIO: true}
	if err := decodeParams(params, &opts); err != nil {
		return nil, fmt.Errorf("disk: %w", err)
	}
	return &diskRunner{systemID: systemID, opts: opts}, nil
}

func (r *diskRunner) Component() models.Component { return models.ComponentDisk }

func (r *diskRunner) Run(ctx context.Context, runIndex int) ([]models.RawSample, error) {
	bin, err := requireTool("fio")
	if err != nil {
		return nil, err
	}

	var samples []models.RawSample
	for _, job := range fioJobs {
		random := job.iopsMetric != ""
		if (random && r.opts.SkipRandom) || (!random && r.opts.SkipSequent) {
			continue
		}

		args := []string{
			"--name=" + job.name,
			"--directory=" + r.opts.Directory,
			fmt.Sprintf("--size=%dM", r.opts.FileSizeMB),
			"--rw=" + job.rw,
			"--bs=" + job.blockSize,
			fmt.Sprintf("--runtime=%d", r.opts.RuntimeSec),
			"--time_based",
			fmt.Sprintf("--iodepth=%d", r.opts.IODepth),
			"--output-format=json",
		}
		if r.opts.DirectIO {
			args = append(args, "--direct=1")
		}
		slog.Debug("running disk benchmark", "cmd", bin, "job", job.name, "run", runIndex)

		out, err := exec.CommandContext(ctx, bin, args...).Output()
		if err != nil {
			return nil, fmt.Errorf("fio %s: %w", job.name, err)
		}

		jobSamples, err := parseFioOutput(r.systemID, runIndex, job, out)
		if err != nil {
			return nil, err
		}
		samples = append(samples, jobSamples...)
	}
	return samples, nil
}

// fioResult mirrors the slice of fio's JSON output we consume.
// bw is in KB/s.
type fioResult struct {
	Jobs []struct {
		Read struct {
			IOPS float64 `json:"iops"`
			BW   float64 `json:"bw"`
		} `json:"read"`
		Write struct {
			IOPS float64 `json:"iops"`
			BW   float64 `json:"bw"`
		} `json:"write"`
	} `json:"jobs"`
}

func parseFioOutput(systemID string, runIndex int, job fioJob, output []byte) ([]models.RawSample, error) {
	var result fioResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("fio %s: parsing JSON output: %w", job.name, err)
	}
	if len(result.Jobs) == 0 {
		return nil, fmt.Errorf("fio %s: no jobs in output", job.name)
	}

	iops, bw := result.Jobs[0].Write.IOPS, result.Jobs[0].Write.BW
	if job.read {
		iops, bw = result.Jobs[0].Read.IOPS, result.Jobs[0].Read.BW
	}

	sample := func(metric string, value float64) models.RawSample {
		return models.RawSample{
			SystemID:  systemID,
			Component: models.ComponentDisk,
			Metric:    metric,
			Value:     value,
			RunIndex:  runIndex,
		}
	}

	var samples []models.RawSample
	if job.iopsMetric != "" {
		samples = append(samples, sample(job.iopsMetric, iops))
	}
	if job.bwMetric != "" {
		samples = append(samples, sample(job.bwMetric, bw))
	}
	return samples, nil
}
