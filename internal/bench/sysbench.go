package bench

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/perfkit/hwbench/internal/models"
)

// CPUOptions configures the sysbench cpu benchmark.
type CPUOptions struct {
	Threads     int `mapstructure:"threads"`
	DurationSec int `mapstructure:"duration"`
	MaxPrime    int `mapstructure:"max_prime"`
}

type cpuRunner struct {
	systemID string
	opts     CPUOptions
}

func newCPURunner(systemID string, params map[string]any) (*cpuRunner, error) {
	opts := CPUOptions{Threads: 4, DurationSec: 10, MaxPrime: 20000}
	if err := decodeParams(params, &opts); err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}
	return &cpuRunner{systemID: systemID, opts: opts}, nil
}

func (r *cpuRunner) Component() models.Component { return models.ComponentCPU }

func (r *cpuRunner) Run(ctx context.Context, runIndex int) ([]models.RawSample, error) {
	bin, err := requireTool("sysbench")
	if err != nil {
		return nil, err
	}

	args := []string{
		"cpu",
		fmt.Sprintf("--threads=%d", r.opts.Threads),
		fmt.Sprintf("--time=%d", r.opts.DurationSec),
		fmt.Sprintf("--cpu-max-prime=%d", r.opts.MaxPrime),
		"run",
	}
	slog.Debug("running cpu benchmark", "cmd", bin, "args", args, "run", runIndex)

	out, err := exec.CommandContext(ctx, bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("sysbench cpu: %w", err)
	}

	return parseSysbenchCPU(r.systemID, runIndex, string(out))
}

var (
	reEventsPerSec = regexp.MustCompile(`events per second:\s+([\d.]+)`)
	reLatencyAvg   = regexp.MustCompile(`avg:\s+([\d.]+)`)
	reLatency95p   = regexp.MustCompile(`95th percentile:\s+([\d.]+)`)
	reTransferRate = regexp.MustCompile(`transferred \(([\d.]+) MiB/sec\)`)
)

// parseSysbenchCPU extracts the throughput and latency metrics from
// sysbench's textual cpu report. Events per second is mandatory; the
// latency lines are included when present.
func parseSysbenchCPU(systemID string, runIndex int, output string) ([]models.RawSample, error) {
	sample := func(metric string, value float64) models.RawSample {
		return models.RawSample{
			SystemID:  systemID,
			Component: models.ComponentCPU,
			Metric:    metric,
			Value:     value,
			RunIndex:  runIndex,
		}
	}

	m := reEventsPerSec.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("sysbench cpu: no events-per-second figure in output")
	}
	eps, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("sysbench cpu: bad events-per-second %q: %w", m[1], err)
	}
	samples := []models.RawSample{sample("events_per_second", eps)}

	if m := reLatencyAvg.FindStringSubmatch(output); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			samples = append(samples, sample("latency_avg_ms", v))
		}
	}
	if m := reLatency95p.FindStringSubmatch(output); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			samples = append(samples, sample("latency_95p_ms", v))
		}
	}

	return samples, nil
}

// MemoryOptions configures the sysbench memory benchmark.
type MemoryOptions struct {
	Threads     int    `mapstructure:"threads"`
	BlockSize   string `mapstructure:"block_size"`
	TotalSize   string `mapstructure:"total_size"`
	DurationSec int    `mapstructure:"duration"`
}

type memoryRunner struct {
	systemID string
	opts     MemoryOptions
}

func newMemoryRunner(systemID string, params map[string]any) (*memoryRunner, error) {
	opts := MemoryOptions{Threads: 4, BlockSize: "1K", TotalSize: "10G", DurationSec: 10}
	if err := decodeParams(params, &opts); err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	return &memoryRunner{systemID: systemID, opts: opts}, nil
}

func (r *memoryRunner) Component() models.Component { return models.ComponentMemory }

func (r *memoryRunner) Run(ctx context.Context, runIndex int) ([]models.RawSample, error) {
	bin, err := requireTool("sysbench")
	if err != nil {
		return nil, err
	}

	args := []string{
		"memory",
		fmt.Sprintf("--threads=%d", r.opts.Threads),
		fmt.Sprintf("--memory-block-size=%s", r.opts.BlockSize),
		fmt.Sprintf("--memory-total-size=%s", r.opts.TotalSize),
		fmt.Sprintf("--time=%d", r.opts.DurationSec),
		"run",
	}
	slog.Debug("running memory benchmark", "cmd", bin, "args", args, "run", runIndex)

	out, err := exec.CommandContext(ctx, bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("sysbench memory: %w", err)
	}

	return parseSysbenchMemory(r.systemID, runIndex, string(out))
}

// parseSysbenchMemory extracts the transfer rate from sysbench's
// textual memory report.
func parseSysbenchMemory(systemID string, runIndex int, output string) ([]models.RawSample, error) {
	m := reTransferRate.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("sysbench memory: no transfer rate in output")
	}
	rate, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("sysbench memory: bad transfer rate %q: %w", m[1], err)
	}
	return []models.RawSample{{
		SystemID:  systemID,
		Component: models.ComponentMemory,
		Metric:    "transfer_rate_mib_sec",
		Value:     rate,
		RunIndex:  runIndex,
	}}, nil
}
