package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/perfkit/hwbench/internal/models"
)

// NetworkOptions configures the iperf3 network benchmark. Host is the
// iperf3 server to test against and must be configured; a network
// benchmark has no meaningful local default.
type NetworkOptions struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	DurationSec int    `mapstructure:"duration"`
	Reverse     bool   `mapstructure:"reverse"`
}

type networkRunner struct {
	systemID string
	opts     NetworkOptions
}

func newNetworkRunner(systemID string, params map[string]any) (*networkRunner, error) {
	opts := NetworkOptions{Port: 5201, DurationSec: 10}
	if err := decodeParams(params, &opts); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	if opts.Host == "" {
		return nil, fmt.Errorf("network: no iperf3 server configured (set components.network.params.host)")
	}
	return &networkRunner{systemID: systemID, opts: opts}, nil
}

func (r *networkRunner) Component() models.Component { return models.ComponentNetwork }

func (r *networkRunner) Run(ctx context.Context, runIndex int) ([]models.RawSample, error) {
	bin, err := requireTool("iperf3")
	if err != nil {
		return nil, err
	}

	args := []string{
		"-c", r.opts.Host,
		"-p", fmt.Sprintf("%d", r.opts.Port),
		"-t", fmt.Sprintf("%d", r.opts.DurationSec),
		"--json",
	}
	if r.opts.Reverse {
		args = append(args, "-R")
	}
	slog.Debug("running network benchmark", "cmd", bin, "args", args, "run", runIndex)

	out, err := exec.CommandContext(ctx, bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("iperf3: %w", err)
	}

	return parseIperfOutput(r.systemID, runIndex, out)
}

// iperfResult mirrors the slice of iperf3's JSON output we consume.
type iperfResult struct {
	End struct {
		SumReceived struct {
			BitsPerSecond float64 `json:"bits_per_second"`
		} `json:"sum_received"`
	} `json:"end"`
}

func parseIperfOutput(systemID string, runIndex int, output []byte) ([]models.RawSample, error) {
	var result iperfResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("iperf3: parsing JSON output: %w", err)
	}
	bps := result.End.SumReceived.BitsPerSecond
	if bps == 0 {
		return nil, fmt.Errorf("iperf3: no received-throughput figure in output")
	}
	return []models.RawSample{{
		SystemID:  systemID,
		Component: models.ComponentNetwork,
		Metric:    "bandwidth_mbps",
		Value:     bps / 1e6,
		RunIndex:  runIndex,
	}}, nil
}
