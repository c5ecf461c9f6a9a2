// Package bench wraps the external benchmark tools (sysbench, fio,
// iperf3) behind a small Runner interface. Runners are thin: invoke the
// tool, parse its output into raw samples, and get out of the way. All
// scoring happens downstream.
package bench

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/go-viper/mapstructure/v2"

	"github.com/perfkit/hwbench/internal/models"
)

// Runner executes one component's benchmark and reports raw samples.
type Runner interface {
	// Component identifies the subsystem this runner measures.
	Component() models.Component

	// Run executes a single benchmark pass and returns the samples it
	// produced, tagged with the given run index. The context carries
	// the per-run deadline.
	Run(ctx context.Context, runIndex int) ([]models.RawSample, error)
}

// ForComponent builds the runner for a component from its free-form
// config parameters.
func ForComponent(systemID string, component models.Component, params map[string]any) (Runner, error) {
	switch component {
	case models.ComponentCPU:
		return newCPURunner(systemID, params)
	case models.ComponentMemory:
		return newMemoryRunner(systemID, params)
	case models.ComponentDisk:
		return newDiskRunner(systemID, params)
	case models.ComponentNetwork:
		return newNetworkRunner(systemID, params)
	default:
		return nil, fmt.Errorf("no runner for component %q", component)
	}
}

// decodeParams decodes a free-form YAML parameter map onto an options
// struct, leaving fields the map does not mention untouched.
func decodeParams(params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("decoding benchmark params: %w", err)
	}
	return nil
}

// requireTool resolves a benchmark binary on PATH, turning the lookup
// failure into an actionable message.
func requireTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH; install it to benchmark this component: %w", name, err)
	}
	return path, nil
}
