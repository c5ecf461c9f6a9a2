// Package orchestration drives the full benchmark pipeline for one
// system: run each enabled component's benchmark N times, aggregate the
// samples, normalize against the baseline table, score categories, and
// compose per-workload composites.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/perfkit/hwbench/internal/bench"
	"github.com/perfkit/hwbench/internal/config"
	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/scoring"
	"github.com/perfkit/hwbench/internal/stats"
	"github.com/perfkit/hwbench/internal/workload"
)

// Runner executes benchmarks for one system and scores the results.
type Runner struct {
	SystemID  string
	Config    *config.Config
	Baselines *scoring.BaselineTable
	Profiles  []models.WorkloadProfile

	// Parallel runs components concurrently. Concurrent benchmarks
	// contend for the hardware under test and can skew each other's
	// numbers; the default is sequential.
	Parallel bool

	// BootstrapSeed seeds the per-metric bootstrap confidence
	// interval. Negative means non-deterministic.
	BootstrapSeed int64

	// Progress, when set, receives short status messages as the run
	// advances. Called from multiple goroutines when Parallel is set.
	Progress func(msg string)

	// newRunner is swapped out in tests.
	newRunner func(systemID string, c models.Component, params map[string]any) (bench.Runner, error)
}

// componentRun is the raw output of one component's benchmark passes.
type componentRun struct {
	component models.Component
	samples   []models.RawSample
}

// Execute runs the full pipeline and returns the scored result.
// Components that fail to run are logged and skipped; they show up as
// "not benchmarked", never as score 0. Execute fails only when no
// component produced samples at all.
func (r *Runner) Execute(ctx context.Context) (*models.SystemResult, error) {
	newRunner := r.newRunner
	if newRunner == nil {
		newRunner = bench.ForComponent
	}

	var (
		enabled []bench.Runner
		skipped []models.Component
	)
	for _, component := range models.Components() {
		if !r.Config.ComponentEnabled(component) {
			slog.Debug("component disabled", "component", component)
			continue
		}
		runner, err := newRunner(r.SystemID, component, r.Config.ComponentParams(component))
		if err != nil {
			slog.Warn("skipping component", "component", component, "err", err)
			skipped = append(skipped, component)
			continue
		}
		enabled = append(enabled, runner)
	}
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no components enabled for %s", r.SystemID)
	}

	runs, failed, err := r.runComponents(ctx, enabled)
	if err != nil {
		return nil, err
	}
	skipped = append(skipped, failed...)
	if len(runs) == 0 {
		return nil, fmt.Errorf("all component benchmarks failed for %s", r.SystemID)
	}

	return r.score(runs, skipped)
}

// runComponents executes every runner Config.Runs times, sequentially
// or concurrently.
func (r *Runner) runComponents(ctx context.Context, runners []bench.Runner) ([]componentRun, []models.Component, error) {
	var (
		mu     sync.Mutex
		runs   []componentRun
		failed []models.Component
	)

	collect := func(ctx context.Context, runner bench.Runner) error {
		samples, err := r.runOne(ctx, runner)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			// Skip the component, don't abort the others.
			slog.Error("component benchmark failed", "component", runner.Component(), "err", err)
			failed = append(failed, runner.Component())
			return nil
		}
		runs = append(runs, componentRun{component: runner.Component(), samples: samples})
		return nil
	}

	if r.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, runner := range runners {
			g.Go(func() error { return collect(gctx, runner) })
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for _, runner := range runners {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			if err := collect(ctx, runner); err != nil {
				return nil, nil, err
			}
		}
	}

	// Preserve canonical component order regardless of completion order.
	ordered := make([]componentRun, 0, len(runs))
	for _, component := range models.Components() {
		for _, run := range runs {
			if run.component == component {
				ordered = append(ordered, run)
			}
		}
	}
	return ordered, failed, nil
}

func (r *Runner) runOne(ctx context.Context, runner bench.Runner) ([]models.RawSample, error) {
	var samples []models.RawSample
	for i := 0; i < r.Config.Runs; i++ {
		r.progress(fmt.Sprintf("%s: run %d/%d", runner.Component(), i+1, r.Config.Runs))

		runCtx, cancel := context.WithTimeout(ctx, time.Duration(r.Config.RunTimeout)*time.Second)
		got, err := runner.Run(runCtx, i)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		samples = append(samples, got...)
	}
	return samples, nil
}

// score turns raw component samples into the final scored result.
func (r *Runner) score(runs []componentRun, skipped []models.Component) (*models.SystemResult, error) {
	result := &models.SystemResult{
		SystemID:  r.SystemID,
		Timestamp: time.Now().UTC(),
		Runs:      r.Config.Runs,
		Skipped:   skipped,
	}

	for _, run := range runs {
		result.Samples = append(result.Samples, run.samples...)

		cr, err := r.scoreComponent(run)
		if err != nil {
			if errors.Is(err, scoring.ErrEmptyCategory) {
				slog.Warn("component produced no scorable metrics", "component", run.component)
				result.Skipped = append(result.Skipped, run.component)
				continue
			}
			return nil, err
		}
		result.Components = append(result.Components, cr)
	}
	if len(result.Components) == 0 {
		return nil, fmt.Errorf("no scorable metrics for %s", r.SystemID)
	}

	categories := result.CategoryMap()
	for _, profile := range r.Profiles {
		composite := workload.Compose(categories, profile)
		composite.SystemID = r.SystemID
		result.Composites = append(result.Composites, composite)
		if profile.Name == workload.GeneralPurpose {
			result.OverallScore = composite.Score
		}
	}

	return result, nil
}

func (r *Runner) scoreComponent(run componentRun) (models.ComponentResult, error) {
	// Group sample values per metric, keeping run order.
	valuesByMetric := make(map[string][]float64)
	var metricOrder []string
	for _, s := range run.samples {
		if _, seen := valuesByMetric[s.Metric]; !seen {
			metricOrder = append(metricOrder, s.Metric)
		}
		valuesByMetric[s.Metric] = append(valuesByMetric[s.Metric], s.Value)
	}

	cr := models.ComponentResult{Component: run.component}
	var normalized []models.NormalizedScore
	for _, metric := range metricOrder {
		ms, err := stats.AggregateWithCI(metric, valuesByMetric[metric], r.BootstrapSeed)
		if err != nil {
			return models.ComponentResult{}, fmt.Errorf("%s: %w", run.component, err)
		}
		cr.Stats = append(cr.Stats, ms)

		score, err := r.Baselines.NormalizeStats(ms)
		if err != nil {
			if errors.Is(err, scoring.ErrUnknownMetric) {
				slog.Debug("metric has no baseline, not scored", "metric", metric)
				continue
			}
			return models.ComponentResult{}, err
		}
		normalized = append(normalized, score)
	}

	category, err := scoring.ScoreCategory(r.SystemID, run.component, normalized)
	if err != nil {
		return models.ComponentResult{}, err
	}
	cr.Category = category
	return cr, nil
}

func (r *Runner) progress(msg string) {
	if r.Progress != nil {
		r.Progress(msg)
	}
}
