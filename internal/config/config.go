// Package config provides the Config struct and loader for
// .hwbench.yaml project-level configuration files, plus the immutable
// baseline table and workload profile set built from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/scoring"
	"github.com/perfkit/hwbench/internal/workload"
)

// Default values for benchmark configuration. New() references them;
// no other code should duplicate them.
const (
	ConfigFileName = ".hwbench.yaml"

	DefaultRuns       = 3
	DefaultOutputDir  = "results/"
	DefaultRunTimeout = 120 // seconds, per benchmark invocation
)

// ComponentConfig holds per-component settings. Params is a free-form
// map handed to the matching benchmark runner for decoding.
type ComponentConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Params  map[string]any `yaml:"params,omitempty"`
}

// BaselineConfig is one metric baseline override in YAML form.
type BaselineConfig struct {
	Metric    string  `yaml:"metric"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Direction string  `yaml:"direction,omitempty"` // defaults to higher_better
}

// ProfileConfig is a custom workload profile in YAML form. Weights and
// minimum scores are keyed by component name.
type ProfileConfig struct {
	Name      string             `yaml:"name"`
	Weights   map[string]float64 `yaml:"weights"`
	MinScores map[string]float64 `yaml:"min_scores,omitempty"`
}

// Config is the top-level configuration loaded from .hwbench.yaml.
type Config struct {
	Runs       int                        `yaml:"runs,omitempty"`
	OutputDir  string                     `yaml:"output_dir,omitempty"`
	RunTimeout int                        `yaml:"run_timeout,omitempty"`
	Components map[string]ComponentConfig `yaml:"components,omitempty"`
	Baselines  []BaselineConfig           `yaml:"baselines,omitempty"`
	Profiles   []ProfileConfig            `yaml:"profiles,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Runs:       DefaultRuns,
		OutputDir:  DefaultOutputDir,
		RunTimeout: DefaultRunTimeout,
	}
}

// Load finds .hwbench.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .hwbench.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
// Propagates real I/O errors instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Runs > 0 {
		dst.Runs = src.Runs
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.RunTimeout > 0 {
		dst.RunTimeout = src.RunTimeout
	}
	if src.Components != nil {
		dst.Components = src.Components
	}
	dst.Baselines = src.Baselines
	dst.Profiles = src.Profiles
}

// ComponentEnabled reports whether a component should be benchmarked.
// Components are enabled unless the config disables them explicitly.
func (c *Config) ComponentEnabled(component models.Component) bool {
	cc, ok := c.Components[component.String()]
	if !ok || cc.Enabled == nil {
		return true
	}
	return *cc.Enabled
}

// ComponentParams returns the free-form parameter map for a component,
// or nil when none is configured.
func (c *Config) ComponentParams(component models.Component) map[string]any {
	return c.Components[component.String()].Params
}

// BaselineTable builds the immutable metric baseline table: the
// built-in defaults overlaid with any overrides from the config file.
func (c *Config) BaselineTable() (*scoring.BaselineTable, error) {
	baselines := DefaultBaselines()
	for _, b := range c.Baselines {
		direction := models.Direction(b.Direction)
		if b.Direction == "" {
			direction = models.HigherBetter
		}
		baselines = append(baselines, models.MetricBaseline{
			Metric:    b.Metric,
			MinRef:    b.Min,
			MaxRef:    b.Max,
			Direction: direction,
		})
	}
	return scoring.NewBaselineTable(baselines)
}

// WorkloadProfiles returns the built-in profiles plus any custom
// profiles from the config file, validated. A custom profile with a
// built-in name replaces the built-in.
func (c *Config) WorkloadProfiles() ([]models.WorkloadProfile, error) {
	byName := make(map[string]models.WorkloadProfile)
	var order []string
	for _, p := range workload.BuiltinProfiles() {
		byName[p.Name] = p
		order = append(order, p.Name)
	}

	for _, pc := range c.Profiles {
		p, err := parseProfile(pc)
		if err != nil {
			return nil, err
		}
		if _, exists := byName[p.Name]; !exists {
			order = append(order, p.Name)
		}
		byName[p.Name] = p
	}

	profiles := make([]models.WorkloadProfile, 0, len(order))
	for _, name := range order {
		profiles = append(profiles, byName[name])
	}
	return profiles, nil
}

func parseProfile(pc ProfileConfig) (models.WorkloadProfile, error) {
	p := models.WorkloadProfile{
		Name:    pc.Name,
		Weights: make(map[models.Component]float64, len(pc.Weights)),
	}
	for name, weight := range pc.Weights {
		component, err := models.ParseComponent(name)
		if err != nil {
			return models.WorkloadProfile{}, fmt.Errorf("profile %q: %w", pc.Name, err)
		}
		p.Weights[component] = weight
	}
	if len(pc.MinScores) > 0 {
		p.MinScores = make(map[models.Component]float64, len(pc.MinScores))
		for name, minScore := range pc.MinScores {
			component, err := models.ParseComponent(name)
			if err != nil {
				return models.WorkloadProfile{}, fmt.Errorf("profile %q: %w", pc.Name, err)
			}
			p.MinScores[component] = minScore
		}
	}
	if err := p.Validate(); err != nil {
		return models.WorkloadProfile{}, err
	}
	return p, nil
}
