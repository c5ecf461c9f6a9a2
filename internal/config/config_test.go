package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/hwbench/internal/models"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultRuns, cfg.Runs)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultRunTimeout, cfg.RunTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
runs: 5
output_dir: bench-out/
run_timeout: 300
components:
  network:
    enabled: false
  cpu:
    params:
      threads: 8
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, "bench-out/", cfg.OutputDir)
	assert.Equal(t, 300, cfg.RunTimeout)
	assert.False(t, cfg.ComponentEnabled(models.ComponentNetwork))
	assert.True(t, cfg.ComponentEnabled(models.ComponentCPU))
	assert.True(t, cfg.ComponentEnabled(models.ComponentDisk))
	assert.Equal(t, 8, cfg.ComponentParams(models.ComponentCPU)["threads"])
	assert.Nil(t, cfg.ComponentParams(models.ComponentDisk))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "runs: 10\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Runs)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultRunTimeout, cfg.RunTimeout)
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "runs: 7\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Runs)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "runs: [not a number\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestBaselineTable_Defaults(t *testing.T) {
	tbl, err := New().BaselineTable()
	require.NoError(t, err)

	b, ok := tbl.Lookup("events_per_second")
	require.True(t, ok)
	assert.Equal(t, 100.0, b.MinRef)
	assert.Equal(t, 10000.0, b.MaxRef)
	assert.Equal(t, models.HigherBetter, b.Direction)

	lat, ok := tbl.Lookup("latency_avg_ms")
	require.True(t, ok)
	assert.Equal(t, models.LowerBetter, lat.Direction)

	assert.Len(t, tbl.Metrics(), 9)
}

func TestBaselineTable_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
baselines:
  - metric: events_per_second
    min: 500
    max: 50000
  - metric: power_draw_watts
    min: 50
    max: 800
    direction: lower_better
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	tbl, err := cfg.BaselineTable()
	require.NoError(t, err)

	// override replaces the default range
	b, ok := tbl.Lookup("events_per_second")
	require.True(t, ok)
	assert.Equal(t, 500.0, b.MinRef)
	assert.Equal(t, 50000.0, b.MaxRef)

	// a brand-new metric is simply added
	pw, ok := tbl.Lookup("power_draw_watts")
	require.True(t, ok)
	assert.Equal(t, models.LowerBetter, pw.Direction)
}

func TestBaselineTable_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
baselines:
  - metric: events_per_second
    min: 100
    max: 100
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	_, err = cfg.BaselineTable()
	require.Error(t, err)
}

func TestWorkloadProfiles_BuiltinsOnly(t *testing.T) {
	profiles, err := New().WorkloadProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 5)
}

func TestWorkloadProfiles_CustomAndReplacement(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
profiles:
  - name: ml_training
    weights:
      cpu: 0.5
      mem: 0.4
      disk: 0.1
  - name: web_server
    weights:
      cpu: 0.9
      net: 0.1
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	profiles, err := cfg.WorkloadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 6)

	byName := make(map[string]models.WorkloadProfile)
	for _, p := range profiles {
		byName[p.Name] = p
	}

	custom, ok := byName["ml_training"]
	require.True(t, ok)
	assert.InDelta(t, 0.4, custom.Weights[models.ComponentMemory], 1e-9)

	// the custom web_server replaces the builtin
	web := byName["web_server"]
	assert.InDelta(t, 0.9, web.Weights[models.ComponentCPU], 1e-9)
	assert.NotContains(t, web.Weights, models.ComponentDisk)
}

func TestWorkloadProfiles_BadComponent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
profiles:
  - name: broken
    weights:
      gpu: 1.0
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	_, err = cfg.WorkloadProfiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
