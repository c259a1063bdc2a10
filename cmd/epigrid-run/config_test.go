package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := loadRunConfig("")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Size)
	assert.Equal(t, 1000, cfg.Days)
	assert.InDelta(t, 0.20, cfg.InfectionRate, 1e-12)
	assert.Equal(t, "state_counts.csv", cfg.Output.CSV)
	assert.Equal(t, 4, cfg.Output.Scale)
}

func TestLoadRunConfigPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `
size: 40
days: 120
vaccine_day: 30
outbreak:
  start: 10
  end: 30
  chance: 0.5
output:
  csv: out.csv
  chart: out.png
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Size)
	assert.Equal(t, 120, cfg.Days)
	assert.Equal(t, 30, cfg.VaccineDay)
	assert.Equal(t, 10, cfg.Outbreak.Start)
	assert.Equal(t, "out.csv", cfg.Output.CSV)
	assert.Equal(t, "out.png", cfg.Output.Chart)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 0.05, cfg.RecoveryRate, 1e-12)
	assert.Equal(t, 4, cfg.Output.FPS)
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	_, err := loadRunConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSimConfigMapping(t *testing.T) {
	cfg := defaultRunConfig()
	cfg.Size = 33
	cfg.InfectionRate = 0.42
	cfg.Outbreak.Chance = 0.9

	sim := cfg.simConfig()
	assert.Equal(t, 33, sim.Size)
	assert.InDelta(t, 0.42, sim.Params.InfectionRate, 1e-12)
	assert.InDelta(t, 0.9, sim.Outbreak.Chance, 1e-12)
}
