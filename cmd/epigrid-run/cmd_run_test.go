package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epigrid/internal/render"
)

func TestRunSimulationWritesArtifacts(t *testing.T) {
	dir := t.TempDir()

	cfg := defaultRunConfig()
	cfg.Size = 12
	cfg.Days = 6
	cfg.Seed = 5
	cfg.VaccineDay = 2
	cfg.Outbreak.Start = 3
	cfg.Outbreak.End = 9
	cfg.Outbreak.Chance = 0.8
	cfg.Output = outputConfig{
		CSV:       filepath.Join(dir, "counts.csv"),
		Chart:     filepath.Join(dir, "counts.png"),
		FramesDir: filepath.Join(dir, "frames"),
		Movie:     filepath.Join(dir, "run.avi"),
		Scale:     2,
		FPS:       4,
	}

	require.NoError(t, runSimulation(cfg))

	data, err := os.ReadFile(cfg.Output.CSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header, day-0 row, then one row per simulated day.
	require.Len(t, lines, 2+cfg.Days)
	assert.Equal(t, "day,susceptible,infected,recovered,vaccinated", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,"), "first data row must be day 0")

	chart, err := os.ReadFile(cfg.Output.Chart)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, chart[:4])

	for day := 0; day <= cfg.Days; day++ {
		_, err := os.Stat(render.FramePath(cfg.Output.FramesDir, day))
		assert.NoError(t, err, "missing frame for day %d", day)
	}

	movie, err := os.Stat(cfg.Output.Movie)
	require.NoError(t, err)
	assert.Greater(t, movie.Size(), int64(0))
}

func TestRunSimulationRejectsBadSize(t *testing.T) {
	cfg := defaultRunConfig()
	cfg.Size = 0
	cfg.Output = outputConfig{}
	require.Error(t, runSimulation(cfg))
}

func TestParamsCommandListsTunables(t *testing.T) {
	cmd := newParamsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	for _, key := range []string{"infection_rate", "vaccine_day", "outbreak_chance"} {
		assert.Contains(t, out.String(), key)
	}
}

func TestRunScenarioTracksPeak(t *testing.T) {
	res := runScenario(sweepParams{
		infectionRate:   0.3,
		vaccinationRate: 0.001,
		hesitancy:       0.2,
	}, 20, 16, 7)

	assert.Greater(t, res.peakInfected, 0)
	assert.GreaterOrEqual(t, res.peakDay, 1)
	assert.GreaterOrEqual(t, res.attackRate, 0.0)
	assert.LessOrEqual(t, res.attackRate, 1.0)
}
