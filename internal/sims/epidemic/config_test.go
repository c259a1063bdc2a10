package epidemic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesReferenceRates(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100, cfg.Size)
	assert.InDelta(t, 0.20, cfg.Params.InfectionRate, 1e-12)
	assert.InDelta(t, 0.05, cfg.Params.RecoveryRate, 1e-12)
	assert.InDelta(t, 0.005, cfg.Params.RelapseRate, 1e-12)
	assert.InDelta(t, 0.001, cfg.Params.VaccinationRate, 1e-12)
	assert.InDelta(t, 0.2, cfg.Params.VaccineHesitancy, 1e-12)
	assert.Equal(t, 200, cfg.Params.VaccineDay)
	assert.Equal(t, Outbreak{Start: 25, End: 75, Chance: 0.75}, cfg.Outbreak)
}

func TestFromMap(t *testing.T) {
	cases := []struct {
		name  string
		in    map[string]string
		check func(t *testing.T, c Config)
	}{
		{
			name: "NilKeepsDefaults",
			in:   nil,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DefaultConfig(), c)
			},
		},
		{
			name: "ParsesRatesAndSize",
			in: map[string]string{
				"n":                "64",
				"seed":             "-5",
				"infection_rate":   "0.4",
				"vaccination_rate": "0.01",
				"vaccine_day":      "30",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 64, c.Size)
				assert.Equal(t, int64(-5), c.Seed)
				assert.InDelta(t, 0.4, c.Params.InfectionRate, 1e-12)
				assert.InDelta(t, 0.01, c.Params.VaccinationRate, 1e-12)
				assert.Equal(t, 30, c.Params.VaccineDay)
			},
		},
		{
			name: "IgnoresInvalidValues",
			in: map[string]string{
				"n":                 "zero",
				"infection_rate":    "-1",
				"vaccine_hesitancy": "1.5",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DefaultConfig(), c)
			},
		},
		{
			name: "ClampsOutbreakEndToStart",
			in: map[string]string{
				"outbreak_start": "50",
				"outbreak_end":   "10",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 50, c.Outbreak.Start)
				assert.Equal(t, 50, c.Outbreak.End)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, FromMap(tc.in))
		})
	}
}

func TestNewWithConfigSizeValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = -2
	_, err := NewWithConfig(cfg)
	require.ErrorIs(t, err, ErrGridSize)

	cfg.Size = 1
	p, err := NewWithConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Size().W)
}

func TestParameterSnapshotListsAllTunables(t *testing.T) {
	p, err := NewWithConfig(DefaultConfig())
	require.NoError(t, err)

	snap := p.ParameterSnapshot()
	keys := map[string]bool{}
	for _, g := range snap.Groups {
		for _, param := range g.Params {
			keys[param.Key] = true
		}
	}
	for _, want := range []string{
		"n", "seed",
		"infection_rate", "recovery_rate", "relapse_rate",
		"vaccination_rate", "vaccine_hesitancy", "vaccine_day",
		"outbreak_start", "outbreak_end", "outbreak_chance",
	} {
		assert.True(t, keys[want], "missing parameter %q", want)
	}
}
