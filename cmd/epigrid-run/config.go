package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"epigrid/internal/sims/epidemic"
)

// outputConfig names the artifacts a run produces. Empty paths disable the
// corresponding output.
type outputConfig struct {
	CSV       string `yaml:"csv"`
	Chart     string `yaml:"chart"`
	FramesDir string `yaml:"frames_dir"`
	Movie     string `yaml:"movie"`
	Scale     int    `yaml:"scale"`
	FPS       int    `yaml:"fps"`
}

// runConfig is the YAML document accepted by `epigrid-run run --config`.
type runConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
	Days int   `yaml:"days"`

	InfectionRate    float64 `yaml:"infection_rate"`
	RecoveryRate     float64 `yaml:"recovery_rate"`
	RelapseRate      float64 `yaml:"relapse_rate"`
	VaccinationRate  float64 `yaml:"vaccination_rate"`
	VaccineHesitancy float64 `yaml:"vaccine_hesitancy"`
	VaccineDay       int     `yaml:"vaccine_day"`

	Outbreak struct {
		Start  int     `yaml:"start"`
		End    int     `yaml:"end"`
		Chance float64 `yaml:"chance"`
	} `yaml:"outbreak"`

	Output outputConfig `yaml:"output"`
}

func defaultRunConfig() runConfig {
	base := epidemic.DefaultConfig()
	var c runConfig
	c.Size = base.Size
	c.Seed = base.Seed
	c.Days = 1000
	c.InfectionRate = base.Params.InfectionRate
	c.RecoveryRate = base.Params.RecoveryRate
	c.RelapseRate = base.Params.RelapseRate
	c.VaccinationRate = base.Params.VaccinationRate
	c.VaccineHesitancy = base.Params.VaccineHesitancy
	c.VaccineDay = base.Params.VaccineDay
	c.Outbreak.Start = base.Outbreak.Start
	c.Outbreak.End = base.Outbreak.End
	c.Outbreak.Chance = base.Outbreak.Chance
	c.Output = outputConfig{
		CSV:   "state_counts.csv",
		Scale: 4,
		FPS:   4,
	}
	return c
}

// loadRunConfig reads a YAML file over the defaults, so partial documents
// only override what they mention.
func loadRunConfig(path string) (runConfig, error) {
	c := defaultRunConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c runConfig) simConfig() epidemic.Config {
	return epidemic.Config{
		Size: c.Size,
		Seed: c.Seed,
		Params: epidemic.Params{
			InfectionRate:    c.InfectionRate,
			RecoveryRate:     c.RecoveryRate,
			RelapseRate:      c.RelapseRate,
			VaccinationRate:  c.VaccinationRate,
			VaccineHesitancy: c.VaccineHesitancy,
			VaccineDay:       c.VaccineDay,
		},
		Outbreak: epidemic.Outbreak{
			Start:  c.Outbreak.Start,
			End:    c.Outbreak.End,
			Chance: c.Outbreak.Chance,
		},
	}
}
