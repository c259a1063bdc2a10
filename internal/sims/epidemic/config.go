package epidemic

import "strconv"

// Params holds the per-day transition probabilities of the contagion model.
type Params struct {
	// InfectionRate is the infection probability contributed by each
	// infected orthogonal neighbor.
	InfectionRate float64
	// RecoveryRate is the probability an infected cell recovers.
	RecoveryRate float64
	// RelapseRate is the probability a recovered cell loses immunity and
	// becomes susceptible again.
	RelapseRate float64
	// VaccinationRate is the probability an eligible susceptible or
	// recovered cell is vaccinated.
	VaccinationRate float64
	// VaccineHesitancy caps the population fraction that will ever accept
	// vaccination: offers stop once vaccinated/total >= 1-VaccineHesitancy.
	VaccineHesitancy float64
	// VaccineDay is the first day the vaccine is available.
	VaccineDay int
}

// Outbreak describes the randomized initial infection block applied by
// Reset: every cell of [Start,End)x[Start,End) is infected with the given
// chance.
type Outbreak struct {
	Start  int
	End    int
	Chance float64
}

// Config controls the population dimensions and model parameters.
type Config struct {
	Size int

	Seed int64

	Params   Params
	Outbreak Outbreak
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 100,
		Seed: 1337,
		Params: Params{
			InfectionRate:    0.20,
			RecoveryRate:     1.0 / 20.0,
			RelapseRate:      1.0 / 200.0,
			VaccinationRate:  1.0 / 1000.0,
			VaccineHesitancy: 0.2,
			VaccineDay:       200,
		},
		Outbreak: Outbreak{
			Start:  25,
			End:    75,
			Chance: 0.75,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["infection_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.InfectionRate = parsed
		}
	}
	if v, ok := cfg["recovery_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RecoveryRate = parsed
		}
	}
	if v, ok := cfg["relapse_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RelapseRate = parsed
		}
	}
	if v, ok := cfg["vaccination_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.VaccinationRate = parsed
		}
	}
	if v, ok := cfg["vaccine_hesitancy"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.VaccineHesitancy = parsed
		}
	}
	if v, ok := cfg["vaccine_day"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.VaccineDay = parsed
		}
	}
	if v, ok := cfg["outbreak_start"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Outbreak.Start = parsed
		}
	}
	if v, ok := cfg["outbreak_end"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Outbreak.End = parsed
		}
	}
	if c.Outbreak.End < c.Outbreak.Start {
		c.Outbreak.End = c.Outbreak.Start
	}
	if v, ok := cfg["outbreak_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Outbreak.Chance = parsed
		}
	}
	return c
}
