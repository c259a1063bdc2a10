// Package epidemic implements a stochastic SIRV contagion model on a
// fixed square grid. Each day every cell draws one uniform value and
// transitions based on its own state and the number of infected
// orthogonal neighbors in the previous day's snapshot.
package epidemic

import (
	"fmt"
	"strconv"

	"epigrid/internal/core"
)

// State enumerates the epidemiological states of a cell.
type State uint8

const (
	StateSusceptible State = iota
	StateInfected
	StateRecovered
	StateVaccinated

	stateCount = 4
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateSusceptible:
		return "susceptible"
	case StateInfected:
		return "infected"
	case StateRecovered:
		return "recovered"
	case StateVaccinated:
		return "vaccinated"
	default:
		return "unknown"
	}
}

// Counts aggregates the number of cells in each state.
type Counts struct {
	Susceptible int
	Infected    int
	Recovered   int
	Vaccinated  int
}

// Total returns the number of counted cells.
func (c Counts) Total() int {
	return c.Susceptible + c.Infected + c.Recovered + c.Vaccinated
}

// Source supplies uniform draws in [0, 1). The engine consumes exactly one
// draw per cell per day, in row-major order, so a seeded source replays
// identical runs.
type Source interface {
	Float64() float64
}

var (
	_ core.Sim                       = (*Population)(nil)
	_ core.ParameterSnapshotProvider = (*Population)(nil)
	_ core.FloatParameterSetter      = (*Population)(nil)
)

// Population owns an n-by-n grid of cells and advances it one synchronous
// day at a time. It is not safe for concurrent use.
type Population struct {
	cfg Config

	n   int
	day int

	cur     []State
	nxt     []State
	display []uint8

	src Source
}

// New returns a population of size n using default parameters.
func New(n int) (*Population, error) {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a population configured from the provided options.
// All cells start susceptible and the day counter starts at zero; callers
// seed outbreaks through ForceState or Reset.
func NewWithConfig(cfg Config) (*Population, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, cfg.Size)
	}
	total := cfg.Size * cfg.Size
	p := &Population{
		cfg:     cfg,
		n:       cfg.Size,
		cur:     make([]State, total),
		nxt:     make([]State, total),
		display: make([]uint8, total),
		src:     core.NewRNG(cfg.Seed),
	}
	return p, nil
}

// Name returns the simulation identifier.
func (p *Population) Name() string { return "epidemic" }

// Size reports the grid dimensions.
func (p *Population) Size() core.Size { return core.Size{W: p.n, H: p.n} }

// Day reports the number of elapsed simulation days.
func (p *Population) Day() int { return p.day }

// Cells exposes the current display buffer, one palette index per cell in
// row-major order.
func (p *Population) Cells() []uint8 { return p.display }

// SetSource replaces the draw source. Intended for drivers that need full
// control over randomness; Reset installs a fresh seeded source.
func (p *Population) SetSource(src Source) {
	if src != nil {
		p.src = src
	}
}

// StateAt returns the state of cell (i, j).
func (p *Population) StateAt(i, j int) (State, error) {
	if !p.inBounds(i, j) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, i, j, p.n, p.n)
	}
	return p.cur[i*p.n+j], nil
}

// ForceState overrides the state of cell (i, j) directly. It consumes no
// random draw and leaves the day counter untouched; drivers use it to
// script outbreaks before the first advance.
func (p *Population) ForceState(i, j int, s State) error {
	if !p.inBounds(i, j) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, i, j, p.n, p.n)
	}
	idx := i*p.n + j
	p.cur[idx] = s
	p.display[idx] = uint8(s)
	return nil
}

// Counts tallies the current grid. The four fields always sum to n*n.
func (p *Population) Counts() Counts {
	var c Counts
	for _, s := range p.cur {
		switch s {
		case StateSusceptible:
			c.Susceptible++
		case StateInfected:
			c.Infected++
		case StateRecovered:
			c.Recovered++
		case StateVaccinated:
			c.Vaccinated++
		}
	}
	return c
}

// Reset returns every cell to susceptible, zeroes the day counter,
// reseeds the draw source, and applies the configured outbreak block.
// A zero seed falls back to the config seed.
func (p *Population) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = p.cfg.Seed
	}
	p.src = core.NewRNG(effective)
	p.day = 0
	for i := range p.cur {
		p.cur[i] = StateSusceptible
		p.nxt[i] = StateSusceptible
	}
	p.seedOutbreak()
	p.rebuildDisplay()
}

// Step advances the simulation by one synchronous day. Every transition
// reads only the previous day's snapshot; new states never influence
// neighbors within the same day.
func (p *Population) Step() {
	p.day++

	snapshot := p.Counts()
	total := p.n * p.n
	fracVaccinated := float64(snapshot.Vaccinated) / float64(total)
	allowVaccination := fracVaccinated < 1-p.cfg.Params.VaccineHesitancy

	pr := p.cfg.Params
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			idx := i*p.n + j
			// One draw per cell per day regardless of state, so runs
			// replay exactly under a fixed source.
			draw := p.src.Float64()

			next := p.cur[idx]
			switch next {
			case StateSusceptible:
				k := p.infectedNeighbors(i, j)
				chance := float64(k) * pr.InfectionRate
				if draw < chance {
					next = StateInfected
				} else if p.day >= pr.VaccineDay && allowVaccination && draw < chance+pr.VaccinationRate {
					next = StateVaccinated
				}
			case StateInfected:
				if draw < pr.RecoveryRate {
					next = StateRecovered
				}
			case StateRecovered:
				if draw < pr.RelapseRate {
					next = StateSusceptible
				} else if p.day > pr.VaccineDay && allowVaccination && draw < pr.RelapseRate+pr.VaccinationRate {
					// The recovered branch opens one day after the
					// susceptible one. The reference model behaves this
					// way; kept as-is pending product clarification.
					next = StateVaccinated
				}
			case StateVaccinated:
				// Absorbing.
			}
			p.nxt[idx] = next
		}
	}

	p.cur, p.nxt = p.nxt, p.cur
	p.rebuildDisplay()
}

// infectedNeighbors counts infected cells among the up/down/left/right
// neighbors of (i, j) in the snapshot. Edge cells simply have fewer
// neighbors; there is no wraparound.
func (p *Population) infectedNeighbors(i, j int) int {
	n := p.n
	sum := 0
	if i-1 >= 0 && p.cur[(i-1)*n+j] == StateInfected {
		sum++
	}
	if j-1 >= 0 && p.cur[i*n+j-1] == StateInfected {
		sum++
	}
	if i+1 < n && p.cur[(i+1)*n+j] == StateInfected {
		sum++
	}
	if j+1 < n && p.cur[i*n+j+1] == StateInfected {
		sum++
	}
	return sum
}

func (p *Population) seedOutbreak() {
	o := p.cfg.Outbreak
	if o.Chance <= 0 {
		return
	}
	start := o.Start
	if start < 0 {
		start = 0
	}
	end := o.End
	if end > p.n {
		end = p.n
	}
	for i := start; i < end; i++ {
		for j := start; j < end; j++ {
			if p.src.Float64() < o.Chance {
				p.cur[i*p.n+j] = StateInfected
			}
		}
	}
}

func (p *Population) rebuildDisplay() {
	for i, s := range p.cur {
		p.display[i] = uint8(s)
	}
}

func (p *Population) inBounds(i, j int) bool {
	return i >= 0 && i < p.n && j >= 0 && j < p.n
}

// ParameterSnapshot exposes the model tunables for display.
func (p *Population) ParameterSnapshot() core.ParameterSnapshot {
	params := p.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("n", "Size", p.cfg.Size),
				int64Param("seed", "Seed", p.cfg.Seed),
			},
		},
		{
			Name: "Disease",
			Params: []core.Parameter{
				floatParam("infection_rate", "Infection rate per infected neighbor", params.InfectionRate),
				floatParam("recovery_rate", "Recovery rate", params.RecoveryRate),
				floatParam("relapse_rate", "Relapse rate", params.RelapseRate),
			},
		},
		{
			Name: "Vaccination",
			Params: []core.Parameter{
				floatParam("vaccination_rate", "Vaccination rate", params.VaccinationRate),
				floatParam("vaccine_hesitancy", "Vaccine hesitancy", params.VaccineHesitancy),
				intParam("vaccine_day", "Vaccine availability day", params.VaccineDay),
			},
		},
		{
			Name: "Outbreak",
			Params: []core.Parameter{
				intParam("outbreak_start", "Outbreak block start", p.cfg.Outbreak.Start),
				intParam("outbreak_end", "Outbreak block end", p.cfg.Outbreak.End),
				floatParam("outbreak_chance", "Outbreak infection chance", p.cfg.Outbreak.Chance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a probability parameter at runtime. Values are
// given in percent and clamped to [0, 100]; it reports whether the key was
// recognized.
func (p *Population) SetFloatParameter(key string, value float64) bool {
	frac := value / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	switch key {
	case "infection_rate":
		p.cfg.Params.InfectionRate = frac
	case "recovery_rate":
		p.cfg.Params.RecoveryRate = frac
	case "relapse_rate":
		p.cfg.Params.RelapseRate = frac
	case "vaccination_rate":
		p.cfg.Params.VaccinationRate = frac
	case "vaccine_hesitancy":
		p.cfg.Params.VaccineHesitancy = frac
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func init() {
	core.Register("epidemic", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		// FromMap only accepts positive sizes, so construction cannot fail.
		p, _ := NewWithConfig(c)
		return p
	})
}
