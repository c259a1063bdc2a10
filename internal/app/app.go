//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"epigrid/internal/core"
	"epigrid/internal/render"
	"epigrid/internal/sims/epidemic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LegendWidth is the pixel width of the side panel next to the grid.
const LegendWidth = 150

type paletteProvider interface {
	Palette() []color.RGBA
}

type statsProvider interface {
	Counts() epidemic.Counts
	Day() int
}

// Game adapts a core simulation to the ebiten.Game interface, pacing day
// advances with a DayClock so rendering stays at full frame rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	clock   *core.DayClock
	rate    float64

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	// AfterStep, when set, runs after every simulated day. The GUI driver
	// hangs CSV logging off it.
	AfterStep func()
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, daysPerSecond float64, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	var palette []color.RGBA
	if pp, ok := sim.(paletteProvider); ok {
		palette = pp.Palette()
	}
	return &Game{
		sim:     sim,
		painter: gp,
		palette: palette,
		clock:   core.NewDayClock(daysPerSecond),
		rate:    daysPerSecond,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.rate > 1 {
		g.rate /= 2
		g.clock.SetRate(g.rate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.rate *= 2
		g.clock.SetRate(g.rate)
	}

	due := g.clock.Tick()
	if (due && !g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		if g.AfterStep != nil {
			g.AfterStep()
		}
	}
	return nil
}

// Draw renders the grid and the side legend.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.drawLegend(screen)
}

func (g *Game) drawLegend(screen *ebiten.Image) {
	sp, ok := g.sim.(statsProvider)
	if !ok {
		return
	}
	c := sp.Counts()
	panelX := float64(g.sim.Size().W * g.scale)

	entries := []struct {
		state epidemic.State
		count int
	}{
		{epidemic.StateSusceptible, c.Susceptible},
		{epidemic.StateInfected, c.Infected},
		{epidemic.StateRecovered, c.Recovered},
		{epidemic.StateVaccinated, c.Vaccinated},
	}

	y := 20.0
	for _, e := range entries {
		ebitenutil.DrawRect(screen, panelX+10, y, 12, 12, e.state.Color())
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s %d", e.state, e.count),
			int(panelX)+28, int(y)-2)
		y += 22
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("day %d", sp.Day()), int(panelX)+10, int(y)+8)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", int(panelX)+10, int(y)+26)
	}
}

// Layout returns the logical screen size: grid plus legend panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + LegendWidth, s.H * g.scale
}
