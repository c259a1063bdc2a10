package simlog

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"epigrid/internal/sims/epidemic"
)

// ErrEmptySeries indicates RenderChart was called before any day was recorded.
var ErrEmptySeries = errors.New("simlog: series has no data points")

// RenderChart renders the four state tallies over time as a PNG line chart.
// Stroke colors follow the grid palette so chart and frames read together.
func RenderChart(s *Series, w io.Writer) error {
	if s == nil || s.Len() < 2 {
		return ErrEmptySeries
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "Day",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "Cells",
		},
		Series: []chart.Series{
			countsSeries("Susceptible", s.Days, s.Susceptible, epidemic.StateSusceptible),
			countsSeries("Infected", s.Days, s.Infected, epidemic.StateInfected),
			countsSeries("Recovered", s.Days, s.Recovered, epidemic.StateRecovered),
			countsSeries("Vaccinated", s.Days, s.Vaccinated, epidemic.StateVaccinated),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("simlog: render chart: %w", err)
	}
	return nil
}

func countsSeries(name string, xs, ys []float64, state epidemic.State) chart.Series {
	c := state.Color()
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: drawing.Color{R: c.R, G: c.G, B: c.B, A: 255},
			StrokeWidth: 2.5,
		},
	}
}
