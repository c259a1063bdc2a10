// Package simlog records per-day epidemic tallies: CSV rows for analysis,
// an in-memory series for charting, and an MJPEG movie assembled from
// rendered frames. Failures here never feed back into the simulation.
package simlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"epigrid/internal/sims/epidemic"
)

// Header is the column layout of the counts CSV.
var Header = []string{"day", "susceptible", "infected", "recovered", "vaccinated"}

// CountsLogger appends one row of state tallies per simulation day.
// Callers record day 0 before the first advance.
type CountsLogger struct {
	w *csv.Writer
}

// NewCountsLogger wraps w and writes the header row.
func NewCountsLogger(w io.Writer) (*CountsLogger, error) {
	l := &CountsLogger{w: csv.NewWriter(w)}
	if err := l.w.Write(Header); err != nil {
		return nil, fmt.Errorf("simlog: write header: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return nil, fmt.Errorf("simlog: write header: %w", err)
	}
	return l, nil
}

// Record writes the tallies for one day and flushes so partial runs still
// leave a usable log.
func (l *CountsLogger) Record(day int, c epidemic.Counts) error {
	row := []string{
		strconv.Itoa(day),
		strconv.Itoa(c.Susceptible),
		strconv.Itoa(c.Infected),
		strconv.Itoa(c.Recovered),
		strconv.Itoa(c.Vaccinated),
	}
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("simlog: write day %d: %w", day, err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("simlog: write day %d: %w", day, err)
	}
	return nil
}

// Series accumulates per-day tallies for chart rendering.
type Series struct {
	Days        []float64
	Susceptible []float64
	Infected    []float64
	Recovered   []float64
	Vaccinated  []float64
}

// Append adds one day of tallies to the series.
func (s *Series) Append(day int, c epidemic.Counts) {
	s.Days = append(s.Days, float64(day))
	s.Susceptible = append(s.Susceptible, float64(c.Susceptible))
	s.Infected = append(s.Infected, float64(c.Infected))
	s.Recovered = append(s.Recovered, float64(c.Recovered))
	s.Vaccinated = append(s.Vaccinated, float64(c.Vaccinated))
}

// Len returns the number of recorded days.
func (s *Series) Len() int { return len(s.Days) }
