package simlog

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epigrid/internal/sims/epidemic"
)

func TestCountsLoggerWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewCountsLogger(&buf)
	require.NoError(t, err)

	require.NoError(t, l.Record(0, epidemic.Counts{Susceptible: 100}))
	require.NoError(t, l.Record(1, epidemic.Counts{Susceptible: 90, Infected: 8, Recovered: 1, Vaccinated: 1}))

	want := "day,susceptible,infected,recovered,vaccinated\n" +
		"0,100,0,0,0\n" +
		"1,90,8,1,1\n"
	assert.Equal(t, want, buf.String())
}

func TestSeriesAppend(t *testing.T) {
	var s Series
	s.Append(0, epidemic.Counts{Susceptible: 4})
	s.Append(1, epidemic.Counts{Susceptible: 3, Infected: 1})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{0, 1}, s.Days)
	assert.Equal(t, []float64{4, 3}, s.Susceptible)
	assert.Equal(t, []float64{0, 1}, s.Infected)
}

func TestRenderChartProducesPNG(t *testing.T) {
	var s Series
	for day := 0; day <= 10; day++ {
		s.Append(day, epidemic.Counts{
			Susceptible: 100 - day*5,
			Infected:    day * 4,
			Recovered:   day,
			Vaccinated:  0,
		})
	}

	var buf bytes.Buffer
	require.NoError(t, RenderChart(&s, &buf))
	require.GreaterOrEqual(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderChartRejectsEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderChart(&Series{}, &buf), ErrEmptySeries)
	assert.ErrorIs(t, RenderChart(nil, &buf), ErrEmptySeries)
}

func TestMovieWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	mw, err := NewMovieWriter(path, 32, 32, 4)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	require.NoError(t, mw.AddFrame(img))
	require.NoError(t, mw.AddFrame(img))
	require.NoError(t, mw.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
