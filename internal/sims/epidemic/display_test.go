package epidemic

import (
	"image/color"
	"testing"
)

func TestPaletteCoversEveryState(t *testing.T) {
	p := mustNew(t, quietConfig(2))
	palette := p.Palette()
	if len(palette) != stateCount {
		t.Fatalf("palette has %d entries, want %d", len(palette), stateCount)
	}

	want := map[State]color.RGBA{
		StateSusceptible: {R: 255, G: 239, B: 186, A: 255},
		StateInfected:    {R: 255, G: 182, B: 193, A: 255},
		StateRecovered:   {R: 173, G: 216, B: 230, A: 255},
		StateVaccinated:  {R: 152, G: 251, B: 152, A: 255},
	}
	for s, c := range want {
		if palette[s] != c {
			t.Fatalf("palette[%v] = %v, want %v", s, palette[s], c)
		}
		if s.Color() != c {
			t.Fatalf("%v.Color() = %v, want %v", s, s.Color(), c)
		}
	}
}

func TestStateStrings(t *testing.T) {
	for s, want := range map[State]string{
		StateSusceptible: "susceptible",
		StateInfected:    "infected",
		StateRecovered:   "recovered",
		StateVaccinated:  "vaccinated",
		State(9):         "unknown",
	} {
		if s.String() != want {
			t.Fatalf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
