package epidemic

import "image/color"

// Pastel palette matching the classic SIRV presentation: yellow
// susceptible, pink infected, blue recovered, green vaccinated.
var statePalette = buildStatePalette()

// Palette exposes the color palette used for rendering the population.
// Index the result with the values from Cells().
func (p *Population) Palette() []color.RGBA {
	return statePalette
}

// Color returns the display color for a state.
func (s State) Color() color.RGBA {
	if int(s) < len(statePalette) {
		return statePalette[s]
	}
	return color.RGBA{R: 240, G: 240, B: 240, A: 255}
}

func buildStatePalette() []color.RGBA {
	palette := make([]color.RGBA, stateCount)
	palette[StateSusceptible] = color.RGBA{R: 255, G: 239, B: 186, A: 255}
	palette[StateInfected] = color.RGBA{R: 255, G: 182, B: 193, A: 255}
	palette[StateRecovered] = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	palette[StateVaccinated] = color.RGBA{R: 152, G: 251, B: 152, A: 255}
	return palette
}
