package render

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestFrameScalesCellsToBlocks(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 1, 0}

	img := Frame(cells, 2, 2, palette, 3)
	if got := img.Bounds().Dx(); got != 6 {
		t.Fatalf("frame width = %d, want 6", got)
	}

	// Every pixel of the 3x3 block belonging to cell (1,0) carries the
	// second palette entry.
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if got := img.RGBAAt(3+dx, dy); got != palette[1] {
				t.Fatalf("pixel (%d,%d) = %v, want %v", 3+dx, dy, got, palette[1])
			}
		}
	}
	if got := img.RGBAAt(0, 0); got != palette[0] {
		t.Fatalf("pixel (0,0) = %v, want %v", got, palette[0])
	}
}

func TestFrameClampsOutOfPaletteValues(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	img := Frame([]uint8{7}, 1, 1, palette, 1)
	if got := img.RGBAAt(0, 0); got != palette[1] {
		t.Fatalf("out-of-palette cell = %v, want clamp to last entry %v", got, palette[1])
	}
}

func TestFramePath(t *testing.T) {
	got := FramePath("frames", 12)
	want := filepath.Join("frames", "frame_0012.png")
	if got != want {
		t.Fatalf("FramePath = %q, want %q", got, want)
	}
}
