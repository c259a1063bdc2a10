package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Frame rasterizes a cell buffer into an RGBA image, scaling each cell to
// a scale-by-scale pixel block. len(cells) must equal w*h.
func Frame(cells []uint8, w, h int, palette []color.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	buf := make([]byte, 4*w*h)
	fillPaletteRGBA(buf, cells, palette)

	stride := img.Stride
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			for dy := 0; dy < scale; dy++ {
				row := (y*scale+dy)*stride + x*scale*4
				for dx := 0; dx < scale; dx++ {
					copy(img.Pix[row+dx*4:row+dx*4+4], buf[base:base+4])
				}
			}
		}
	}
	return img
}

// FramePath returns the conventional per-day frame filename inside dir.
func FramePath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.png", day))
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create frame dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close frame: %w", err)
	}
	return nil
}
