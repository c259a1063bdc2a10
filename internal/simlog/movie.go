package simlog

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// MovieWriter assembles rendered day frames into a motion-JPEG AVI.
type MovieWriter struct {
	aw mjpeg.AviWriter
}

// NewMovieWriter creates the movie file. Width and height must match the
// frames added later.
func NewMovieWriter(path string, width, height, fps int) (*MovieWriter, error) {
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("simlog: create movie %s: %w", path, err)
	}
	return &MovieWriter{aw: aw}, nil
}

// AddFrame encodes img as JPEG and appends it to the movie.
func (m *MovieWriter) AddFrame(img image.Image) error {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("simlog: encode movie frame: %w", err)
	}
	if err := m.aw.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("simlog: append movie frame: %w", err)
	}
	return nil
}

// Close finalizes the AVI index. The file is unusable until Close returns.
func (m *MovieWriter) Close() error {
	if err := m.aw.Close(); err != nil {
		return fmt.Errorf("simlog: close movie: %w", err)
	}
	return nil
}
