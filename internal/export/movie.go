package export

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	"dlagrow/internal/render"

	"github.com/icza/mjpeg"
	errgo "gopkg.in/errgo.v1"
)

// Movie records cluster snapshots into an MJPEG AVI file.
type Movie struct {
	aw      mjpeg.AviWriter
	w, h    int
	scale   int
	palette []color.RGBA
	buf     bytes.Buffer
	frames  int
}

// NewMovie creates path for a cells-wide, cells-high lattice rendered at the
// given scale and frame rate.
func NewMovie(path string, cellsW, cellsH, scale, fps int, palette []color.RGBA) (*Movie, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 1
	}
	aw, err := mjpeg.New(path, int32(cellsW*scale), int32(cellsH*scale), int32(fps))
	if err != nil {
		return nil, errgo.Notef(err, "cannot create movie %s", path)
	}
	return &Movie{aw: aw, w: cellsW, h: cellsH, scale: scale, palette: palette}, nil
}

// AddCells renders a display buffer and appends it as a frame.
func (m *Movie) AddCells(cells []uint8) error {
	return m.AddImage(render.PaletteImage(cells, m.w, m.h, m.scale, m.palette))
}

// AddImage appends an already rendered frame.
func (m *Movie) AddImage(img image.Image) error {
	m.buf.Reset()
	if err := jpeg.Encode(&m.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return errgo.Notef(err, "cannot encode frame %d", m.frames)
	}
	if err := m.aw.AddFrame(m.buf.Bytes()); err != nil {
		return errgo.Notef(err, "cannot add frame %d", m.frames)
	}
	m.frames++
	return nil
}

// Frames returns how many frames were recorded.
func (m *Movie) Frames() int { return m.frames }

// Close finalises the AVI index.
func (m *Movie) Close() error {
	if m.aw == nil {
		return nil
	}
	err := m.aw.Close()
	m.aw = nil
	if err != nil {
		return errgo.Notef(err, "cannot finish movie")
	}
	return nil
}
