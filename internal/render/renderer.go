//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a lattice display buffer into a single image and draws
// a window of it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit colours cells with palette and draws view stretched to a pixels x
// pixels square at the top-left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, view View, pixels int) {
	if len(cells) != gp.w*gp.h || view.Size <= 0 {
		return
	}
	FillPalette(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	src := gp.img.SubImage(image.Rect(view.X0, view.Y0, view.X0+view.Size, view.Y0+view.Size)).(*ebiten.Image)
	k := float64(pixels) / float64(view.Size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	dst.DrawImage(src, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
