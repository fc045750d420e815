//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"dlagrow/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GrowthSource is what the overlay needs from the engine.
type GrowthSource interface {
	Radius() int
	SpawnRadius() int
	MaxRadius() float64
	AttractionRange() (int, bool)
	WalkerPosition() (x, y int, alive bool)
}

const circleSegments = 96

// Overlay draws the spawn circle, the cluster radius and the walker's
// attraction window on top of the lattice.
type Overlay struct {
	src        GrowthSource
	showSpawn  bool
	showRadius bool
	showAttr   bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay with the spawn circle visible.
func NewOverlay(src GrowthSource) *Overlay {
	o := &Overlay{src: src, showSpawn: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 spawn circle, 2 cluster radius, 3 attraction window.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSpawn = !o.showSpawn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRadius = !o.showRadius
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showAttr = !o.showAttr
	}
}

// Draw renders the enabled layers for the lattice window view drawn at
// pixels x pixels.
func (o *Overlay) Draw(screen *ebiten.Image, view render.View, pixels int) {
	if view.Size <= 0 {
		return
	}
	k := float64(pixels) / float64(view.Size)
	r := o.src.Radius()
	// Cell centre of the origin in screen space.
	cx := (float64(r-view.X0) + 0.5) * k
	cy := (float64(r-view.Y0) + 0.5) * k

	if o.showSpawn {
		o.drawCircle(screen, cx, cy, float64(o.src.SpawnRadius())*k, color.RGBA{R: 80, G: 140, B: 255, A: 200})
	}
	if o.showRadius {
		o.drawCircle(screen, cx, cy, o.src.MaxRadius()*k, color.RGBA{R: 120, G: 220, B: 120, A: 200})
	}
	if o.showAttr {
		sep, on := o.src.AttractionRange()
		x, y, alive := o.src.WalkerPosition()
		if on && alive {
			half := (float64(sep) + 0.5) * k
			wx := cx + float64(x)*k
			wy := cy + float64(y)*k
			o.drawRect(screen, wx-half, wy-half, wx+half, wy+half, color.RGBA{R: 255, G: 190, B: 60, A: 200})
		}
	}
}

func (o *Overlay) drawCircle(screen *ebiten.Image, cx, cy, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	px, py := cx+radius, cy
	for i := 1; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x, y := cx+radius*math.Cos(theta), cy+radius*math.Sin(theta)
		o.drawLine(screen, px, py, x, y, 1.5, col)
		px, py = x, y
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x1, y1, x2, y2 float64, col color.RGBA) {
	o.drawLine(screen, x1, y1, x2, y1, 1, col)
	o.drawLine(screen, x2, y1, x2, y2, 1, col)
	o.drawLine(screen, x2, y2, x1, y2, 1, col)
	o.drawLine(screen, x1, y2, x1, y1, 1, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
