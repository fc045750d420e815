package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, A: 255},
}

func TestFillPaletteClampsToLastEntry(t *testing.T) {
	buf := make([]byte, 3*4)
	FillPalette(buf, []uint8{0, 1, 9}, testPalette)
	want := []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		255, 0, 0, 255,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FillPalette(buf, []uint8{1, 1}, nil)
	if diff := cmp.Diff(make([]byte, 8), buf); diff != "" {
		t.Fatalf("buffer not cleared (-want +got):\n%s", diff)
	}
}

func TestPaletteImageScales(t *testing.T) {
	cells := []uint8{
		0, 1,
		2, 0,
	}
	img := PaletteImage(cells, 2, 2, 3, testPalette)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, testPalette[0]},
		{5, 2, testPalette[1]},
		{3, 0, testPalette[1]},
		{1, 4, testPalette[2]},
		{4, 4, testPalette[0]},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestZoomView(t *testing.T) {
	if diff := cmp.Diff(View{X0: 44, Y0: 44, Size: 13}, ZoomView(50, 5)); diff != "" {
		t.Fatalf("zoom mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(FullView(10), ZoomView(10, 12)); diff != "" {
		t.Fatalf("oversized zoom should cover the lattice (-want +got):\n%s", diff)
	}
}
