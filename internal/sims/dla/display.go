package dla

import "image/color"

// Palette returns the colours for the display buffer values on a dark or
// light background.
func Palette(light bool) []color.RGBA {
	if light {
		return lightPalette
	}
	return darkPalette
}

var (
	darkPalette = []color.RGBA{
		cellEmpty:   {R: 0, G: 0, B: 0, A: 255},
		cellCluster: {R: 235, G: 235, B: 240, A: 255},
		cellWalker:  {R: 255, G: 80, B: 60, A: 255},
	}
	lightPalette = []color.RGBA{
		cellEmpty:   {R: 255, G: 255, B: 255, A: 255},
		cellCluster: {R: 20, G: 20, B: 30, A: 255},
		cellWalker:  {R: 220, G: 40, B: 30, A: 255},
	}
)
