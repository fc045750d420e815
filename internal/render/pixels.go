package render

import (
	"image"
	"image/color"
)

// FillPalette converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry. When the palette is empty
// the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PaletteImage renders a w x h cell buffer into an RGBA image where every
// cell becomes a scale x scale block.
func PaletteImage(cells []uint8, w, h, scale int, palette []color.RGBA) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if scale == 1 {
		FillPalette(img.Pix, cells[:w*h], palette)
		return img
	}

	row := make([]byte, w*4)
	for y := 0; y < h; y++ {
		FillPalette(row, cells[y*w:(y+1)*w], palette)
		for sy := 0; sy < scale; sy++ {
			dst := img.Pix[(y*scale+sy)*img.Stride:]
			for x := 0; x < w; x++ {
				px := row[x*4 : x*4+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[(x*scale+sx)*4:], px)
				}
			}
		}
	}
	return img
}
