package term

import "dlagrow/internal/render"

// Rasterize downsamples the w-wide display buffer inside v onto a cols x
// rows character grid. Each character shows the highest value in the block
// it covers, so the walker and thin branches stay visible.
func Rasterize(cells []uint8, w int, v render.View, cols, rows int) []uint8 {
	out := make([]uint8, cols*rows)
	if cols <= 0 || rows <= 0 || v.Size <= 0 {
		return out
	}
	h := len(cells) / w
	for cy := 0; cy < rows; cy++ {
		y0 := v.Y0 + cy*v.Size/rows
		y1 := v.Y0 + (cy+1)*v.Size/rows
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for cx := 0; cx < cols; cx++ {
			x0 := v.X0 + cx*v.Size/cols
			x1 := v.X0 + (cx+1)*v.Size/cols
			if x1 <= x0 {
				x1 = x0 + 1
			}
			var best uint8
			for y := max(y0, 0); y < y1 && y < h; y++ {
				row := cells[y*w:]
				for x := max(x0, 0); x < x1 && x < w; x++ {
					if row[x] > best {
						best = row[x]
					}
				}
			}
			out[cy*cols+cx] = best
		}
	}
	return out
}
