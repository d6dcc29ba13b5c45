package render

import (
	"image/color"

	"life-sandbox/internal/core"
)

// Colorer reports the display color of a cell.
type Colorer interface {
	Size() core.Size
	ColorAt(x, y int) color.RGBA
}

// fillRGBA writes one RGBA pixel per cell into buf in row-major order. It
// returns false when buf does not match the colorer's size.
func fillRGBA(buf []byte, src Colorer) bool {
	size := src.Size()
	if len(buf) != 4*size.W*size.H {
		return false
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			col := src.ColorAt(x, y)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	return true
}

// CellAt maps a point in scaled screen space to grid coordinates. ok is false
// when the point lies outside a w*h grid.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
