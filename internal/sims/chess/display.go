package chess

import "image/color"

var palette = [...]color.RGBA{
	Empty: {R: 220, G: 220, B: 220, A: 255},
	White: {R: 255, G: 255, B: 255, A: 255},
	Black: {R: 0, G: 0, B: 0, A: 255},
}

// ColorAt returns the display color of the cell at column x, row y.
func (l *Life) ColorAt(x, y int) color.RGBA {
	return palette[l.Cell(x, y)]
}
