package blend

import "image/color"

var background = color.RGBA{R: 220, G: 220, B: 220, A: 255}

// RGBA converts a live cell to an opaque color. Empty cells are transparent.
func (c Cell) RGBA() color.RGBA {
	if !c.Alive {
		return color.RGBA{}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ColorAt returns the display color of the cell at column x, row y. Empty
// cells show the board background.
func (l *Life) ColorAt(x, y int) color.RGBA {
	c := l.Cell(x, y)
	if !c.Alive {
		return background
	}
	return c.RGBA()
}
