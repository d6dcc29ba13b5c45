package classic

import "image/color"

var (
	aliveColor = color.RGBA{R: 71, G: 74, B: 81, A: 255}
	deadColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// ColorAt returns the display color of the cell at column x, row y.
func (l *Life) ColorAt(x, y int) color.RGBA {
	if l.Cell(x, y) == Alive {
		return aliveColor
	}
	return deadColor
}
