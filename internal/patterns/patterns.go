// Package patterns holds the preset shapes that can be stamped onto a
// classic grid.
package patterns

import (
	"github.com/pkg/errors"

	"life-sandbox/internal/sims/classic"
)

// ErrFieldTooSmall is returned when a pattern does not fit the grid.
var ErrFieldTooSmall = errors.New("the field is too small for this pattern")

// ErrUnknown is returned for names that match no preset.
var ErrUnknown = errors.New("unknown pattern")

// Pattern is a preset shape positioned relative to the grid size.
type Pattern struct {
	Name    string
	MinRows int
	MinCols int
	cells   func(rows, cols int) [][2]int
}

// Cells returns the (x, y) coordinates the pattern sets alive on a rows x
// cols grid.
func (p Pattern) Cells(rows, cols int) [][2]int { return p.cells(rows, cols) }

// Fits reports whether the pattern can be placed on a rows x cols grid.
func (p Pattern) Fits(rows, cols int) bool {
	return rows >= p.MinRows && cols >= p.MinCols
}

var (
	Block = Pattern{Name: "block", MinRows: 2, MinCols: 2, cells: func(rows, cols int) [][2]int {
		cx, cy := cols/2, rows/2
		return [][2]int{{cx, cy}, {cx, cy - 1}, {cx - 1, cy}, {cx - 1, cy - 1}}
	}}

	Glider = Pattern{Name: "glider", MinRows: 3, MinCols: 3, cells: func(int, int) [][2]int {
		return [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	}}

	// Eight is two 3x3 blocks touching diagonally at the grid center.
	Eight = Pattern{Name: "eight", MinRows: 8, MinCols: 8, cells: func(rows, cols int) [][2]int {
		cx, cy := cols/2, rows/2
		out := make([][2]int, 0, 18)
		for i := 0; i <= 2; i++ {
			for j := 0; j <= 2; j++ {
				out = append(out, [2]int{cx - i - 1, cy - j - 1}, [2]int{cx + i, cy + j})
			}
		}
		return out
	}}
)

// All lists the presets in menu order.
func All() []Pattern { return []Pattern{Block, Glider, Eight} }

// Lookup finds a preset by name.
func Lookup(name string) (Pattern, error) {
	for _, p := range All() {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, errors.Wrapf(ErrUnknown, "pattern %q", name)
}

// Apply clears l and stamps p onto it. The grid is left untouched when the
// pattern does not fit.
func Apply(p Pattern, l *classic.Life) error {
	size := l.Size()
	if !p.Fits(size.H, size.W) {
		return errors.Wrapf(ErrFieldTooSmall, "%s needs at least %dx%d, grid is %dx%d",
			p.Name, p.MinRows, p.MinCols, size.H, size.W)
	}
	l.Clear()
	for _, c := range p.Cells(size.H, size.W) {
		l.SetCell(c[0], c[1], classic.Alive)
	}
	return nil
}
