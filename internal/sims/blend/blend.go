package blend

import (
	"life-sandbox/internal/core"
)

// Name is the registry key for the color-blend automaton.
const Name = "blend"

// Cell is either empty (the zero value) or a live cell carrying an RGB
// color. A live black cell is distinct from an empty one.
type Cell struct {
	R, G, B uint8
	Alive   bool
}

// Empty is the dead cell value.
var Empty = Cell{}

// RGB returns a live cell of the given color.
func RGB(r, g, b uint8) Cell { return Cell{R: r, G: g, B: b, Alive: true} }

// Life is a Game of Life whose newborn cells take the average color of the
// three parents.
type Life struct {
	*core.Engine[Cell]
	paint Cell
}

// New returns a color-blend simulation with rows x cols empty cells. The
// paint color starts as opaque black.
func New(rows, cols int) *Life {
	return &Life{
		Engine: core.NewEngine(rows, cols, Empty, rule),
		paint:  RGB(0, 0, 0),
	}
}

func rule(self Cell, n *[8]Cell) Cell {
	live := 0
	for _, c := range n {
		if c.Alive {
			live++
		}
	}
	if self.Alive {
		if live != 2 && live != 3 {
			return Empty
		}
		return self
	}
	if live != 3 {
		return Empty
	}
	return average(n)
}

// average returns the truncated per-channel mean of the live cells in n, or
// Empty unless exactly three are live.
func average(n *[8]Cell) Cell {
	var r, g, b, count int
	for _, c := range n {
		if !c.Alive {
			continue
		}
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		count++
	}
	if count != 3 {
		return Empty
	}
	return RGB(uint8(r/count), uint8(g/count), uint8(b/count))
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return Name }

// SetPaintColor sets the color applied by Toggle, clamping each channel to
// [0, 255].
func (l *Life) SetPaintColor(r, g, b int) {
	l.paint = RGB(clampChannel(r), clampChannel(g), clampChannel(b))
}

// PaintColor returns the color applied by Toggle.
func (l *Life) PaintColor() Cell { return l.paint }

func clampChannel(v int) uint8 {
	return uint8(min(255, max(0, v)))
}

// Toggle paints an empty cell at column x, row y with the current paint
// color, or empties a live one. The coordinates must be in range.
func (l *Life) Toggle(x, y int) {
	g := l.Grid()
	if g.At(x, y).Alive {
		g.Set(x, y, Empty)
		return
	}
	g.Set(x, y, l.paint)
}

// SetCell stores c at column x, row y. Out of range coordinates are ignored.
func (l *Life) SetCell(x, y int, c Cell) {
	g := l.Grid()
	if !g.InBounds(x, y) {
		return
	}
	if !c.Alive {
		c = Empty
	}
	g.Set(x, y, c)
}

// Cell returns the cell at column x, row y, or Empty when out of range.
func (l *Life) Cell(x, y int) Cell {
	g := l.Grid()
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.At(x, y)
}

// CountLive returns the number of colored cells.
func (l *Life) CountLive() int {
	return l.Count(func(c Cell) bool { return c.Alive })
}

// Population is CountLive.
func (l *Life) Population() int { return l.CountLive() }

// Reset clears the board and seeds it with randomly colored cells.
func (l *Life) Reset(seed int64) {
	l.Clear()
	rng := core.NewRNG(seed)
	cells := l.Grid().Cells()
	for i := range cells {
		if rng.Chance(core.SeedDensity) {
			cells[i] = RGB(rng.Uint8(), rng.Uint8(), rng.Uint8())
		}
	}
}

// Fingerprint digests the current generation.
func (l *Life) Fingerprint() string {
	return core.Fingerprint(l.Grid(), func(buf []byte, c Cell) []byte {
		if !c.Alive {
			return append(buf, 0, 0, 0, 0)
		}
		return append(buf, 1, c.R, c.G, c.B)
	})
}

func init() {
	core.Register(Name, func(rows, cols int) core.Sim {
		return New(rows, cols)
	})
}
