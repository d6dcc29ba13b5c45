package classic

import (
	"life-sandbox/internal/core"
)

// Name is the registry key for the classic automaton.
const Name = "classic"

// Cell is the state of one classic cell.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Life implements Conway's Game of Life (B3/S23) with toroidal wrapping.
type Life struct {
	*core.Engine[Cell]
}

// New returns a Life simulation with rows x cols dead cells.
func New(rows, cols int) *Life {
	return &Life{Engine: core.NewEngine(rows, cols, Dead, rule)}
}

func rule(self Cell, n *[8]Cell) Cell {
	live := 0
	for _, c := range n {
		if c == Alive {
			live++
		}
	}
	if live == 3 || (self == Alive && live == 2) {
		return Alive
	}
	return Dead
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return Name }

// Toggle flips the cell at column x, row y between Dead and Alive. The
// coordinates must be in range.
func (l *Life) Toggle(x, y int) {
	g := l.Grid()
	if g.At(x, y) == Alive {
		g.Set(x, y, Dead)
		return
	}
	g.Set(x, y, Alive)
}

// SetCell stores state at column x, row y. Out of range coordinates are
// ignored.
func (l *Life) SetCell(x, y int, state Cell) {
	g := l.Grid()
	if !g.InBounds(x, y) {
		return
	}
	g.Set(x, y, state)
}

// Cell returns the state at column x, row y, or Dead when out of range.
func (l *Life) Cell(x, y int) Cell {
	g := l.Grid()
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.At(x, y)
}

// CountLive returns the number of Alive cells.
func (l *Life) CountLive() int {
	return l.Count(func(c Cell) bool { return c == Alive })
}

// Population is CountLive.
func (l *Life) Population() int { return l.CountLive() }

// Reset clears the board and seeds it with a random soup.
func (l *Life) Reset(seed int64) {
	l.Clear()
	rng := core.NewRNG(seed)
	cells := l.Grid().Cells()
	for i := range cells {
		if rng.Chance(core.SeedDensity) {
			cells[i] = Alive
		}
	}
}

// Fingerprint digests the current generation.
func (l *Life) Fingerprint() string {
	return core.Fingerprint(l.Grid(), func(buf []byte, c Cell) []byte {
		return append(buf, byte(c))
	})
}

func init() {
	core.Register(Name, func(rows, cols int) core.Sim {
		return New(rows, cols)
	})
}
