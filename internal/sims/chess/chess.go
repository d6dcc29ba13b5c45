package chess

import (
	"life-sandbox/internal/core"
)

// Name is the registry key for the two-color automaton.
const Name = "chess"

// Cell is the state of one two-color cell.
type Cell uint8

const (
	Empty Cell = iota
	White
	Black
)

// PaintColor is the state an empty cell takes when toggled.
const PaintColor = White

// Victory is the terminal-state verdict after a generation.
type Victory int

const (
	Ongoing Victory = iota
	AllDead
	WhiteWins
	BlackWins
)

func (v Victory) String() string {
	switch v {
	case AllDead:
		return "all cells died"
	case WhiteWins:
		return "white cells won"
	case BlackWins:
		return "black cells won"
	default:
		return "ongoing"
	}
}

// Life is a two-color competitive Game of Life. Each color follows B3/S23
// on its own neighbors, vetoed whenever the other color has exactly three.
type Life struct {
	*core.Engine[Cell]
}

// New returns a two-color simulation with rows x cols empty cells.
func New(rows, cols int) *Life {
	return &Life{Engine: core.NewEngine(rows, cols, Empty, rule)}
}

func rule(self Cell, n *[8]Cell) Cell {
	white, black := 0, 0
	for _, c := range n {
		switch c {
		case White:
			white++
		case Black:
			black++
		}
	}
	switch self {
	case White:
		if (white == 2 || white == 3) && black != 3 {
			return White
		}
	case Black:
		if (black == 2 || black == 3) && white != 3 {
			return Black
		}
	default:
		if white == 3 && black != 3 {
			return White
		}
		if black == 3 && white != 3 {
			return Black
		}
	}
	return Empty
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return Name }

// Toggle cycles the cell at column x, row y through Empty, White and Black.
// The coordinates must be in range.
func (l *Life) Toggle(x, y int) {
	g := l.Grid()
	switch g.At(x, y) {
	case Empty:
		g.Set(x, y, PaintColor)
	case White:
		g.Set(x, y, Black)
	default:
		g.Set(x, y, Empty)
	}
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

// Cell returns the state at column x, row y, or Empty when out of range.
func (l *Life) Cell(x, y int) Cell {
	g := l.Grid()
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.At(x, y)
}

// CountLive returns the number of white and black cells.
func (l *Life) CountLive() (white, black int) {
	for _, c := range l.Grid().Cells() {
		switch c {
		case White:
			white++
		case Black:
			black++
		}
	}
	return white, black
}

// Population returns the number of non-empty cells.
func (l *Life) Population() int {
	white, black := l.CountLive()
	return white + black
}

// CheckVictory reports whether one color has been wiped out.
func (l *Life) CheckVictory() Victory {
	white, black := l.CountLive()
	switch {
	case white == 0 && black == 0:
		return AllDead
	case black == 0:
		return WhiteWins
	case white == 0:
		return BlackWins
	}
	return Ongoing
}

// Reset clears the board and scatters both colors at random.
func (l *Life) Reset(seed int64) {
	l.Clear()
	rng := core.NewRNG(seed)
	cells := l.Grid().Cells()
	for i := range cells {
		if !rng.Chance(core.SeedDensity) {
			continue
		}
		cells[i] = White
		if rng.IntN(2) == 1 {
			cells[i] = Black
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
