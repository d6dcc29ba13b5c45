package core

// Grid stores a 2D grid of cell values in row-major order. Every neighbor
// lookup wraps around the edges.
type Grid[T comparable] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T comparable](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y). Coordinates must be in bounds.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Neighbors returns the eight toroidal neighbors of (x, y), row by row from
// the top-left. On grids narrower than three cells the same cell may appear
// more than once, including (x, y) itself.
func (g *Grid[T]) Neighbors(x, y int) [8]T {
	var n [8]T
	w, h := g.W, g.H
	i := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			n[i] = g.data[ny*w+nx]
			i++
		}
	}
	return n
}
