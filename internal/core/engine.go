package core

// Rule computes a cell's next state from its current state and its eight
// toroidal neighbors in the previous generation.
type Rule[T comparable] func(self T, n *[8]T) T

// Engine advances a toroidal grid one synchronous generation at a time. The
// variants in internal/sims embed it and supply their own Rule.
type Engine[T comparable] struct {
	cur, nxt *Grid[T]
	rule     Rule[T]
	empty    T

	running    bool
	generation int
	changes    int
}

// NewEngine allocates an engine for a rows x cols grid filled with empty.
func NewEngine[T comparable](rows, cols int, empty T, rule Rule[T]) *Engine[T] {
	e := &Engine[T]{
		cur:   NewGrid[T](cols, rows),
		nxt:   NewGrid[T](cols, rows),
		rule:  rule,
		empty: empty,
	}
	e.cur.Fill(empty)
	e.nxt.Fill(empty)
	return e
}

// Grid exposes the current generation.
func (e *Engine[T]) Grid() *Grid[T] { return e.cur }

// Size returns the grid dimensions.
func (e *Engine[T]) Size() Size { return Size{W: e.cur.W, H: e.cur.H} }

// Step computes the next generation. It is a no-op while the engine is not
// running. Every next state is read from the previous grid, so the scan
// order never affects the result.
func (e *Engine[T]) Step() {
	if !e.running {
		return
	}
	w, h := e.cur.W, e.cur.H
	cur, nxt := e.cur.data, e.nxt.data
	changes := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := e.cur.Neighbors(x, y)
			next := e.rule(cur[idx], &n)
			if next != cur[idx] {
				changes++
			}
			nxt[idx] = next
		}
	}
	e.changes = changes
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Clear empties every cell and resets the generation counter. The running
// flag is left untouched.
func (e *Engine[T]) Clear() {
	e.cur.Fill(e.empty)
	e.generation = 0
}

// ToggleRunning flips whether Step advances the grid.
func (e *Engine[T]) ToggleRunning() { e.running = !e.running }

// SetRunning enables or disables generation advancement.
func (e *Engine[T]) SetRunning(on bool) { e.running = on }

// Running reports whether Step advances the grid.
func (e *Engine[T]) Running() bool { return e.running }

// Generation returns the number of steps since construction or the last Clear.
func (e *Engine[T]) Generation() int { return e.generation }

// Changes returns how many cells differed between the last two generations.
func (e *Engine[T]) Changes() int { return e.changes }

// Count returns the number of cells matching pred.
func (e *Engine[T]) Count(pred func(T) bool) int {
	n := 0
	for _, c := range e.cur.data {
		if pred(c) {
			n++
		}
	}
	return n
}
