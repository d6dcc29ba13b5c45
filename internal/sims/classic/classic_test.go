package classic

import (
	"testing"
)

var glider = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func liveSet(l *Life) map[[2]int]bool {
	size := l.Size()
	out := map[[2]int]bool{}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if l.Cell(x, y) == Alive {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectLive(t *testing.T, l *Life, want [][2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, c := range want {
		expects[c] = true
	}
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Cell(x, y) == Alive
			if alive != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v (generation %d)", x, y, alive, expects[[2]int{x, y}], l.Generation())
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.SetCell(2, 1, Alive)
	life.SetCell(2, 2, Alive)
	life.SetCell(2, 3, Alive)
	life.ToggleRunning()

	life.Step()
	expectLive(t, life, [][2]int{{1, 2}, {2, 2}, {3, 2}})
	if got := life.Changes(); got != 4 {
		t.Fatalf("changes after first step = %d, expected 4", got)
	}

	life.Step()
	expectLive(t, life, [][2]int{{2, 1}, {2, 2}, {2, 3}})
	if got := life.Generation(); got != 2 {
		t.Fatalf("generation = %d, expected 2", got)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	life := New(6, 6)
	for _, c := range glider {
		life.SetCell(c[0], c[1], Alive)
	}
	life.ToggleRunning()
	for i := 0; i < 4; i++ {
		life.Step()
	}
	expectLive(t, life, [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}})
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	const n = 6
	life := New(n, n)
	for _, c := range glider {
		life.SetCell((c[0]+4)%n, (c[1]+4)%n, Alive)
	}
	life.ToggleRunning()
	for i := 0; i < 4; i++ {
		life.Step()
	}
	expectLive(t, life, [][2]int{{0, 1}, {0, 5}, {1, 0}, {1, 1}, {5, 1}})

	// A glider crosses the whole torus and returns home after 4n generations.
	life = New(n, n)
	for _, c := range glider {
		life.SetCell(c[0], c[1], Alive)
	}
	start := liveSet(life)
	life.ToggleRunning()
	for i := 0; i < 4*n; i++ {
		life.Step()
	}
	got := liveSet(life)
	if len(got) != len(start) {
		t.Fatalf("population after full lap = %d, expected %d", len(got), len(start))
	}
	for c := range start {
		if !got[c] {
			t.Fatalf("cell %v missing after full lap", c)
		}
	}
}

func TestGliderOnThreeByThreeCollapses(t *testing.T) {
	// Every cell of a 3x3 torus neighbors all eight others exactly once, so
	// five live cells overcrowd everything.
	life := New(3, 3)
	for _, c := range glider {
		life.SetCell(c[0], c[1], Alive)
	}
	life.ToggleRunning()
	life.Step()
	if got := life.CountLive(); got != 0 {
		t.Fatalf("live cells = %d, expected 0", got)
	}
}

func TestCornerSeesOppositeCorner(t *testing.T) {
	life := New(4, 5)
	// (0,0) has exactly three live neighbors only through wrap-around.
	life.SetCell(4, 3, Alive)
	life.SetCell(0, 3, Alive)
	life.SetCell(4, 0, Alive)
	life.ToggleRunning()
	life.Step()
	if life.Cell(0, 0) != Alive {
		t.Fatal("cell (0,0) should be born from wrapped neighbors")
	}
}

func TestLoneCellDies(t *testing.T) {
	life := New(5, 5)
	life.Toggle(2, 2)
	life.ToggleRunning()
	life.Step()
	if got := life.CountLive(); got != 0 {
		t.Fatalf("live cells = %d, expected 0", got)
	}
	if got := life.Changes(); got != 1 {
		t.Fatalf("changes = %d, expected 1", got)
	}
}

func TestStepIsNoOpWhenPaused(t *testing.T) {
	life := New(5, 5)
	life.Toggle(1, 1)
	life.Toggle(2, 2)
	before := append([]Cell(nil), life.Grid().Cells()...)
	life.Step()
	if life.Generation() != 0 {
		t.Fatalf("generation advanced while paused: %d", life.Generation())
	}
	for i, c := range life.Grid().Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed while paused", i)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	life := New(4, 4)
	life.Toggle(0, 0)
	life.Toggle(1, 0)
	life.Toggle(2, 0)
	life.ToggleRunning()
	life.Step()
	life.Clear()
	if life.CountLive() != 0 || life.Generation() != 0 {
		t.Fatalf("after clear: live=%d generation=%d", life.CountLive(), life.Generation())
	}
	if !life.Running() {
		t.Fatal("clear must not stop the simulation")
	}
	snapshot := append([]Cell(nil), life.Grid().Cells()...)
	life.Clear()
	for i, c := range life.Grid().Cells() {
		if c != snapshot[i] {
			t.Fatalf("second clear changed cell %d", i)
		}
	}
}

func TestToggleAndSetCell(t *testing.T) {
	life := New(3, 4)
	life.Toggle(0, 0)
	life.Toggle(3, 2)
	life.Toggle(1, 1)
	if got := life.CountLive(); got != 3 {
		t.Fatalf("live cells = %d, expected 3", got)
	}
	life.Toggle(1, 1)
	if got := life.CountLive(); got != 2 {
		t.Fatalf("toggle twice should restore the cell, live = %d", got)
	}

	life.SetCell(0, 0, Alive)
	life.SetCell(-1, 0, Alive)
	life.SetCell(4, 0, Alive)
	life.SetCell(0, 3, Alive)
	if got := life.CountLive(); got != 2 {
		t.Fatalf("SetCell must be idempotent and ignore out of range input, live = %d", got)
	}
}

func TestDegenerateSingleCell(t *testing.T) {
	// On a 1x1 torus the only cell is its own neighbor eight times.
	life := New(1, 1)
	life.Toggle(0, 0)
	life.ToggleRunning()
	life.Step()
	if life.Cell(0, 0) != Dead {
		t.Fatal("1x1 live cell sees eight live neighbors and must die")
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(20, 20)
	b := New(20, 20)
	a.Reset(7)
	b.Reset(7)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("Reset with the same seed must produce the same soup")
	}
	if a.CountLive() == 0 {
		t.Fatal("Reset should seed live cells")
	}
	if a.Generation() != 0 {
		t.Fatalf("Reset must restart the generation count, got %d", a.Generation())
	}
}
