package core

import "testing"

// spread turns a cell on when any neighbor is on.
func spread(self bool, n *[8]bool) bool {
	if self {
		return true
	}
	for _, c := range n {
		if c {
			return true
		}
	}
	return false
}

func TestEngineStepReadsPreviousGeneration(t *testing.T) {
	e := NewEngine(1, 7, false, spread)
	e.Grid().Set(0, 0, true)
	e.SetRunning(true)
	e.Step()
	// An in-place scan would flood the whole row in one pass.
	want := []bool{true, true, false, false, false, false, true}
	for x, w := range want {
		if got := e.Grid().At(x, 0); got != w {
			t.Fatalf("cell %d = %v, expected %v", x, got, w)
		}
	}
	if e.Changes() != 2 {
		t.Fatalf("changes = %d, expected 2", e.Changes())
	}
	if e.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", e.Generation())
	}
}

func TestEnginePausedAndClear(t *testing.T) {
	e := NewEngine(3, 3, false, spread)
	e.Grid().Set(1, 1, true)
	e.Step()
	if e.Generation() != 0 || e.Count(func(b bool) bool { return b }) != 1 {
		t.Fatal("paused step must leave the engine untouched")
	}
	e.ToggleRunning()
	e.Step()
	e.Step()
	if e.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", e.Generation())
	}
	e.Clear()
	if e.Generation() != 0 || e.Count(func(b bool) bool { return b }) != 0 {
		t.Fatal("clear must empty the grid and reset the generation")
	}
	if !e.Running() {
		t.Fatal("clear must keep the running flag")
	}
}

func TestEngineSize(t *testing.T) {
	e := NewEngine(4, 9, 0, func(self int, _ *[8]int) int { return self })
	if s := e.Size(); s.W != 9 || s.H != 4 {
		t.Fatalf("size = %+v, expected 9 columns by 4 rows", s)
	}
}
