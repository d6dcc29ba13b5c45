package blend

import "testing"

func TestBirthAveragesParentColors(t *testing.T) {
	l := New(5, 5)
	l.SetCell(1, 1, RGB(255, 0, 0))
	l.SetCell(2, 1, RGB(0, 255, 0))
	l.SetCell(3, 1, RGB(0, 0, 255))
	l.ToggleRunning()
	l.Step()

	want := RGB(85, 85, 85)
	for _, y := range []int{0, 2} {
		if got := l.Cell(2, y); got != want {
			t.Fatalf("cell (2,%d) = %+v, expected %+v", y, got, want)
		}
	}
	if got := l.Cell(2, 1); got != RGB(0, 255, 0) {
		t.Fatalf("survivor must keep its color, got %+v", got)
	}
	if l.Cell(1, 1).Alive || l.Cell(3, 1).Alive {
		t.Fatal("blinker ends must die")
	}
	if got := l.Changes(); got != 4 {
		t.Fatalf("changes = %d, expected 4", got)
	}
}

func TestAverageTruncates(t *testing.T) {
	l := New(5, 5)
	l.SetCell(1, 1, RGB(10, 200, 1))
	l.SetCell(2, 1, RGB(0, 0, 0))
	l.SetCell(3, 1, RGB(0, 1, 0))
	l.ToggleRunning()
	l.Step()
	if got, want := l.Cell(2, 2), RGB(3, 67, 0); got != want {
		t.Fatalf("newborn = %+v, expected %+v", got, want)
	}
}

func TestLiveBlackIsNotEmpty(t *testing.T) {
	l := New(3, 3)
	l.Toggle(0, 0)
	if got := l.Cell(0, 0); got != RGB(0, 0, 0) || got == Empty {
		t.Fatalf("toggle with default paint = %+v, expected live black", got)
	}
	if l.CountLive() != 1 {
		t.Fatalf("live = %d, expected 1", l.CountLive())
	}
	l.Toggle(0, 0)
	if l.Cell(0, 0) != Empty {
		t.Fatal("second toggle must empty the cell")
	}
}

func TestSetPaintColorClamps(t *testing.T) {
	l := New(2, 2)
	l.SetPaintColor(-20, 300, 128)
	if got, want := l.PaintColor(), RGB(0, 255, 128); got != want {
		t.Fatalf("paint = %+v, expected %+v", got, want)
	}
	l.Toggle(1, 1)
	if got := l.Cell(1, 1); got != RGB(0, 255, 128) {
		t.Fatalf("toggle must record the painted color, got %+v", got)
	}
}

func TestToggleCountsDistinctCells(t *testing.T) {
	l := New(4, 6)
	coords := [][2]int{{0, 0}, {5, 3}, {2, 1}, {4, 0}, {1, 3}}
	for i, c := range coords {
		l.SetPaintColor(i*40, 255-i*40, i)
		l.Toggle(c[0], c[1])
	}
	if got := l.CountLive(); got != len(coords) {
		t.Fatalf("live = %d, expected %d", got, len(coords))
	}
}

func TestDeathIgnoresColor(t *testing.T) {
	l := New(5, 5)
	l.SetCell(2, 2, RGB(1, 2, 3))
	l.SetCell(0, 0, RGB(9, 9, 9))
	l.ToggleRunning()
	l.Step()
	if l.CountLive() != 0 {
		t.Fatalf("isolated cells must die, live = %d", l.CountLive())
	}
}

func TestClearAndPausedStep(t *testing.T) {
	l := New(4, 4)
	l.Toggle(1, 1)
	l.Toggle(1, 2)
	l.Toggle(2, 1)
	l.Step()
	if l.Generation() != 0 || l.CountLive() != 3 {
		t.Fatal("step while paused must not change anything")
	}
	l.ToggleRunning()
	l.Step()
	l.Clear()
	l.Clear()
	if l.CountLive() != 0 || l.Generation() != 0 {
		t.Fatalf("after clear: live=%d generation=%d", l.CountLive(), l.Generation())
	}
}

func TestSetCellNormalizesDeadValues(t *testing.T) {
	l := New(2, 2)
	l.SetCell(0, 0, Cell{R: 9})
	l.SetCell(5, 5, RGB(1, 1, 1))
	if l.Cell(0, 0) != Empty {
		t.Fatal("a dead cell must be stored as Empty")
	}
	if l.CountLive() != 0 {
		t.Fatal("out of range SetCell must be ignored")
	}
}
