// Package session owns the automaton a driver is currently showing. It
// replaces the automaton wholesale on resize or kind change and applies the
// end-of-run checks after every generation.
package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"life-sandbox/internal/core"
	"life-sandbox/internal/patterns"
	"life-sandbox/internal/sims/blend"
	"life-sandbox/internal/sims/chess"
	"life-sandbox/internal/sims/classic"
)

// Grid dimensions accepted by New and Resize.
const (
	MinSize = 1
	MaxSize = 150
)

var (
	ErrInvalidSize        = errors.New("grid dimensions must be between 1 and 150")
	ErrUnknownKind        = errors.New("unknown simulation kind")
	ErrWrongKind          = errors.New("operation not supported by this simulation kind")
	ErrPatternUnsupported = errors.New("patterns are only available for the classic simulation")
	ErrOutOfRange         = errors.New("cell coordinates out of range")
	ErrBadColor           = errors.New("color must be written as r,g,b")
)

// DefaultPaint is the blend paint color a fresh session starts with.
var DefaultPaint = [3]int{255, 0, 0}

// Session holds one automaton plus the driver-facing state around it.
type Session struct {
	kind       Kind
	rows, cols int
	sim        core.Sim
	pacer      *core.FixedStep
	paint      [3]int
	outcome    Outcome
}

// New validates the dimensions and builds a session of the given kind.
func New(kind Kind, rows, cols int) (*Session, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	s := &Session{
		kind:  kind,
		rows:  rows,
		cols:  cols,
		pacer: core.NewFixedStep(core.SpeedMarks[0]),
		paint: DefaultPaint,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func validateSize(rows, cols int) error {
	if rows < MinSize || rows > MaxSize || cols < MinSize || cols > MaxSize {
		return errors.Wrapf(ErrInvalidSize, "got %dx%d", rows, cols)
	}
	return nil
}

func (s *Session) build() error {
	factory, ok := core.Sims()[s.kind.String()]
	if !ok {
		return errors.Wrapf(ErrUnknownKind, "no simulation registered for %s", s.kind)
	}
	s.sim = factory(s.rows, s.cols)
	if b := s.Blend(); b != nil {
		b.SetPaintColor(s.paint[0], s.paint[1], s.paint[2])
	}
	s.pacer.Restart()
	s.outcome = Idle
	return nil
}

// Kind returns the running variant.
func (s *Session) Kind() Kind { return s.kind }

// Sim exposes the current automaton.
func (s *Session) Sim() core.Sim { return s.sim }

// Rows returns the grid height.
func (s *Session) Rows() int { return s.rows }

// Cols returns the grid width.
func (s *Session) Cols() int { return s.cols }

// Classic returns the automaton when the session runs the classic variant.
func (s *Session) Classic() *classic.Life {
	l, _ := s.sim.(*classic.Life)
	return l
}

// Chess returns the automaton when the session runs the two-color variant.
func (s *Session) Chess() *chess.Life {
	l, _ := s.sim.(*chess.Life)
	return l
}

// Blend returns the automaton when the session runs the color-blend variant.
func (s *Session) Blend() *blend.Life {
	l, _ := s.sim.(*blend.Life)
	return l
}

// SetKind switches to another variant on a fresh, empty grid.
func (s *Session) SetKind(kind Kind) error {
	prev := s.kind
	s.kind = kind
	if err := s.build(); err != nil {
		s.kind = prev
		return err
	}
	return nil
}

// Resize replaces the automaton with an empty one of the new dimensions.
// The old contents and generation count are discarded.
func (s *Session) Resize(rows, cols int) error {
	if err := validateSize(rows, cols); err != nil {
		return err
	}
	if rows == s.rows && cols == s.cols {
		return nil
	}
	s.rows, s.cols = rows, cols
	return s.build()
}

// AdjustRows changes the row count by delta, clamped to the valid range.
func (s *Session) AdjustRows(delta int) error {
	return s.Resize(clampSize(s.rows+delta), s.cols)
}

// AdjustCols changes the column count by delta, clamped to the valid range.
func (s *Session) AdjustCols(delta int) error {
	return s.Resize(s.rows, clampSize(s.cols+delta))
}

func clampSize(v int) int { return min(MaxSize, max(MinSize, v)) }

// SetSpeed sets the generation rate multiplier, snapped to the nearest mark.
func (s *Session) SetSpeed(speed float64) { s.pacer.SetSpeed(speed) }

// Speed returns the generation rate multiplier.
func (s *Session) Speed() float64 { return s.pacer.Speed() }

// Interval returns the wall-clock time between generations.
func (s *Session) Interval() time.Duration { return s.pacer.Interval() }

// SetPaintColor sets the blend paint color, clamping each channel.
func (s *Session) SetPaintColor(r, g, b int) error {
	l := s.Blend()
	if l == nil {
		return errors.Wrapf(ErrWrongKind, "paint color on %s", s.kind)
	}
	l.SetPaintColor(r, g, b)
	c := l.PaintColor()
	s.paint = [3]int{int(c.R), int(c.G), int(c.B)}
	return nil
}

// ParsePaintColor parses text such as "255,0,0" and applies it.
func (s *Session) ParsePaintColor(text string) error {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return errors.Wrapf(ErrBadColor, "%q", text)
	}
	var rgb [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return errors.Wrapf(ErrBadColor, "%q: %v", text, err)
		}
		rgb[i] = v
	}
	return s.SetPaintColor(rgb[0], rgb[1], rgb[2])
}

// PaintColor returns the blend paint color.
func (s *Session) PaintColor() (r, g, b uint8) {
	return uint8(s.paint[0]), uint8(s.paint[1]), uint8(s.paint[2])
}

// ToggleCell edits the cell at column x, row y using the variant's toggle.
func (s *Session) ToggleCell(x, y int) error {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) on %dx%d", x, y, s.rows, s.cols)
	}
	s.sim.Toggle(x, y)
	return nil
}

// ApplyPattern stamps a named preset onto a cleared classic grid.
func (s *Session) ApplyPattern(name string) error {
	l := s.Classic()
	if l == nil {
		return errors.Wrapf(ErrPatternUnsupported, "kind %s", s.kind)
	}
	p, err := patterns.Lookup(name)
	if err != nil {
		return err
	}
	if err := patterns.Apply(p, l); err != nil {
		return err
	}
	s.outcome = Idle
	return nil
}

// Start enables generation advancement. The first Tick afterwards only
// starts the pacing clock.
func (s *Session) Start() {
	if !s.sim.Running() {
		s.pacer.Restart()
	}
	s.sim.SetRunning(true)
}

// Stop disables generation advancement.
func (s *Session) Stop() { s.sim.SetRunning(false) }

// ToggleRunning flips generation advancement.
func (s *Session) ToggleRunning() {
	if s.sim.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// Running reports whether generations advance.
func (s *Session) Running() bool { return s.sim.Running() }

// Clear empties the grid and resets the generation counter.
func (s *Session) Clear() {
	s.sim.Clear()
	s.outcome = Idle
}

// Reset clears the grid and seeds a random soup.
func (s *Session) Reset(seed int64) {
	s.sim.Reset(seed)
	s.outcome = Idle
}

// Tick advances one generation if the session is running and the pacing
// interval has elapsed at now.
func (s *Session) Tick(now time.Time) Outcome {
	if !s.sim.Running() {
		return Idle
	}
	if !s.pacer.ShouldStepAt(now) {
		return Idle
	}
	return s.Advance()
}

// Advance computes one generation regardless of pacing and applies the
// end-of-run checks. A terminal outcome stops the simulation.
func (s *Session) Advance() Outcome {
	if !s.sim.Running() {
		return Idle
	}
	s.sim.Step()
	out := Continue
	if l := s.Chess(); l != nil {
		out = outcomeOf(l.CheckVictory())
	} else if s.sim.Population() == 0 {
		out = Extinct
	}
	if out.Terminal() {
		s.sim.SetRunning(false)
	}
	s.outcome = out
	return out
}

// Outcome returns the result of the last generation.
func (s *Session) Outcome() Outcome { return s.outcome }

// Finished reports whether the last generation ended the run.
func (s *Session) Finished() bool { return s.outcome.Terminal() }

// Acknowledge dismisses a finished run by clearing the grid.
func (s *Session) Acknowledge() {
	if s.Finished() {
		s.Clear()
	}
}

// Generation returns the current generation number.
func (s *Session) Generation() int { return s.sim.Generation() }

// Changes returns the number of cells that changed in the last generation.
func (s *Session) Changes() int { return s.sim.Changes() }

// Population returns the number of live cells.
func (s *Session) Population() int { return s.sim.Population() }

// Counts returns the white and black populations for the two-color variant,
// and the population and zero otherwise.
func (s *Session) Counts() (int, int) {
	if l := s.Chess(); l != nil {
		return l.CountLive()
	}
	return s.sim.Population(), 0
}
