package core

import (
	"math"
	"time"
)

// SpeedMarks are the simulation speed multipliers a driver may select. One
// generation is advanced every 1s/speed.
var SpeedMarks = []float64{1.0, 1.5, 1.75, 2.0, 2.5}

// SnapSpeed clamps speed to the mark range and rounds it to the nearest mark.
func SnapSpeed(speed float64) float64 {
	closest := SpeedMarks[0]
	best := math.Abs(speed - closest)
	for _, mark := range SpeedMarks[1:] {
		if d := math.Abs(speed - mark); d < best {
			best = d
			closest = mark
		}
	}
	return closest
}

// FixedStep paces generation advancement against wall-clock time.
type FixedStep struct {
	speed float64
	step  time.Duration
	last  time.Time
}

// NewFixedStep constructs a FixedStep controller for the given speed multiplier.
func NewFixedStep(speed float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetSpeed(speed)
	return fs
}

// SetSpeed changes the step interval. It is safe to call from the main loop.
func (f *FixedStep) SetSpeed(speed float64) {
	f.speed = SnapSpeed(speed)
	f.step = time.Duration(float64(time.Second) / f.speed)
}

// Speed returns the snapped speed multiplier.
func (f *FixedStep) Speed() float64 { return f.speed }

// Interval returns the wall-clock time between generations.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart stops the clock. The next ShouldStepAt call starts it again.
func (f *FixedStep) Restart() { f.last = time.Time{} }

// ShouldStepAt reports whether the simulation should advance by one
// generation at now. The first call after construction or Restart only
// starts the clock.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) >= f.step {
		f.last = now
		return true
	}
	return false
}

// StepSpeed moves one mark from current in the direction of toward. It
// returns current when toward equals it or no further mark exists.
func StepSpeed(current, toward float64) float64 {
	current = SnapSpeed(current)
	switch {
	case toward > current:
		for _, mark := range SpeedMarks {
			if mark > current {
				return mark
			}
		}
	case toward < current:
		for i := len(SpeedMarks) - 1; i >= 0; i-- {
			if SpeedMarks[i] < current {
				return SpeedMarks[i]
			}
		}
	}
	return current
}
