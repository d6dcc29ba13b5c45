package session

import (
	"fmt"

	"life-sandbox/internal/core"
)

// Parameters reports the session state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	status := []core.Parameter{
		core.IntParam("generation", "Generation", s.Generation()),
		core.IntParam("changes", "Changes", s.Changes()),
	}
	if l := s.Chess(); l != nil {
		white, black := l.CountLive()
		status = append(status,
			core.IntParam("white", "White", white),
			core.IntParam("black", "Black", black),
		)
	} else {
		status = append(status, core.IntParam("population", "Live cells", s.Population()))
	}
	status = append(status, core.StringParam("outcome", "State", s.stateLabel()))

	sim := []core.Parameter{
		core.StringParam("kind", "Simulation", s.kind.String()),
		core.IntParam("rows", "Rows", s.rows),
		core.IntParam("cols", "Cols", s.cols),
		core.FloatParam("speed", "Speed", s.Speed()),
	}
	if s.kind == Blend {
		r, g, b := s.PaintColor()
		sim = append(sim, core.StringParam("paint", "Paint", fmt.Sprintf("%d,%d,%d", r, g, b)))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: sim},
		{Name: "Status", Params: status},
	}}
}

func (s *Session) stateLabel() string {
	if s.outcome.Terminal() {
		return s.outcome.String()
	}
	if s.Running() {
		return "running"
	}
	return "paused"
}

// ParameterControls exposes the grid size and speed adjusters.
func (s *Session) ParameterControls() []core.ParameterControl {
	marks := core.SpeedMarks
	return []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: MinSize, Max: MaxSize},
		{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Step: 1, Min: MinSize, Max: MaxSize},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.25, Min: marks[0], Max: marks[len(marks)-1]},
	}
}

// SetIntParameter applies a rows or cols change from the HUD.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "rows":
		return s.Resize(value, s.cols) == nil
	case "cols":
		return s.Resize(s.rows, value) == nil
	}
	return false
}

// SetFloatParameter moves the speed one mark toward value.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != "speed" {
		return false
	}
	s.SetSpeed(core.StepSpeed(s.Speed(), value))
	return true
}
