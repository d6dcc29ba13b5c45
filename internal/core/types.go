package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid. W counts columns and H
// counts rows.
type Size struct {
	W int
	H int
}

// Sim defines the contract every automaton variant exposes to its driver.
// Coordinates are (x, y) = (column, row).
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Clear()
	Toggle(x, y int)
	ToggleRunning()
	SetRunning(on bool)
	Running() bool
	Generation() int
	Changes() int
	Population() int
	ColorAt(x, y int) color.RGBA
	Fingerprint() string
}

// Factory constructs a Sim with the given grid dimensions.
type Factory func(rows, cols int) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
