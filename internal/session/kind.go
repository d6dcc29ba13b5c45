package session

import (
	"strings"

	"github.com/pkg/errors"

	"life-sandbox/internal/sims/blend"
	"life-sandbox/internal/sims/chess"
	"life-sandbox/internal/sims/classic"
)

// Kind selects which automaton variant a session runs.
type Kind int

const (
	Classic Kind = iota
	Blend
	Chess
)

// Kinds lists every variant in menu order.
var Kinds = []Kind{Classic, Blend, Chess}

// String returns the registry name of the variant.
func (k Kind) String() string {
	switch k {
	case Classic:
		return classic.Name
	case Blend:
		return blend.Name
	case Chess:
		return chess.Name
	}
	return "unknown"
}

// ParseKind maps a name to a Kind. "colored" and "color" are accepted for
// Blend.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case classic.Name:
		return Classic, nil
	case blend.Name, "colored", "color":
		return Blend, nil
	case chess.Name:
		return Chess, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Outcome reports what a tick did.
type Outcome int

const (
	// Idle means no generation was computed.
	Idle Outcome = iota
	// Continue means a generation was computed and the run goes on.
	Continue
	// Extinct means a classic or blend population died out.
	Extinct
	AllDead
	WhiteWins
	BlackWins
)

// Terminal reports whether the outcome stopped the simulation.
func (o Outcome) Terminal() bool { return o >= Extinct }

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "running"
	case Extinct:
		return "population died out"
	case AllDead:
		return "all cells died"
	case WhiteWins:
		return "white cells won"
	case BlackWins:
		return "black cells won"
	}
	return "idle"
}

func outcomeOf(v chess.Victory) Outcome {
	switch v {
	case chess.AllDead:
		return AllDead
	case chess.WhiteWins:
		return WhiteWins
	case chess.BlackWins:
		return BlackWins
	}
	return Continue
}
