package session

const classicRules = `Survival:
    A live cell remains alive if it has 2 or 3 live neighbors.
Death:
    From loneliness (fewer than 2 neighbors)
    From overpopulation (more than 3 neighbors)
Birth:
    A dead cell comes to life if it has exactly 3 live neighbors.`

const blendRules = `Survival:
    A live cell remains alive if it has 2 or 3 live neighbors.
    It keeps its color.
Death:
    From loneliness (fewer than 2 neighbors)
    From overpopulation (more than 3 neighbors)
Birth:
    A dead cell comes to life if it has exactly 3 live neighbors.
    Its color is the average color of those neighbors.`

const chessRules = `White cells:
    Survive with 2 or 3 white neighbors
    Born with exactly 3 white neighbors
Black cells:
    Survive with 2 or 3 black neighbors
    Born with exactly 3 black neighbors
Veto:
    Exactly 3 neighbors of the other color kill a survivor
    and block a birth
Death:
    Any cell dies with fewer than 2 or more than 3 neighbors of its color`

// Rules returns the human-readable rule summary for the session's variant.
func (s *Session) Rules() string {
	switch s.kind {
	case Blend:
		return blendRules
	case Chess:
		return chessRules
	}
	return classicRules
}
