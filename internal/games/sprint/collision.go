package sprint

// Outcome classifies the character's interaction with the world for one
// collision check.
type Outcome int

const (
	OutcomeNone      Outcome = iota // No collision this tick
	OutcomeCorrect                  // Entered the tunnel with the right answer
	OutcomeIncorrect                // Entered a tunnel with a wrong answer
	OutcomeWall                     // Hit a solid wall segment
	OutcomeCeiling                  // Left the canvas at the top
	OutcomeFloor                    // Left the canvas at the bottom
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeWall:
		return "wall"
	case OutcomeCeiling:
		return "ceiling"
	case OutcomeFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the game unless a shield absorbs it.
func (o Outcome) Fatal() bool {
	return o == OutcomeWall || o == OutcomeCeiling || o == OutcomeFloor
}

// CheckCollisions classifies the character against the canvas bounds and the
// active wall band. Pure function of its inputs; the state machine is
// responsible for acting on the result exactly once per generated wall.
//
// Order matters and first match wins:
//
//  1. Ceiling and floor are absolute and independent of wall state.
//  2. No active walls means the open scrolling phase between rounds.
//  3. Geometry is only evaluated once the character is horizontally
//     coincident with the band (all segments share one x per generation).
//  4. Solid segments take precedence over tunnels so a wall still blocks a
//     character straddling a tunnel edge.
//  5. A tunnel claims the character when its vertical center lies inside.
//  6. Horizontally gated but unmatched should not happen with a fully
//     partitioned band; classify conservatively as a wall hit.
func CheckCollisions(c *Character, p *Pool, canvasH float64) Outcome {
	half := c.Size / 2

	if c.Y-half <= 0 {
		return OutcomeCeiling
	}
	if c.Y+half >= canvasH {
		return OutcomeFloor
	}

	walls := p.ActiveWalls()
	if len(walls) == 0 {
		return OutcomeNone
	}

	band := walls[0]
	bounds := c.Bounds()
	if !bounds.SpansX(band.X, band.X+band.Width) {
		return OutcomeNone
	}

	for _, w := range walls {
		if bounds.Overlaps(w.Bounds()) {
			return OutcomeWall
		}
	}

	for _, t := range p.ActiveTunnels() {
		if c.Y >= t.Y && c.Y <= t.Y+t.Height {
			if t.IsCorrect {
				return OutcomeCorrect
			}
			return OutcomeIncorrect
		}
	}

	return OutcomeWall
}
