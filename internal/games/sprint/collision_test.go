package sprint

import (
	"testing"

	"github.com/APorkolab/SprintSolve/internal/trivia"
)

// wallAt regenerates the standard 800x800 four-answer band and scrolls it
// so its left edge sits at x.
func wallAt(t *testing.T, x float64) *Pool {
	t.Helper()
	p := NewPool()
	if err := GenerateWall(p, 800, 800, fourAnswerQuestion(), 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}
	p.Update(800 - x)
	return p
}

func TestCheckCollisionsBounds(t *testing.T) {
	p := NewPool() // no walls: bounds still apply

	tests := []struct {
		name string
		y    float64
		want Outcome
	}{
		{"ceiling touch", 20, OutcomeCeiling},
		{"above ceiling", -5, OutcomeCeiling},
		{"floor touch", 780, OutcomeFloor},
		{"below floor", 900, OutcomeFloor},
		{"mid air", 400, OutcomeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Character{X: 120, Y: tt.y, Size: 40}
			if got := CheckCollisions(c, p, 800); got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckCollisionsHorizontalGating(t *testing.T) {
	// Band far to the right of the character: geometry must be ignored
	// even when the character's height lines up with a solid segment.
	p := wallAt(t, 600)
	c := &Character{X: 120, Y: 30, Size: 40} // inside the top segment's rows
	c.Y = 40                                 // clear of the ceiling, within segment 0 (0..64)

	if got := CheckCollisions(c, p, 800); got != OutcomeNone {
		t.Errorf("outcome = %v, want none while band is out of reach", got)
	}
}

func TestCheckCollisionsEdgeTouchCollides(t *testing.T) {
	// Character right edge exactly at the band's left edge counts as contact.
	// Size 40 centered on x=120 puts the right edge at 140.
	p := wallAt(t, 140)
	c := &Character{X: 120, Y: 30, Size: 40}
	c.Y = 40 // inside segment 0

	if got := CheckCollisions(c, p, 800); got != OutcomeWall {
		t.Errorf("outcome = %v, want wall on exact edge touch", got)
	}
}

func TestCheckCollisionsTunnels(t *testing.T) {
	// Band overlapping the character; tunnel 1 (y 248..368) is correct.
	p := wallAt(t, 100)

	tests := []struct {
		name string
		y    float64
		want Outcome
	}{
		{"first tunnel wrong", 124, OutcomeIncorrect},
		{"second tunnel correct", 308, OutcomeCorrect},
		{"third tunnel wrong", 492, OutcomeIncorrect},
		{"solid segment", 210, OutcomeWall},
		// Center exactly on a tunnel edge: the box touches the adjacent
		// segment and the solid hit takes precedence.
		{"second tunnel top edge grazes segment", 248, OutcomeWall},
		{"second tunnel bottom edge grazes segment", 368, OutcomeWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Character{X: 120, Y: tt.y, Size: 40}
			if got := CheckCollisions(c, p, 800); got != tt.want {
				t.Errorf("y=%v: outcome = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestCheckCollisionsWallBeatsTunnelStraddle(t *testing.T) {
	// Center inside tunnel 0 (64..184) but the box overlaps the segment
	// above it: the solid hit wins.
	p := wallAt(t, 100)
	c := &Character{X: 120, Y: 70, Size: 40} // box 50..90 overlaps segment 0 (0..64)

	if got := CheckCollisions(c, p, 800); got != OutcomeWall {
		t.Errorf("outcome = %v, want wall when straddling a tunnel edge", got)
	}
}

func TestCheckCollisionsFloorBeatsWall(t *testing.T) {
	// Character at the floor while inside the band: bounds outrank geometry.
	p := wallAt(t, 100)
	c := &Character{X: 120, Y: 790, Size: 40}

	if got := CheckCollisions(c, p, 800); got != OutcomeFloor {
		t.Errorf("outcome = %v, want floor over wall", got)
	}
}

func TestCheckCollisionsFallbackQuestionNeverCorrect(t *testing.T) {
	p := NewPool()
	if err := GenerateWall(p, 800, 800, trivia.Fallback(), 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}
	p.Update(700)

	for _, y := range []float64{124, 308, 492, 676} {
		c := &Character{X: 120, Y: y, Size: 40}
		if got := CheckCollisions(c, p, 800); got != OutcomeIncorrect {
			t.Errorf("y=%v: outcome = %v, want incorrect on fallback wall", y, got)
		}
	}
}

func TestOutcomeFatal(t *testing.T) {
	fatal := map[Outcome]bool{
		OutcomeNone:      false,
		OutcomeCorrect:   false,
		OutcomeIncorrect: false,
		OutcomeWall:      true,
		OutcomeCeiling:   true,
		OutcomeFloor:     true,
	}
	for o, want := range fatal {
		if o.Fatal() != want {
			t.Errorf("%v.Fatal() = %v, want %v", o, o.Fatal(), want)
		}
	}
}
