package sprint

import (
	"errors"
	"testing"

	"github.com/APorkolab/SprintSolve/internal/trivia"
)

func fourAnswerQuestion() trivia.Question {
	return trivia.Question{
		Text:          "What is 2+2?",
		Answers:       []string{"3", "4", "5", "6"},
		CorrectAnswer: 1,
		Display:       true,
	}
}

func TestGenerateWallGeometry(t *testing.T) {
	p := NewPool()
	if err := GenerateWall(p, 800, 800, fourAnswerQuestion(), 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}

	walls := p.ActiveWalls()
	tunnels := p.ActiveTunnels()
	if len(walls) != 5 || len(tunnels) != 4 {
		t.Fatalf("got %d walls, %d tunnels; want 5 and 4", len(walls), len(tunnels))
	}

	// 4 tunnels of 120 leave 320 for 5 equal segments of 64
	wantWallY := []float64{0, 184, 368, 552, 736}
	for i, w := range walls {
		if w.X != 800 || w.Width != 80 {
			t.Errorf("wall %d at x=%v width=%v, want x=800 width=80", i, w.X, w.Width)
		}
		if w.Y != wantWallY[i] || w.Height != 64 {
			t.Errorf("wall %d: y=%v h=%v, want y=%v h=64", i, w.Y, w.Height, wantWallY[i])
		}
	}

	wantTunnelY := []float64{64, 248, 432, 616}
	for i, tn := range tunnels {
		if tn.Y != wantTunnelY[i] || tn.Height != 120 {
			t.Errorf("tunnel %d: y=%v h=%v, want y=%v h=120", i, tn.Y, tn.Height, wantTunnelY[i])
		}
	}

	// Band must tile the full canvas height with no gaps
	last := walls[len(walls)-1]
	if last.Y+last.Height != 800 {
		t.Errorf("closing segment ends at %v, want 800", last.Y+last.Height)
	}
}

func TestGenerateWallExactlyOneCorrect(t *testing.T) {
	p := NewPool()
	q := fourAnswerQuestion()
	if err := GenerateWall(p, 800, 800, q, 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}

	correct := 0
	for i, tn := range p.ActiveTunnels() {
		if tn.IsCorrect {
			correct++
			if i != q.CorrectAnswer {
				t.Errorf("tunnel %d marked correct, want index %d", i, q.CorrectAnswer)
			}
		}
		if tn.AnswerText != q.Answers[i] {
			t.Errorf("tunnel %d answer = %q, want %q", i, tn.AnswerText, q.Answers[i])
		}
	}
	if correct != 1 {
		t.Errorf("correct tunnels = %d, want exactly 1", correct)
	}
}

func TestGenerateWallFallbackHasNoCorrectTunnel(t *testing.T) {
	p := NewPool()
	if err := GenerateWall(p, 800, 800, trivia.Fallback(), 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}
	for i, tn := range p.ActiveTunnels() {
		if tn.IsCorrect {
			t.Errorf("fallback tunnel %d marked correct", i)
		}
	}
}

func TestGenerateWallTwoAnswers(t *testing.T) {
	p := NewPool()
	q := trivia.Question{Text: "?", Answers: []string{"yes", "no"}, CorrectAnswer: 0, Display: true}
	if err := GenerateWall(p, 800, 800, q, 120, 80); err != nil {
		t.Fatalf("GenerateWall: %v", err)
	}
	if len(p.ActiveWalls()) != 3 || len(p.ActiveTunnels()) != 2 {
		t.Errorf("got %d walls, %d tunnels; want 3 and 2", len(p.ActiveWalls()), len(p.ActiveTunnels()))
	}
}

func TestGenerateWallLayoutError(t *testing.T) {
	p := NewPool()
	if err := GenerateWall(p, 800, 800, fourAnswerQuestion(), 120, 80); err != nil {
		t.Fatalf("seed wall: %v", err)
	}
	before := len(p.ActiveWalls())

	// Four 250-high tunnels cannot fit an 800-high canvas
	err := GenerateWall(p, 800, 800, fourAnswerQuestion(), 250, 80)
	if !errors.Is(err, ErrLayout) {
		t.Fatalf("err = %v, want ErrLayout", err)
	}

	// Failure must leave the existing geometry untouched
	if len(p.ActiveWalls()) != before {
		t.Errorf("layout failure mutated the pool: %d walls, want %d", len(p.ActiveWalls()), before)
	}
}

func TestGenerateWallRejectsBadQuestions(t *testing.T) {
	tests := []struct {
		name string
		q    trivia.Question
	}{
		{"no answers", trivia.Question{Text: "?", CorrectAnswer: 0}},
		{"too many answers", trivia.Question{
			Text:          "?",
			Answers:       []string{"a", "b", "c", "d", "e"},
			CorrectAnswer: 0,
		}},
		{"correct out of range", trivia.Question{
			Text:          "?",
			Answers:       []string{"a", "b"},
			CorrectAnswer: 5,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool()
			if err := GenerateWall(p, 800, 800, tt.q, 120, 80); !errors.Is(err, ErrBadQuestion) {
				t.Errorf("err = %v, want ErrBadQuestion", err)
			}
		})
	}
}
