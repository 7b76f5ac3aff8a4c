package sprint

import (
	"strings"
	"testing"

	"github.com/APorkolab/SprintSolve/internal/core"
)

func TestRenderGameOverOverlay(t *testing.T) {
	g := newPlayingGame(t)
	g.score = 5
	g.endGame()

	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("game-over overlay missing from rendered screen")
	}
	if !strings.Contains(out, "Score: 5") {
		t.Errorf("final score missing from rendered screen")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newPlayingGame(t)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Errorf("paused overlay missing from rendered screen")
	}
}

func TestRenderPlayingShowsQuestionAndHUD(t *testing.T) {
	g := newPlayingGame(t)

	s := core.NewScreen(120, 40)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, g.question.Text) {
		t.Errorf("question text missing from rendered screen")
	}
	if !strings.Contains(out, "Lives: 3") {
		t.Errorf("HUD missing from rendered screen")
	}
}
