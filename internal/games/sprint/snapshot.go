package sprint

import "github.com/APorkolab/SprintSolve/internal/trivia"

// Snapshot is a read-only view of the session used by the platform layer
// (score persistence, status lines) without reaching into game internals.
type Snapshot struct {
	Phase      Phase
	CategoryID int
	Score      int
	Lives      int
	Shield     bool
	Speed      float64
	Question   trivia.Question
	Awaiting   bool
	Message    string
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.phase,
		CategoryID: g.categoryID,
		Score:      g.score,
		Lives:      g.lives,
		Shield:     g.hasShield,
		Speed:      g.effectiveSpeed(),
		Question:   g.question,
		Awaiting:   g.awaitingQuestion,
		Message:    g.message,
	}
}
