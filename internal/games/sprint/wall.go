package sprint

import (
	"errors"

	"github.com/APorkolab/SprintSolve/internal/core"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

var (
	// ErrLayout is returned when the requested tunnels do not fit the
	// canvas vertically. Non-fatal: the caller skips or retries the round.
	ErrLayout = errors.New("sprint: tunnels do not fit canvas height")

	// ErrBadQuestion is returned for questions outside the 1..4 answer range.
	ErrBadQuestion = errors.New("sprint: question has no usable answers")
)

// GenerateWall translates one question into wall-band geometry.
//
// n = min(4, len(answers)) tunnels of tunnelHeight alternate with n+1 equal
// solid segments stacked top to bottom; everything starts at x = canvasW so
// it scrolls into view. Tunnel i carries answers[i]; IsCorrect is set iff
// i equals the question's correct-answer index, so a fallback question
// (CorrectAnswer = -1) produces a wall where no tunnel is correct.
//
// On layout failure the pool is left untouched; on success any leftover
// geometry from the previous round is cleared before repopulating.
func GenerateWall(p *Pool, canvasW, canvasH float64, q trivia.Question, tunnelHeight, wallWidth float64) error {
	if !q.Valid() {
		return ErrBadQuestion
	}
	// NoCorrectAnswer is legitimate (fallback rounds); any other
	// out-of-range index is a corrupt question.
	if q.CorrectAnswer != trivia.NoCorrectAnswer && !q.HasCorrectAnswer() {
		return ErrBadQuestion
	}

	n := core.Min(trivia.MaxAnswers, len(q.Answers))
	if float64(n)*tunnelHeight > canvasH {
		return ErrLayout
	}

	p.Clear()

	segmentHeight := (canvasH - float64(n)*tunnelHeight) / float64(n+1)

	y := 0.0
	for i := 0; i < n; i++ {
		p.CreateWallSegment(canvasW, y, wallWidth, segmentHeight)
		y += segmentHeight
		p.CreateTunnel(canvasW, y, wallWidth, tunnelHeight, i == q.CorrectAnswer, q.Answers[i])
		y += tunnelHeight
	}
	// Closing segment reaches the canvas bottom exactly
	p.CreateWallSegment(canvasW, y, wallWidth, canvasH-y)

	return nil
}
