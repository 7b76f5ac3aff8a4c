package sprint

import (
	"context"

	"github.com/APorkolab/SprintSolve/internal/trivia"
)

// fetchResult carries a resolved question back into the tick loop.
// The sequence token lets the game discard results from cancelled fetches.
type fetchResult struct {
	seq      uint64
	question trivia.Question
}

// beginFetch starts an asynchronous question fetch for the current category.
// At most one fetch is in flight; a second request while one is outstanding
// is a no-op, which prevents overlapping fetches from racing the displayed
// geometry.
func (g *Game) beginFetch() {
	if g.fetchInFlight {
		return
	}
	g.fetchSeq++
	g.fetchInFlight = true

	ctx, cancel := context.WithCancel(context.Background())
	g.fetchCancel = cancel

	seq := g.fetchSeq
	provider := g.provider
	categoryID := g.categoryID
	ch := g.fetchCh

	go func() {
		q, err := provider.Fetch(ctx, categoryID)
		if err != nil {
			// Fetch failures degrade to a playable no-correct-answer round.
			q = trivia.Fallback()
		}
		select {
		case ch <- fetchResult{seq: seq, question: q}:
		case <-ctx.Done():
		}
	}()
}

// pollFetch drains at most one fetch result without blocking. Stale results
// (sequence mismatch after a restart or category change) are dropped.
func (g *Game) pollFetch() (trivia.Question, bool) {
	select {
	case r := <-g.fetchCh:
		if r.seq != g.fetchSeq {
			return trivia.Question{}, false
		}
		g.fetchInFlight = false
		return r.question, true
	default:
		return trivia.Question{}, false
	}
}

// cancelFetch invalidates any outstanding fetch. Its result, if it ever
// arrives, fails the sequence check and is ignored.
func (g *Game) cancelFetch() {
	if g.fetchCancel != nil {
		g.fetchCancel()
		g.fetchCancel = nil
	}
	g.fetchSeq++
	g.fetchInFlight = false
}
