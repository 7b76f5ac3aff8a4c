// Package trivia defines the trivia question domain: the question model,
// the provider abstraction the game fetches from, and question packs.
package trivia

import "errors"

// NoCorrectAnswer marks a question without a correct answer index.
// Fallback questions produced on fetch failure use it; the game then treats
// every tunnel as incorrect instead of crashing.
const NoCorrectAnswer = -1

// MaxAnswers is the largest number of answer tunnels a wall band can hold.
const MaxAnswers = 4

var (
	// ErrUnknownCategory is returned when a category ID has no questions.
	ErrUnknownCategory = errors.New("trivia: unknown category")
	// ErrNoQuestions is returned when a category exists but is empty.
	ErrNoQuestions = errors.New("trivia: no questions available")
)

// Question is a single trivia question as consumed by the game.
// Answers is ordered; the order defines the tunnel index on the wall band.
type Question struct {
	Text          string
	Answers       []string
	CorrectAnswer int  // Index into Answers, or NoCorrectAnswer
	Display       bool // Whether the question is currently active/visible
}

// HasCorrectAnswer reports whether CorrectAnswer is a valid index.
func (q Question) HasCorrectAnswer() bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Answers)
}

// Valid reports whether the question can be turned into wall geometry.
func (q Question) Valid() bool {
	return len(q.Answers) >= 1 && len(q.Answers) <= MaxAnswers
}

// Fallback returns the degenerate question used when a fetch fails.
// No tunnel is correct, so the round stays playable but unwinnable.
func Fallback() Question {
	return Question{
		Text:          "Question unavailable - fly safe!",
		Answers:       []string{"?", "?", "?", "?"},
		CorrectAnswer: NoCorrectAnswer,
		Display:       true,
	}
}

// Category identifies a group of questions the player can pick from.
type Category struct {
	ID   int
	Name string
}
