package trivia

import (
	"context"
	"math/rand"
	"sort"
	"sync"
)

// Provider supplies trivia questions for a category. Implementations may be
// backed by an in-memory pack, a local question bank, or a remote service.
// Fetch must be safe for concurrent use; the game calls it from a goroutine
// while the tick loop keeps running.
type Provider interface {
	Fetch(ctx context.Context, categoryID int) (Question, error)
}

// CategorySource lists the categories a provider can serve.
type CategorySource interface {
	Categories(ctx context.Context) ([]Category, error)
}

// StaticProvider serves questions from an in-memory pack, picking randomly
// within a category. Useful for tests and offline demos.
type StaticProvider struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	questions map[int][]Question
	names     map[int]string
}

// NewStaticProvider creates a provider over the given pack.
func NewStaticProvider(pack Pack, seed int64) *StaticProvider {
	p := &StaticProvider{
		rnd:       rand.New(rand.NewSource(seed)),
		questions: make(map[int][]Question),
		names:     make(map[int]string),
	}
	for _, c := range pack.Categories {
		p.names[c.ID] = c.Name
		qs := make([]Question, 0, len(c.Questions))
		for _, pq := range c.Questions {
			qs = append(qs, pq.toQuestion())
		}
		p.questions[c.ID] = qs
	}
	return p
}

// Fetch returns a random question from the category.
func (p *StaticProvider) Fetch(_ context.Context, categoryID int) (Question, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	qs, ok := p.questions[categoryID]
	if !ok {
		return Question{}, ErrUnknownCategory
	}
	if len(qs) == 0 {
		return Question{}, ErrNoQuestions
	}
	q := qs[p.rnd.Intn(len(qs))]
	q.Display = true
	return q, nil
}

// Categories lists the pack's categories sorted by ID.
func (p *StaticProvider) Categories(_ context.Context) ([]Category, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cats := make([]Category, 0, len(p.names))
	for id, name := range p.names {
		cats = append(cats, Category{ID: id, Name: name})
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].ID < cats[j].ID
	})
	return cats, nil
}
