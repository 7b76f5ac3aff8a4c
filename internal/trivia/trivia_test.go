package trivia

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultPackValid(t *testing.T) {
	p := DefaultPack()

	if len(p.Categories) == 0 {
		t.Fatal("default pack should have categories")
	}
	for _, c := range p.Categories {
		if c.Name == "" {
			t.Errorf("category %d has no name", c.ID)
		}
		if len(c.Questions) == 0 {
			t.Errorf("category %d has no questions", c.ID)
		}
	}
}

func TestParsePackRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no categories",
			yaml: "name: empty\ncategories: []\n",
		},
		{
			name: "correct index out of range",
			yaml: `
categories:
  - id: 1
    name: Bad
    questions:
      - text: q
        answers: ["a", "b"]
        correct: 5
`,
		},
		{
			name: "too many answers",
			yaml: `
categories:
  - id: 1
    name: Bad
    questions:
      - text: q
        answers: ["a", "b", "c", "d", "e"]
        correct: 0
`,
		},
		{
			name: "duplicate category id",
			yaml: `
categories:
  - id: 1
    name: A
    questions: []
  - id: 1
    name: B
    questions: []
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePack([]byte(tc.yaml)); err == nil {
				t.Error("ParsePack should reject invalid pack")
			}
		})
	}
}

func TestStaticProviderFetch(t *testing.T) {
	p := NewStaticProvider(DefaultPack(), 42)
	ctx := context.Background()

	q, err := p.Fetch(ctx, 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !q.Valid() {
		t.Errorf("fetched question invalid: %+v", q)
	}
	if !q.HasCorrectAnswer() {
		t.Errorf("pack questions must have a correct answer: %+v", q)
	}
	if !q.Display {
		t.Error("fetched question should be marked for display")
	}

	if _, err := p.Fetch(ctx, 999); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category should return ErrUnknownCategory, got %v", err)
	}
}

func TestStaticProviderCategoriesSorted(t *testing.T) {
	p := NewStaticProvider(DefaultPack(), 1)

	cats, err := p.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].ID >= cats[i].ID {
			t.Errorf("categories not sorted by ID: %v", cats)
		}
	}
}

func TestFallbackQuestion(t *testing.T) {
	q := Fallback()

	if q.HasCorrectAnswer() {
		t.Error("fallback question must have no correct answer")
	}
	if !q.Valid() {
		t.Error("fallback question must still produce a valid wall")
	}
}

type countingSource struct {
	calls int
	cats  []Category
}

func (s *countingSource) Categories(context.Context) ([]Category, error) {
	s.calls++
	return s.cats, nil
}

func TestCachedCategories(t *testing.T) {
	src := &countingSource{cats: []Category{{ID: 1, Name: "A"}}}
	cache := NewCachedCategories(src, time.Minute)

	now := time.Now()
	cache.clock = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		cats, err := cache.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}
		if len(cats) != 1 {
			t.Fatalf("expected 1 category, got %d", len(cats))
		}
	}
	if src.calls != 1 {
		t.Errorf("cache should hit source once, got %d calls", src.calls)
	}

	// Expire the cache
	now = now.Add(2 * time.Minute)
	if _, err := cache.Categories(ctx); err != nil {
		t.Fatalf("Categories after expiry: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("expired cache should reload, got %d calls", src.calls)
	}

	// Invalidate forces a reload too
	cache.Invalidate()
	if _, err := cache.Categories(ctx); err != nil {
		t.Fatalf("Categories after invalidate: %v", err)
	}
	if src.calls != 3 {
		t.Errorf("invalidated cache should reload, got %d calls", src.calls)
	}
}
