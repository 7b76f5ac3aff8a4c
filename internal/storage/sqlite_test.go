package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/APorkolab/SprintSolve/internal/trivia"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(1, score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different category
	if _, err := store.SaveScore(2, 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(1, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	other, err := store.TopScores(2, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for category 2, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(1, (i+1)*100)
	}

	scores, err := store.TopScores(1, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty category reports zero
	high, err := store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty category, got %d", high)
	}

	store.SaveScore(1, 42)
	store.SaveScore(1, 7)

	high, err = store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(1, 10)
	store.SaveScore(1, 30)

	stats, err := store.Stats(1)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
}

func TestQuestionBankSeedAndFetch(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	pack := trivia.DefaultPack()
	if err := store.SeedIfEmpty(ctx, pack); err != nil {
		t.Fatalf("SeedIfEmpty() failed: %v", err)
	}

	// Seeding twice must not duplicate
	if err := store.SeedIfEmpty(ctx, pack); err != nil {
		t.Fatalf("second SeedIfEmpty() failed: %v", err)
	}
	count, err := store.QuestionCount(ctx, pack.Categories[0].ID)
	if err != nil {
		t.Fatalf("QuestionCount() failed: %v", err)
	}
	if count != len(pack.Categories[0].Questions) {
		t.Errorf("QuestionCount = %d, expected %d", count, len(pack.Categories[0].Questions))
	}

	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}
	if len(cats) != len(pack.Categories) {
		t.Errorf("Categories = %d, expected %d", len(cats), len(pack.Categories))
	}

	q, err := store.Fetch(ctx, pack.Categories[0].ID)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if !q.Valid() || !q.HasCorrectAnswer() {
		t.Errorf("fetched question invalid: %+v", q)
	}
	if !q.Display {
		t.Error("fetched question should be marked for display")
	}
}

func TestQuestionBankUnknownCategory(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SeedIfEmpty(ctx, trivia.DefaultPack()); err != nil {
		t.Fatalf("SeedIfEmpty() failed: %v", err)
	}

	_, err := store.Fetch(ctx, 9999)
	if !errors.Is(err, trivia.ErrUnknownCategory) {
		t.Errorf("Fetch unknown category error = %v, expected ErrUnknownCategory", err)
	}
}

func TestImportPackReturnsCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	pack := trivia.Pack{
		Name: "tiny",
		Categories: []trivia.PackCategory{
			{
				ID:   7,
				Name: "Tiny",
				Questions: []trivia.PackQuestion{
					{Text: "q1", Answers: []string{"a", "b"}, Correct: 0},
					{Text: "q2", Answers: []string{"a", "b", "c"}, Correct: 2},
				},
			},
		},
	}

	n, err := store.ImportPack(ctx, pack)
	if err != nil {
		t.Fatalf("ImportPack() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ImportPack imported %d, expected 2", n)
	}
}
