// Package storage provides SQLite-based persistence for scores and the
// local question bank. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/APorkolab/SprintSolve/internal/trivia"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID         int64
	CategoryID int
	Score      int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_category ON scores(category_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(category_id, score DESC);

		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			text TEXT NOT NULL,
			answers TEXT NOT NULL,
			correct INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given category.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(categoryID, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (category_id, score) VALUES (?, ?)",
		categoryID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given category,
// ordered by score descending.
func (s *Store) TopScores(categoryID, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, category_id, score, created_at
		 FROM scores
		 WHERE category_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		categoryID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.CategoryID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given category.
// Returns 0 if no scores exist.
func (s *Store) HighScore(categoryID int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE category_id = ?",
		categoryID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given category.
func (s *Store) ClearScores(categoryID int) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE category_id = ?", categoryID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// CategoryStats contains aggregated play statistics for a category.
type CategoryStats struct {
	CategoryID int
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a category.
func (s *Store) Stats(categoryID int) (*CategoryStats, error) {
	stats := &CategoryStats{CategoryID: categoryID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE category_id = ?`,
		categoryID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE category_id = ? ORDER BY created_at DESC LIMIT 1`,
		categoryID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp converts a scanned SQLite datetime into time.Time.
// The driver may hand back either a time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// --- Question bank -----------------------------------------------------

// Categories lists all categories that have questions, sorted by ID.
// Implements trivia.CategorySource.
func (s *Store) Categories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.name
		 FROM categories c
		 WHERE EXISTS (SELECT 1 FROM questions q WHERE q.category_id = c.id)
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query categories: %w", err)
	}
	defer rows.Close()

	var cats []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cats, nil
}

// Fetch returns a random question from the category.
// Implements trivia.Provider.
func (s *Store) Fetch(ctx context.Context, categoryID int) (trivia.Question, error) {
	var (
		text        string
		answersJSON string
		correct     int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT text, answers, correct
		 FROM questions
		 WHERE category_id = ?
		 ORDER BY RANDOM()
		 LIMIT 1`,
		categoryID,
	).Scan(&text, &answersJSON, &correct)

	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if checkErr := s.db.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM categories WHERE id = ?)", categoryID,
		).Scan(&exists); checkErr == nil && exists {
			return trivia.Question{}, trivia.ErrNoQuestions
		}
		return trivia.Question{}, trivia.ErrUnknownCategory
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("storage: cannot query question: %w", err)
	}

	var answers []string
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return trivia.Question{}, fmt.Errorf("storage: corrupt answers column: %w", err)
	}

	return trivia.Question{
		Text:          text,
		Answers:       answers,
		CorrectAnswer: correct,
		Display:       true,
	}, nil
}

// ImportPack loads a question pack into the bank, replacing category names
// and appending questions. Returns the number of imported questions.
func (s *Store) ImportPack(ctx context.Context, pack trivia.Pack) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	imported := 0
	for _, c := range pack.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)
			 ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
			c.ID, c.Name,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot upsert category %d: %w", c.ID, err)
		}

		for _, q := range c.Questions {
			answersJSON, err := json.Marshal(q.Answers)
			if err != nil {
				return 0, fmt.Errorf("storage: cannot encode answers: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO questions (category_id, text, answers, correct) VALUES (?, ?, ?, ?)",
				c.ID, q.Text, string(answersJSON), q.Correct,
			); err != nil {
				return 0, fmt.Errorf("storage: cannot insert question: %w", err)
			}
			imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return imported, nil
}

// SeedIfEmpty imports the pack only when the question bank holds no
// questions yet. Used to bootstrap fresh databases with the embedded pack.
func (s *Store) SeedIfEmpty(ctx context.Context, pack trivia.Pack) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return fmt.Errorf("storage: cannot count questions: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := s.ImportPack(ctx, pack)
	return err
}

// QuestionCount returns the number of questions in a category.
func (s *Store) QuestionCount(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM questions WHERE category_id = ?", categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count questions: %w", err)
	}
	return count, nil
}

// Ensure Store satisfies the trivia interfaces.
var (
	_ trivia.Provider       = (*Store)(nil)
	_ trivia.CategorySource = (*Store)(nil)
)
