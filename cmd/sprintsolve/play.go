package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/APorkolab/SprintSolve/internal/core"
	"github.com/APorkolab/SprintSolve/internal/games/sprint"
	"github.com/APorkolab/SprintSolve/internal/platform/tui"
	"github.com/APorkolab/SprintSolve/internal/registry"
	"github.com/APorkolab/SprintSolve/internal/storage"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCategory   int
	flagOffline    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play SprintSolve",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap upward (also mouse click)
  Enter      - Confirm menu selection
  P          - Pause
  R          - Restart (after game over)
  H          - High scores (from menus and game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  sprintsolve play
  sprintsolve play --category 2
  sprintsolve play --difficulty hard
  sprintsolve play --config ./my-sprint.yaml
  sprintsolve play --offline`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagCategory, "category", 0, "Skip menus and start in this category ID")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the embedded question pack, skip the database")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sprint.SetConfigPath(flagConfig)
	sprint.SetDifficultyPreset(flagDifficulty)
	sprint.SetStartCategory(flagCategory)

	// Question source: the database when available, otherwise the embedded
	// pack (which the game also falls back to on its own).
	var store *storage.Store
	cats := packCategories()
	if !flagOffline {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		} else {
			ctx := context.Background()
			if seedErr := store.SeedIfEmpty(ctx, trivia.DefaultPack()); seedErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not seed questions: %v\n", seedErr)
			}
			sprint.SetProvider(store)

			cached := trivia.NewCachedCategories(store, 5*time.Minute)
			if dbCats, catErr := cached.Categories(ctx); catErr == nil && len(dbCats) > 0 {
				cats = dbCats
			}
		}
	}
	sprint.SetCategories(cats)

	game, err := registry.Create("sprint")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, cats, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// packCategories lists the embedded pack's categories.
func packCategories() []trivia.Category {
	pack := trivia.DefaultPack()
	cats := make([]trivia.Category, 0, len(pack.Categories))
	for _, c := range pack.Categories {
		cats = append(cats, trivia.Category{ID: c.ID, Name: c.Name})
	}
	return cats
}
