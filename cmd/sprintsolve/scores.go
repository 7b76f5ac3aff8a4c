package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/APorkolab/SprintSolve/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [category-id]",
	Short: "Show high scores",
	Long: `Display high scores, either a summary across all categories or the
top 10 runs for one category.

Examples:
  sprintsolve scores
  sprintsolve scores 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		id, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid category ID %q\n", args[0])
			os.Exit(1)
		}
		showCategoryScores(store, id)
		return
	}
	showSummary(store)
}

// showCategoryScores prints the top 10 runs for one category.
func showCategoryScores(store *storage.Store, categoryID int) {
	name := categoryName(store, categoryID)

	scores, err := store.TopScores(categoryID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n\n", name)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sprintsolve play --category %d' to set the first one!\n", categoryID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// showSummary prints aggregate stats for every category.
func showSummary(store *storage.Store) {
	cats, err := store.Categories(context.Background())
	if err != nil || len(cats) == 0 {
		fmt.Println("No categories in the database yet.")
		fmt.Println("Run 'sprintsolve play' once, or 'sprintsolve questions import <pack>'.")
		return
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-4s  %-24s  %-6s  %-6s  %s\n", "ID", "Category", "Best", "Games", "Average")
	fmt.Printf("  %-4s  %-24s  %-6s  %-6s  %s\n", "--", "--------", "----", "-----", "-------")

	for _, cat := range cats {
		stats, statErr := store.Stats(cat.ID)
		if statErr != nil {
			continue
		}
		fmt.Printf("  %-4d  %-24s  %-6d  %-6d  %.1f\n",
			cat.ID, cat.Name, stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// categoryName resolves a category's display name, falling back to the ID.
func categoryName(store *storage.Store, categoryID int) string {
	cats, err := store.Categories(context.Background())
	if err == nil {
		for _, c := range cats {
			if c.ID == categoryID {
				return c.Name
			}
		}
	}
	return fmt.Sprintf("category %d", categoryID)
}
