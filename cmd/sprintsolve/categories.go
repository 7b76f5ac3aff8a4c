package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/APorkolab/SprintSolve/internal/storage"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List trivia categories",
	Long: `List the trivia categories available for play, with question counts.

Reads from the database when present, otherwise from the embedded pack.

Examples:
  sprintsolve categories`,
	Run: runCategories,
}

func runCategories(_ *cobra.Command, _ []string) {
	fmt.Println("Categories")
	fmt.Println()
	fmt.Printf("  %-4s  %-24s  %s\n", "ID", "Name", "Questions")
	fmt.Printf("  %-4s  %-24s  %s\n", "--", "----", "---------")

	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
		ctx := context.Background()
		cats, catErr := store.Categories(ctx)
		if catErr == nil && len(cats) > 0 {
			for _, c := range cats {
				count, _ := store.QuestionCount(ctx, c.ID)
				fmt.Printf("  %-4d  %-24s  %d\n", c.ID, c.Name, count)
			}
			return
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	}

	// Embedded pack fallback
	for _, c := range trivia.DefaultPack().Categories {
		fmt.Printf("  %-4d  %-24s  %d\n", c.ID, c.Name, len(c.Questions))
	}
}
