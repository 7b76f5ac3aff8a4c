package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/APorkolab/SprintSolve/internal/storage"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage the question database",
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <pack.yaml>",
	Short: "Import a question pack into the database",
	Long: `Import questions from a YAML pack file. Existing categories with the
same IDs are updated; questions are appended.

Pack format:
  name: My Pack
  categories:
    - id: 10
      name: Movies
      questions:
        - text: "Who directed Jaws?"
          answers: ["Spielberg", "Lucas", "Scott", "Cameron"]
          correct: 0

Examples:
  sprintsolve questions import ./movies.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runQuestionsImport,
}

var questionsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the embedded starter pack into the database",
	Args:  cobra.NoArgs,
	Run:   runQuestionsSeed,
}

func init() {
	questionsCmd.AddCommand(questionsImportCmd)
	questionsCmd.AddCommand(questionsSeedCmd)
}

func runQuestionsImport(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading pack: %v\n", err)
		os.Exit(1)
	}

	pack, err := trivia.ParsePack(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing pack: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	count, err := store.ImportPack(context.Background(), pack)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing pack: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d questions from %q (%d categories).\n",
		count, pack.Name, len(pack.Categories))
}

func runQuestionsSeed(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	count, err := store.ImportPack(context.Background(), trivia.DefaultPack())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d questions from the embedded starter pack.\n", count)
}
