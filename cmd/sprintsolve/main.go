// sprintsolve is a terminal trivia runner: fly through the tunnel carrying
// the right answer, dodge the walls, climb the leaderboard.
//
// Usage:
//
//	sprintsolve play                 - Play in the terminal
//	sprintsolve serve                - Start SSH server for remote play
//	sprintsolve scores [category]    - Show high scores
//	sprintsolve categories           - List trivia categories
//	sprintsolve questions import     - Import a question pack
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sprintsolve/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/APorkolab/SprintSolve/internal/games/sprint"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sprintsolve",
	Short: "SprintSolve - arcade trivia in your terminal",
	Long: `SprintSolve is a terminal trivia game. Your character flies through
scrolling walls; each wall has one tunnel per candidate answer, and only the
tunnel with the correct answer is safe to pass.

Available commands:
  play       - Play in the terminal
  serve      - Start SSH server for remote play
  scores     - View high scores per category
  categories - List trivia categories
  questions  - Manage the question database

Examples:
  sprintsolve play
  sprintsolve play --category 2 --difficulty hard
  sprintsolve serve --ssh :2222
  sprintsolve scores 1`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sprintsolve/scores.db", "Path to the database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(questionsCmd)
}
