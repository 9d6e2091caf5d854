// mergetile is a terminal tile-matching puzzle: swap adjacent tiles to line
// up three or more equal values, merge them into bigger tiles and chain
// cascades for points.
//
// Usage:
//
//	mergetile play            - Play the puzzle
//	mergetile list            - List registered games
//	mergetile scores          - Show high scores
//	mergetile serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.mergetile/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/mergetile/internal/games/merge"
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
	Use:   "mergetile",
	Short: "Merge Tile - a match-and-merge puzzle in your terminal",
	Long: `Merge Tile is a terminal puzzle game. Swap adjacent tiles to line up
three or more equal values; matched tiles merge into a single bigger tile
and new tiles fall in, chaining cascades for points.

Available commands:
  play     - Play the puzzle
  list     - Show registered games
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  mergetile play
  mergetile play --difficulty hard
  mergetile play --size 6 --seed 42
  mergetile play --resume
  mergetile serve --ssh :2222
  mergetile scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mergetile/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
