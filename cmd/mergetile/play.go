package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mergetile/internal/config"
	"github.com/vovakirdan/mergetile/internal/core"
	"github.com/vovakirdan/mergetile/internal/games/merge"
	"github.com/vovakirdan/mergetile/internal/platform/tui"
	"github.com/vovakirdan/mergetile/internal/registry"
	"github.com/vovakirdan/mergetile/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a game. Without flags an interactive setup menu picks the
difficulty; flags skip the menu.

Controls:
  WASD/Arrows     - Move cursor
  Space/Enter     - Select tile / commit swap
  H               - Hint
  B/Esc           - Clear selection
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit (progress is saved)

Difficulty presets:
  easy   - 9x9 board, tiles 2..8
  normal - 8x8 board, tiles 2..16
  hard   - 7x7 board, tiles 2..32
  fixed  - Use the config file values as-is

Examples:
  mergetile play
  mergetile play --difficulty easy
  mergetile play --size 6
  mergetile play --resume
  mergetile play --config ./my-mergetile.yaml --difficulty fixed`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (3-16)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the last saved game")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	gameCfg, err := config.LoadMerge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the setup menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	interactive := flagDifficulty == "" && flagSize == 0 && !flagResume
	if interactive {
		if !runSetupLoop(store, gameCfg, cfg) {
			return
		}
	} else {
		config.ApplyMergePreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
		if flagSize > 0 {
			gameCfg.Board.Size = flagSize
		}
		gameCfg.Normalize()
		merge.Configure(gameCfg.Board.Size, gameCfg.Spawn.MinExponent, gameCfg.Spawn.MaxExponent, gameCfg.Animation.BeatTicks)
	}

	if flagResume {
		if !queueResume(store) {
			fmt.Fprintln(os.Stderr, "No saved game to resume; starting fresh.")
		}
	}

	// Create game instance
	game, err := registry.Create("mergetile")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runSetupLoop shows the setup menu (with scoreboard access) until the user
// picks a difficulty or quits. Returns false if the user quit.
func runSetupLoop(store *storage.Store, gameCfg config.MergeConfig, cfg core.RuntimeConfig) bool {
	for {
		result, err := tui.RunSetupMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, "mergetile", "Merge Tile", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return false
		}

		if result.Quit || result.Selection == nil {
			return false
		}

		resolved := tui.ResolveSetup(gameCfg, *result.Selection)
		merge.Configure(resolved.Board.Size, resolved.Spawn.MinExponent, resolved.Spawn.MaxExponent, resolved.Animation.BeatTicks)
		return true
	}
}

// queueResume loads the latest save and queues it for the next Reset.
func queueResume(store *storage.Store) bool {
	if store == nil {
		return false
	}
	save, err := store.LatestSave("mergetile")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load saved game: %v\n", err)
		return false
	}
	if save == nil {
		return false
	}
	merge.Restore(save.Size, save.Board, save.Score, save.Moves)
	return true
}
