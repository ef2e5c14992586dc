package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Shadow Runner",
	Long: `Start the game at the title screen.

Controls:
  Space/Up/W - Jump (twice for a double jump)
  X/Z        - Attack
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Back to title / quit

Difficulty options:
  easy   - Slower ramp, more coins
  normal - The intended balance
  hard   - Faster ramp, meaner spawns

Examples:
  runner play
  runner play --difficulty hard
  runner play --player ada
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with saved runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Validate difficulty before anything opens a screen
	difficulty := config.DifficultyNormal
	if flagDifficulty != "" {
		difficulty = config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(difficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Get terminal size
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

	runner.SetConfigPath(flagConfig)

	// Saved runs carry a player name; default to the OS user.
	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Title loop: title screen -> run -> back to title
	for {
		titleResult, titleErr := tui.RunTitle(store, cfg, difficulty)
		if titleErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", titleErr)
			break
		}

		// Carry size changes and the picked difficulty forward
		cfg = titleResult.Config
		difficulty = titleResult.Difficulty

		if titleResult.Quit {
			break
		}

		if titleResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to title
			}
			break // User quit from scoreboard
		}

		// Start a run
		runner.SetDifficultyPreset(difficulty)
		game := runner.New()

		if runErr := tui.Run(game, store, cfg, player); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}

		// Loop back to the title screen
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
