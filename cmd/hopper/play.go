package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/games/hopper"
	"github.com/vovakirdan/hopper/internal/platform/tui"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: hopper).

Controls:
  W/Up       - Hop forward
  S/Down     - Hop back
  A/Left     - Hop left
  D/Right    - Hop right
  P          - Pause
  Space/R    - Restart (after death)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer roads, slower and shorter convoys
  normal - Configuration as loaded
  hard   - Roads from the first lane, faster traffic, less slack behind
  fixed  - Road odds and traffic speed never ramp

Examples:
  hopper play
  hopper play hopper_endless
  hopper play --difficulty hard
  hopper play --seed 42 --physics-rate 100
  hopper play --config ./my-hopper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() {
	hopper.SetConfigPath(flagConfig)
	hopper.SetDifficultyPreset(flagDifficulty)
}

// openStore opens the scores database, returning nil when it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "hopper"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hopper list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened
	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(terminalSize()), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
