package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

var (
	flagLimit int
	flagCSV   bool
)

// historyLimit caps how many runs statistics and exports read.
const historyLimit = 100000

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the best runs for the specified mode (default: hopper),
followed by score statistics over every recorded run.

With --csv, the full run history of the mode is written to stdout as
CSV instead. Pass "all" as the mode to export every mode.

Examples:
  hopper scores
  hopper scores hopper_endless --limit 20
  hopper scores all --csv > runs.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write run history as CSV to stdout")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "hopper"
	if len(args) == 1 {
		gameID = args[0]
	}

	if gameID != "all" && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hopper list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagCSV {
		if err := exportRuns(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if gameID == "all" {
		fmt.Fprintln(os.Stderr, "Error: \"all\" is only supported with --csv")
		os.Exit(1)
	}

	printRuns(store, gameID)
}

// exportRuns writes the run history as CSV, newest first.
func exportRuns(store *storage.Store, gameID string) error {
	if gameID == "all" {
		gameID = ""
	}
	runs, err := store.RecentRuns(gameID, historyLimit)
	if err != nil {
		return err
	}
	return storage.WriteRunsCSV(os.Stdout, runs)
}

// printRuns prints the best runs and the score distribution of a mode.
func printRuns(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hopper play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-11s  %-5s  %-6s  %s\n", "Rank", "Score", "Cause", "Lanes", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-11s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-11s  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Cause, r.Lanes, fmt.Sprintf("%ds", r.Duration), dateStr)
	}

	// Statistics cover every recorded run, not just the ones shown
	all, err := store.RecentRuns(gameID, historyLimit)
	if err != nil {
		return
	}
	sum := storage.SummarizeRuns(all)
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Mean: %.1f  StdDev: %.1f  Median: %.0f  P90: %.0f\n",
		sum.Count, sum.Best, sum.Mean, sum.StdDev, sum.Median, sum.P90)
}
