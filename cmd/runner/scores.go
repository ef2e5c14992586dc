package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLimit int
	flagCSV   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the best runs recorded on this machine.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --csv > runs.csv`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Dump every recorded run as CSV to stdout")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagCSV {
		runs, csvErr := store.AllRuns()
		if csvErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", csvErr)
			os.Exit(1)
		}
		if exportErr := storage.ExportCSV(os.Stdout, runs); exportErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", exportErr)
			os.Exit(1)
		}
		return
	}

	// Get top runs
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Println("High Scores - Shadow Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	// Print runs
	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-10d  %-6d  %s\n", i+1, run.Player, run.Score, run.Coins, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
