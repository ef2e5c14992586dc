// runner is Shadow Runner, an endless side-scroller for the terminal.
//
// Usage:
//
//	runner play              - Play from the title screen
//	runner scores            - Show the top runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.tui-runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "runner",
	Short: "Shadow Runner - an endless runner in your terminal",
	Long: `Shadow Runner is a terminal side-scroller: jump over obstacles,
grab coins, and cut down the shadows chasing you.

Available commands:
  play     - Play from the title screen
  scores   - View the top runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner scores --limit 20
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-runner/scores.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
