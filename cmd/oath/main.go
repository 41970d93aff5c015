// oath is a real-time survival game for the terminal: gather, craft, find
// the clues and outlast the rival before the night takes you.
//
// Usage:
//
//	oath play                - Play in this terminal
//	oath serve               - Start SSH server for remote play
//	oath runs                - Show run history
//	oath config              - Print the effective tuning config
//
// Global flags:
//
//	--config <path> - Tuning config YAML (default: search ~/.oath/configs, ./configs)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible island layouts
//	--db <path>     - Set database path (default: ~/.oath/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
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
	Use:   "oath",
	Short: "Survivor's Oath - survive the island in your terminal",
	Long: `Survivor's Oath is a real-time survival game played in the terminal.
Keep fed and watered, craft a spear, find the clues and outlast the rival.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  runs     - View run history
  config   - Print the effective tuning config

Examples:
  oath play
  oath play --seed 42
  oath serve --ssh :2222
  oath runs --limit 10`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oath/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
