package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/survivors-oath/internal/platform/tui"
	"github.com/vovakirdan/survivors-oath/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display recent runs, newest first, with totals.

The interactive table is used on a terminal; --plain (or a pipe) prints text.

Examples:
  oath runs
  oath runs --limit 10
  oath runs --plain > runs.txt`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", tui.DefaultRunLimit, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunBoard(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printRuns(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'oath play' to start your first run!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-7s  %-5s  %-9s  %-5s  %s\n", "#", "Outcome", "Clues", "Survived", "Rival", "When")
	fmt.Printf("  %-5s  %-7s  %-5s  %-9s  %-5s  %s\n", "-", "-------", "-----", "--------", "-----", "----")

	for _, r := range runs {
		rival := "-"
		if r.RivalSlain {
			rival = "slain"
		}
		fmt.Printf("  %-5d  %-7s  %-5d  %-9s  %-5s  %s\n",
			r.ID, r.Outcome(), r.Clues, r.Survived.Round(time.Second), rival,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}

	fmt.Println()
	fmt.Println(tui.SummaryLine(stats, now))
	return nil
}
