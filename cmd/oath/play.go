package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/survivors-oath/internal/audio"
	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
	"github.com/vovakirdan/survivors-oath/internal/platform/tui"
	"github.com/vovakirdan/survivors-oath/internal/storage"
)

var (
	flagAssets  string
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a new session in this terminal.

Controls:
  WASD/Arrows  - Move (Shift: sprint)
  Mouse        - Aim
  E            - Gather, drink from a pond, inspect a clue
  1 / 2        - Eat / Drink from inventory
  F            - Craft spear (2 sticks)
  Space/Click  - Attack (with spear)
  Esc          - Pause
  H            - Help
  ` + "`" + ` / Ctrl+C   - Quit
  Ctrl+S       - Save a screenshot to ~/.oath/screenshots

Sound effects ring the terminal bell for every sound file found in --assets
(pickup_food, pickup_stick, drink, clue, craft, hit, kill).

Examples:
  oath play
  oath play --seed 42
  oath play --config ./my-oath.yaml --log ./oath.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sound assets")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug log to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Play on without history
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("run history disabled", "error", err)
	} else {
		defer store.Close()
	}

	var out *audio.Output
	if flagAssets != "" {
		out = audio.NewOutput(audio.LoadBank(flagAssets, logger), audio.BellDevice{W: os.Stdout})
	}

	logger.Info("session starting", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(cfg, rt, tui.Options{
		Store:  store,
		Logger: logger,
		Audio:  out,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLog returns a debug logger writing to path, or a discarding logger
// when path is empty. Bubble Tea owns the terminal, so logs never go there.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "oath",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
