package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-runner/internal/platform/tui"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W  - Start a run, then jump
  Enter       - Start a run
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.catrunner/screenshots
  Q/Esc       - Quit

Examples:
  catrunner play
  catrunner play --seed 42
  catrunner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the best score lives in memory
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		FPS:    flagFPS,
		Store:  store,
		Logger: logger,
	}, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}
}
