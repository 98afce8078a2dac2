package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-runner/internal/platform/tui"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best score and the top 10 runs.

In a terminal the history opens as a scrollable table; with --plain, or
when output is redirected, it is printed as text. --clear deletes the run
history; the best score is kept.

Examples:
  catrunner scores
  catrunner scores --plain
  catrunner scores --clear
  catrunner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of opening the table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded run history")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("error opening scores database", "error", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(tui.GameID); err != nil {
			logger.Fatal("error clearing run history", "error", err)
		}
		logger.Info("Run history cleared", "db", flagDBPath)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, cfg.Storage.BestScoreKey, width, height); err != nil {
			logger.Error("error running scoreboard", "error", err)
		}
		return
	}

	best, err := store.LoadBest(cfg.Storage.BestScoreKey)
	if err != nil {
		logger.Fatal("error reading best score", "error", err)
	}

	scores, err := store.TopScores(tui.GameID, 10)
	if err != nil {
		logger.Fatal("error retrieving scores", "error", err)
	}

	fmt.Println("High Scores - Cat Runner")
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catrunner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
}
