package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/runner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

var (
	flagDuration int
	flagIdle     bool
	flagNoSave   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by a bot",
	Long: `Play one run without a terminal. Frames are fed with synthetic
timestamps at --fps, and a bot jumps whenever an obstacle is about to reach
the cat. The run ends on a collision or after --duration seconds.

Runs with the same --seed, --fps and config always end the same way.

Examples:
  catrunner simulate
  catrunner simulate --duration 120 --fps 30 --seed 7
  catrunner simulate --idle --no-save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagDuration, "duration", 60, "Simulated seconds before stopping")
	simulateCmd.Flags().BoolVar(&flagIdle, "idle", false, "Never jump")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not touch the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %d", flagDuration)
	}

	logger := newLogger()
	cfg := loadConfig(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var best runner.BestScoreStore = &runner.MemoryBestStore{}
	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
		} else {
			defer store.Close()
			best = storage.NewBestScores(store, cfg.Storage.BestScoreKey, logger)
		}
	}

	bot := runner.AutoJumpBot
	if flagIdle {
		bot = runner.IdleBot
	}

	machine := runner.NewMachine(runner.NewWorld(cfg, seed), runner.NopPresenter{}, best)
	machine.Init()

	res := runner.Simulate(runner.NewDriver(machine), runner.SimOptions{
		FPS:      flagFPS,
		Duration: time.Duration(flagDuration) * time.Second,
		Bot:      bot,
	})

	outcome := "survived"
	if res.Collided {
		outcome = "collided"
	}

	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Outcome:  %s after %s (%d ticks)\n", outcome, res.Elapsed, res.Ticks)
	fmt.Printf("Score:    %d\n", res.Score)
	fmt.Printf("Best:     %d\n", res.Best)
	if res.NewBest {
		fmt.Println("New best score!")
	}
	return nil
}
