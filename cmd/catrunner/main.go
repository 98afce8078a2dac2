// catrunner is a side-scrolling runner for the terminal: a cat dodges
// obstacles by jumping while the world speeds up.
//
// Usage:
//
//	catrunner play           - Play in this terminal
//	catrunner scores         - Show the best score and run history
//	catrunner serve          - Start SSH server for remote play
//	catrunner simulate       - Run a headless game driven by a bot
//	catrunner config init    - Write the default config file
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacles
//	--db <path>     - Set database path (default: ~/.catrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catrunner",
	Short: "Cat Runner - help the kitty dodge obstacles in your terminal",
	Long: `Cat Runner is an endless runner: the cat jumps over obstacles that
scroll in from the right, faster and faster, until it hits one.

Available commands:
  play      - Play in this terminal
  scores    - View the best score and run history
  serve     - Start SSH server for remote play
  simulate  - Headless run driven by an auto-jump bot
  config    - Write a starting config file

Examples:
  catrunner play
  catrunner play --config ./runner.toml
  catrunner scores --plain
  catrunner serve --ssh :2222
  catrunner simulate --duration 60 --seed 7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catrunner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a runner config (.yaml, .yml or .toml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the command-line logger.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catrunner",
	})
}

// loadConfig loads the runner config named by --config, falling back to the
// search path and the embedded defaults.
func loadConfig(logger *log.Logger) config.RunnerConfig {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "path", flagConfig, "error", err)
	}
	return cfg
}
