package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/config"
)

var (
	flagConfigOutput string
	flagConfigForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the runner config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default runner config to a file",
	Long: `Write the built-in defaults as a YAML file to start tuning from.

Without --output the file goes to ~/.catrunner/configs/runner.yaml, which
'catrunner play' picks up automatically. An existing file is kept unless
--force is given.

Examples:
  catrunner config init
  catrunner config init --output ./runner.yaml
  catrunner config init --force`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVarP(&flagConfigOutput, "output", "o", "", "Destination file (default ~/.catrunner/configs/runner.yaml)")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	logger := newLogger()

	path, err := config.WriteDefault(flagConfigOutput, flagConfigForce)
	if err != nil {
		logger.Fatal("error writing config", "error", err)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}
