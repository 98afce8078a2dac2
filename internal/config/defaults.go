package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in cat runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: Playfield{
			Width:        800,
			Height:       240,
			GroundOffset: 40,
			SpawnOffset:  20,
			PruneMargin:  20,
		},
		Player: Player{
			X:      80,
			Width:  40,
			Height: 40,
		},
		Physics: Physics{
			Gravity:          0.9,
			JumpForce:        15,
			ReferenceFrameMs: 16.67,
		},
		Spawner: Spawner{
			MinIntervalMs: 700,
			MaxIntervalMs: 1300,
		},
		Scoring: Scoring{
			RatePerMs: 0.02,
		},
		Difficulty: Difficulty{
			Enabled:    true,
			BaseSpeed:  6,
			MaxSpeed:   16,
			AccelPerMs: 0.0005,
		},
		Storage: Storage{
			BestScoreKey: "catRunnerHighScore",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
