// Package config provides YAML/TOML-based configuration loading for the
// cat runner and the speed ramp that drives difficulty.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// RunnerConfig contains all tunable parameters for the cat runner.
type RunnerConfig struct {
	Playfield  Playfield  `yaml:"playfield" toml:"playfield"`
	Player     Player     `yaml:"player" toml:"player"`
	Physics    Physics    `yaml:"physics" toml:"physics"`
	Spawner    Spawner    `yaml:"spawner" toml:"spawner"`
	Scoring    Scoring    `yaml:"scoring" toml:"scoring"`
	Difficulty Difficulty `yaml:"difficulty" toml:"difficulty"`
	Storage    Storage    `yaml:"storage" toml:"storage"`
}

// Playfield defines the logical world dimensions.
type Playfield struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	GroundOffset float64 `yaml:"ground_offset" toml:"ground_offset"` // Distance of the ground line from the bottom
	SpawnOffset  float64 `yaml:"spawn_offset" toml:"spawn_offset"`   // How far past the right edge obstacles appear
	PruneMargin  float64 `yaml:"prune_margin" toml:"prune_margin"`   // How far past the left edge obstacles are kept
}

// GroundY returns the vertical coordinate of the ground line.
func (p Playfield) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// Player defines the character box.
type Player struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Physics defines vertical motion parameters.
type Physics struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`       // Added to velocity every tick
	JumpForce        float64 `yaml:"jump_force" toml:"jump_force"` // Upward impulse; velocity becomes -JumpForce
	ReferenceFrameMs float64 `yaml:"reference_frame_ms" toml:"reference_frame_ms"`

	// ScaleVertical applies delta/ReferenceFrameMs to gravity and vertical
	// displacement as well. Off keeps per-tick vertical motion.
	ScaleVertical bool `yaml:"scale_vertical" toml:"scale_vertical"`
}

// Spawner defines the randomized obstacle interval.
type Spawner struct {
	MinIntervalMs float64 `yaml:"min_interval_ms" toml:"min_interval_ms"`
	MaxIntervalMs float64 `yaml:"max_interval_ms" toml:"max_interval_ms"`
}

// Scoring defines how survival time converts to points.
type Scoring struct {
	RatePerMs float64 `yaml:"rate_per_ms" toml:"rate_per_ms"`
}

// Difficulty defines the horizontal speed ramp.
type Difficulty struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	BaseSpeed  float64 `yaml:"base_speed" toml:"base_speed"`
	MaxSpeed   float64 `yaml:"max_speed" toml:"max_speed"`
	AccelPerMs float64 `yaml:"accel_per_ms" toml:"accel_per_ms"`
}

// Storage defines how the best score is keyed.
type Storage struct {
	BestScoreKey string `yaml:"best_score_key" toml:"best_score_key"`
}

// Validate checks that the configuration can drive a simulation.
func (c RunnerConfig) Validate() error {
	if name, ok := c.firstNonFinite(); !ok {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalid, name)
	}

	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalid)
	case c.Playfield.GroundOffset < 0 || c.Playfield.GroundOffset >= c.Playfield.Height:
		return fmt.Errorf("%w: ground_offset must be within playfield height", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalid)
	case c.Player.Height > c.Playfield.GroundY():
		return fmt.Errorf("%w: player taller than the space above ground", ErrInvalid)
	case c.Physics.Gravity <= 0 || c.Physics.JumpForce <= 0:
		return fmt.Errorf("%w: gravity and jump_force must be positive", ErrInvalid)
	case c.Physics.ReferenceFrameMs <= 0:
		return fmt.Errorf("%w: reference_frame_ms must be positive", ErrInvalid)
	case c.Spawner.MinIntervalMs <= 0 || c.Spawner.MaxIntervalMs < c.Spawner.MinIntervalMs:
		return fmt.Errorf("%w: spawner interval must satisfy 0 < min <= max", ErrInvalid)
	case c.Scoring.RatePerMs < 0:
		return fmt.Errorf("%w: rate_per_ms must not be negative", ErrInvalid)
	case c.Difficulty.BaseSpeed <= 0 || c.Difficulty.MaxSpeed < c.Difficulty.BaseSpeed:
		return fmt.Errorf("%w: speed must satisfy 0 < base_speed <= max_speed", ErrInvalid)
	case c.Difficulty.AccelPerMs < 0:
		return fmt.Errorf("%w: accel_per_ms must not be negative", ErrInvalid)
	case c.Storage.BestScoreKey == "":
		return fmt.Errorf("%w: best_score_key must be set", ErrInvalid)
	}
	return nil
}

// firstNonFinite reports the first float field holding NaN or an infinity.
func (c RunnerConfig) firstNonFinite() (string, bool) {
	fields := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"playfield.ground_offset", c.Playfield.GroundOffset},
		{"playfield.spawn_offset", c.Playfield.SpawnOffset},
		{"playfield.prune_margin", c.Playfield.PruneMargin},
		{"player.x", c.Player.X},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_force", c.Physics.JumpForce},
		{"physics.reference_frame_ms", c.Physics.ReferenceFrameMs},
		{"spawner.min_interval_ms", c.Spawner.MinIntervalMs},
		{"spawner.max_interval_ms", c.Spawner.MaxIntervalMs},
		{"scoring.rate_per_ms", c.Scoring.RatePerMs},
		{"difficulty.base_speed", c.Difficulty.BaseSpeed},
		{"difficulty.max_speed", c.Difficulty.MaxSpeed},
		{"difficulty.accel_per_ms", c.Difficulty.AccelPerMs},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return f.name, false
		}
	}
	return "", true
}
