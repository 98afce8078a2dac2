package config

import (
	"math"

	"github.com/vovakirdan/cat-runner/internal/core"
)

// SpeedRamp raises horizontal speed with elapsed running time up to a cap.
type SpeedRamp struct {
	cfg Difficulty
}

// NewSpeedRamp creates a speed ramp from the difficulty settings.
func NewSpeedRamp(cfg Difficulty) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// Base returns the speed every run starts with.
func (r *SpeedRamp) Base() float64 {
	return r.cfg.BaseSpeed
}

// Advance returns the speed after deltaMs of running at speed.
// The result never decreases and never exceeds the cap.
func (r *SpeedRamp) Advance(speed, deltaMs float64) float64 {
	if !r.cfg.Enabled || deltaMs <= 0 || speed >= r.cfg.MaxSpeed {
		return speed
	}
	return math.Min(r.cfg.MaxSpeed, speed+deltaMs*r.cfg.AccelPerMs)
}

// Level returns progress from base to cap in [0, 1], for display.
func (r *SpeedRamp) Level(speed float64) float64 {
	span := r.cfg.MaxSpeed - r.cfg.BaseSpeed
	if span <= 0 {
		return 1
	}
	return core.ClampF((speed-r.cfg.BaseSpeed)/span, 0, 1)
}
