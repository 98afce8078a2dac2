package runner

import (
	"math"

	"github.com/vovakirdan/cat-runner/internal/config"
)

// Scoring accumulates score and speed from elapsed running time.
type Scoring struct {
	rate  float64
	ramp  *config.SpeedRamp
	score float64
	speed float64
}

// NewScoring creates a scoring controller.
func NewScoring(cfg config.Scoring, ramp *config.SpeedRamp) *Scoring {
	s := &Scoring{rate: cfg.RatePerMs, ramp: ramp}
	s.Reset()
	return s
}

// Reset returns score to zero and speed to base.
func (s *Scoring) Reset() {
	s.score = 0
	s.speed = s.ramp.Base()
}

// Advance adds deltaMs worth of score and speed.
func (s *Scoring) Advance(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	s.score += deltaMs * s.rate
	s.speed = s.ramp.Advance(s.speed, deltaMs)
}

// Score returns the accumulated score.
func (s *Scoring) Score() float64 { return s.score }

// Display returns the integer score shown to the player.
func (s *Scoring) Display() int { return int(math.Floor(s.score)) }

// Speed returns the current obstacle speed.
func (s *Scoring) Speed() float64 { return s.speed }
