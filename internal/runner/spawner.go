package runner

import (
	"math/rand"

	"github.com/vovakirdan/cat-runner/internal/config"
)

// Spawner counts down to the next obstacle and picks its shape.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.Spawner
	spawnX  float64
	groundY float64
	timer   float64 // Milliseconds until the next spawn
}

// NewSpawner creates a spawner placing obstacles at the right edge of field.
func NewSpawner(seed int64, cfg config.Spawner, field config.Playfield) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		spawnX:  field.Width + field.SpawnOffset,
		groundY: field.GroundY(),
	}
}

// Reset zeroes the countdown so the first tick of a run spawns.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the milliseconds left until the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Update counts the timer down by deltaMs and appends at most one new
// obstacle when it expires.
func (s *Spawner) Update(obstacles []Obstacle, deltaMs float64) []Obstacle {
	s.timer -= deltaMs
	if s.timer > 0 {
		return obstacles
	}

	obstacles = append(obstacles, s.spawn())
	s.timer = s.nextInterval()
	return obstacles
}

// spawn creates an obstacle whose base sits on the ground line.
func (s *Spawner) spawn() Obstacle {
	profile := ProfileLow
	if s.rng.Float64() < tallChance {
		profile = ProfileTall
	}
	return Obstacle{
		X:       s.spawnX,
		Y:       s.groundY - profile.Height,
		Profile: profile,
	}
}

// nextInterval draws uniformly from [min, max).
func (s *Spawner) nextInterval() float64 {
	span := s.cfg.MaxIntervalMs - s.cfg.MinIntervalMs
	return s.cfg.MinIntervalMs + s.rng.Float64()*span
}
