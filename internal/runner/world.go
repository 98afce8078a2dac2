package runner

import (
	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
)

// World is the run state bundle: player, obstacles, score, speed and the
// spawn timer. It has a single writer, the owning Machine.
type World struct {
	cfg       config.RunnerConfig
	player    Player
	obstacles []Obstacle
	physics   Physics
	spawner   *Spawner
	scoring   *Scoring
	ramp      *config.SpeedRamp
	elapsed   float64 // Simulated milliseconds across all runs, drives visual effects
	ticks     int     // Ticks in the current run
}

// NewWorld creates a world in its initial state. The seed drives obstacle
// shapes and spawn intervals.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	ramp := config.NewSpeedRamp(cfg.Difficulty)
	w := &World{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
		physics:   NewPhysics(cfg.Physics, cfg.Playfield),
		spawner:   NewSpawner(seed, cfg.Spawner, cfg.Playfield),
		scoring:   NewScoring(cfg.Scoring, ramp),
		ramp:      ramp,
	}
	w.Reset()
	return w
}

// Reset puts the run state back to its initial values.
func (w *World) Reset() {
	w.player = Player{
		X:        w.cfg.Player.X,
		Y:        w.physics.GroundY() - w.cfg.Player.Height,
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		Grounded: true,
	}
	w.obstacles = w.obstacles[:0]
	w.spawner.Reset()
	w.scoring.Reset()
	w.ticks = 0
}

// Jump launches the player if grounded.
func (w *World) Jump() bool {
	return w.physics.Jump(&w.player)
}

// Step advances the world by deltaMs and reports whether the player hit an
// obstacle. Order: vertical physics, spawn, scroll and prune, score and
// speed, collision.
func (w *World) Step(deltaMs float64) bool {
	w.ticks++
	w.elapsed += deltaMs

	w.physics.Integrate(&w.player, deltaMs)

	w.obstacles = w.spawner.Update(w.obstacles, deltaMs)
	w.obstacles = w.physics.Advance(w.obstacles, w.scoring.Speed(), deltaMs)

	w.scoring.Advance(deltaMs)

	return FirstCollision(w.player.Rect(), w.obstacles) >= 0
}

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Obstacles returns the active obstacles in spawn order.
// The slice is only valid until the next Step.
func (w *World) Obstacles() []Obstacle { return w.obstacles }

// Score returns the accumulated score.
func (w *World) Score() float64 { return w.scoring.Score() }

// DisplayScore returns the floored score.
func (w *World) DisplayScore() int { return w.scoring.Display() }

// Speed returns the current obstacle speed.
func (w *World) Speed() float64 { return w.scoring.Speed() }

// Ticks returns the number of ticks in the current run.
func (w *World) Ticks() int { return w.ticks }

// Elapsed returns total simulated milliseconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// Config returns the configuration the world was built with.
func (w *World) Config() config.RunnerConfig { return w.cfg }

// Scene builds a read-only snapshot for the presenter.
func (w *World) Scene() Scene {
	boxes := make([]core.Rect, len(w.obstacles))
	for i, o := range w.obstacles {
		boxes[i] = o.Rect()
	}
	return Scene{
		Player:    w.player.Rect(),
		Grounded:  w.player.Grounded,
		Obstacles: boxes,
		GroundY:   w.physics.GroundY(),
		Width:     w.cfg.Playfield.Width,
		Height:    w.cfg.Playfield.Height,
		Time:      w.elapsed,
		Level:     w.ramp.Level(w.scoring.Speed()),
	}
}
