// Package runner implements the cat runner simulation: a character that
// jumps over obstacles scrolling in from the right. It owns the run state,
// the physics, the spawner, scoring, and the idle/running/over lifecycle.
// Drawing and persistence are reached only through the Presenter and
// BestScoreStore interfaces.
package runner

import "github.com/vovakirdan/cat-runner/internal/core"

// Player is the character. Its horizontal position never changes.
type Player struct {
	X, Y     float64 // Top-left corner; Y grows downward
	W, H     float64
	VY       float64 // Vertical velocity, negative = up
	Grounded bool
}

// Rect returns the collision box of the player.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Profile is an obstacle shape.
type Profile struct {
	Name   string
	Width  float64
	Height float64
}

// Obstacle profiles. Every spawned obstacle uses exactly one of these.
var (
	ProfileLow  = Profile{Name: "low", Width: 22, Height: 40}
	ProfileTall = Profile{Name: "tall", Width: 28, Height: 60}
)

// tallChance is the probability that a spawn uses ProfileTall.
const tallChance = 0.4

// Obstacle is a box resting on the ground line and moving left.
type Obstacle struct {
	X, Y    float64
	Profile Profile
}

// Width returns the obstacle width.
func (o Obstacle) Width() float64 { return o.Profile.Width }

// Height returns the obstacle height.
func (o Obstacle) Height() float64 { return o.Profile.Height }

// Rect returns the collision box of the obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Profile.Width, o.Profile.Height)
}
