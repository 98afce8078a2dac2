package runner

import (
	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
)

// Physics integrates vertical motion and scrolls obstacles.
type Physics struct {
	cfg     config.Physics
	groundY float64
	pruneX  float64 // Obstacles whose right edge is at or left of this are dropped
}

// NewPhysics creates the physics engine for a playfield.
func NewPhysics(cfg config.Physics, field config.Playfield) Physics {
	return Physics{
		cfg:     cfg,
		groundY: field.GroundY(),
		pruneX:  -field.PruneMargin,
	}
}

// GroundY returns the ground line.
func (ph Physics) GroundY() float64 {
	return ph.groundY
}

// frameScale converts a delta into reference frames.
func (ph Physics) frameScale(deltaMs float64) float64 {
	return deltaMs / ph.cfg.ReferenceFrameMs
}

// Integrate applies gravity, moves the player and clamps it to the ground.
// Gravity is applied once per tick unless ScaleVertical is set.
func (ph Physics) Integrate(p *Player, deltaMs float64) {
	if ph.cfg.ScaleVertical {
		scale := ph.frameScale(deltaMs)
		p.VY += ph.cfg.Gravity * scale
		p.Y += p.VY * scale
	} else {
		p.VY += ph.cfg.Gravity
		p.Y += p.VY
	}

	// Landed (or never left the ground)
	if p.Y+p.H >= ph.groundY {
		p.Y = ph.groundY - p.H
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

// Jump launches a grounded player. It reports whether the jump happened;
// an airborne player is left untouched.
func (ph Physics) Jump(p *Player) bool {
	if !p.Grounded {
		return false
	}
	p.VY = -ph.cfg.JumpForce
	p.Grounded = false
	return true
}

// Advance moves obstacles left by speed per reference frame and drops the
// ones that scrolled past the prune line. Order is preserved and the
// backing array is reused.
func (ph Physics) Advance(obstacles []Obstacle, speed, deltaMs float64) []Obstacle {
	move := speed * ph.frameScale(deltaMs)

	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= move
		if o.X+o.Width() > ph.pruneX {
			kept = append(kept, o)
		}
	}
	// Clear the tail so dropped obstacles do not linger in the array
	for i := len(kept); i < len(obstacles); i++ {
		obstacles[i] = Obstacle{}
	}
	return kept
}

// FirstCollision returns the index of the first obstacle, in spawn order,
// whose box overlaps box, or -1.
func FirstCollision(box core.Rect, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if box.Overlaps(o.Rect()) {
			return i
		}
	}
	return -1
}
