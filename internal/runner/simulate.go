package runner

import "time"

// jumpWindow is how many reference frames before contact the auto-jump bot
// takes off. It keeps the player above the obstacle through the overlap at
// every speed up to the cap.
const jumpWindow = 12.0

// DefaultSimDuration limits a headless run whose options set no duration.
const DefaultSimDuration = 10 * time.Minute

// Bot decides whether to jump before the next frame.
type Bot func(w *World) bool

// IdleBot never jumps.
func IdleBot(*World) bool { return false }

// AutoJumpBot jumps when the nearest obstacle ahead is about to reach the
// player.
func AutoJumpBot(w *World) bool {
	p := w.Player()
	if !p.Grounded {
		return false
	}
	speed := w.Speed()
	if speed <= 0 {
		return false
	}

	front := p.X + p.W
	for _, o := range w.Obstacles() {
		gap := o.X - front
		if o.X+o.Width() < p.X {
			continue // already behind
		}
		if gap/speed <= jumpWindow {
			return true
		}
	}
	return false
}

// SimOptions configures a headless run.
type SimOptions struct {
	FPS      int
	Duration time.Duration // Simulated time limit; zero or less uses DefaultSimDuration
	Bot      Bot
	Start    time.Time // First timestamp; zero uses the Unix epoch
}

// SimResult summarizes a headless run.
type SimResult struct {
	Score    int
	Ticks    int
	Elapsed  time.Duration
	Best     int
	NewBest  bool
	Collided bool
}

// Simulate starts a run on d and feeds it synthetic frame timestamps until
// the player collides or the time limit passes. The machine must already be
// initialized. Identical seeds and options give identical results.
func Simulate(d *Driver, opts SimOptions) SimResult {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultSimDuration
	}
	if opts.Bot == nil {
		opts.Bot = IdleBot
	}
	now := opts.Start
	if now.IsZero() {
		now = time.Unix(0, 0)
	}

	m := d.Machine()
	bestBefore := m.Best()
	interval := time.Second / time.Duration(opts.FPS)

	d.Start(now)
	var elapsed time.Duration
	for elapsed < opts.Duration {
		if opts.Bot(m.World()) {
			d.Jump()
		}
		now = now.Add(interval)
		elapsed += interval
		if !d.Frame(now) {
			break
		}
	}

	return SimResult{
		Score:    m.Score(),
		Ticks:    m.World().Ticks(),
		Elapsed:  elapsed,
		Best:     m.Best(),
		NewBest:  m.Best() > bestBefore,
		Collided: m.State() == StateOver,
	}
}
