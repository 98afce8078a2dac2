package core

import "time"

// NominalFrameMs is the duration of one frame at 60 Hz in milliseconds.
const NominalFrameMs = 16.67

// FrameClock turns per-frame timestamps into elapsed deltas.
// The zero value is ready to use; the first Delta after construction
// without Reset reports NominalFrameMs.
type FrameClock struct {
	last time.Time
}

// Reset records now as the time of the previous tick.
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
}

// Delta returns the milliseconds elapsed since the previous tick and
// remembers now. A zero or negative gap reports NominalFrameMs.
func (c *FrameClock) Delta(now time.Time) float64 {
	var delta float64
	if !c.last.IsZero() {
		delta = float64(now.Sub(c.last)) / float64(time.Millisecond)
	}
	c.last = now
	if delta <= 0 {
		return NominalFrameMs
	}
	return delta
}
