package runner

import (
	"time"

	"github.com/vovakirdan/cat-runner/internal/core"
)

// Driver feeds frame timestamps and intents into a Machine. It decides
// whether another frame must be scheduled; the caller owns the timer.
type Driver struct {
	machine *Machine
	clock   core.FrameClock
}

// NewDriver creates a driver for m.
func NewDriver(m *Machine) *Driver {
	return &Driver{machine: m}
}

// Machine returns the driven machine.
func (d *Driver) Machine() *Machine {
	return d.machine
}

// Dispatch handles an intent received at now. It returns true when a run
// has just started and the first frame must be scheduled.
func (d *Driver) Dispatch(in core.Intent, now time.Time) bool {
	switch in {
	case core.IntentStart, core.IntentRestart:
		if d.machine.Start() {
			d.clock.Reset(now)
			return true
		}
	case core.IntentJump:
		d.machine.Jump()
	}
	return false
}

// Start requests a new run at now. See Dispatch.
func (d *Driver) Start(now time.Time) bool {
	return d.Dispatch(core.IntentStart, now)
}

// Jump requests a jump. Ignored outside a run.
func (d *Driver) Jump() {
	d.machine.Jump()
}

// Frame runs one tick for a frame displayed at now. It returns whether the
// next frame must be scheduled. Leaving the running state stops the loop.
func (d *Driver) Frame(now time.Time) bool {
	if d.machine.State() != StateRunning {
		return false
	}
	return d.machine.Tick(d.clock.Delta(now))
}
