package runner

import (
	"testing"
	"time"
)

func TestSimulateIdleBotCollides(t *testing.T) {
	m, _, store := newTestMachine(1, 0)
	res := Simulate(NewDriver(m), SimOptions{FPS: 60, Duration: time.Minute, Bot: IdleBot})

	if !res.Collided {
		t.Fatal("a player that never jumps should hit an obstacle")
	}
	if res.Score <= 0 {
		t.Errorf("Score = %d, expected a positive score", res.Score)
	}
	if !res.NewBest || res.Best != res.Score {
		t.Errorf("result = %+v, expected a new best equal to the score", res)
	}
	if store.Best != res.Score {
		t.Errorf("stored best = %d, expected %d", store.Best, res.Score)
	}
}

func TestSimulateAutoJumpOutlastsIdle(t *testing.T) {
	idle, _, _ := newTestMachine(3, 0)
	idleRes := Simulate(NewDriver(idle), SimOptions{FPS: 60, Duration: 30 * time.Second, Bot: IdleBot})

	auto, _, _ := newTestMachine(3, 0)
	autoRes := Simulate(NewDriver(auto), SimOptions{FPS: 60, Duration: 30 * time.Second, Bot: AutoJumpBot})

	if autoRes.Ticks <= idleRes.Ticks {
		t.Errorf("auto-jump lasted %d ticks, idle lasted %d", autoRes.Ticks, idleRes.Ticks)
	}
}

func TestSimulateRespectsDuration(t *testing.T) {
	m, _, _ := newTestMachine(1, 0)
	res := Simulate(NewDriver(m), SimOptions{FPS: 50, Duration: 100 * time.Millisecond, Bot: IdleBot})

	// No obstacle can reach the player within 100ms
	if res.Collided {
		t.Fatal("run should still be live")
	}
	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", res.Ticks)
	}
	if res.Elapsed != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 100ms", res.Elapsed)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() SimResult {
		m, _, _ := newTestMachine(42, 0)
		return Simulate(NewDriver(m), SimOptions{FPS: 60, Duration: 20 * time.Second, Bot: AutoJumpBot})
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}

func TestSimulateKeepsHigherBest(t *testing.T) {
	m, _, store := newTestMachine(1, 1000000)
	res := Simulate(NewDriver(m), SimOptions{FPS: 60, Duration: time.Minute, Bot: IdleBot})

	if res.NewBest {
		t.Error("a short run should not beat a huge best")
	}
	if store.Writes != 0 {
		t.Errorf("store written %d times, expected 0", store.Writes)
	}
}

func TestSimulateWithoutDurationStops(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		m, _, _ := newTestMachine(5, 0)
		res := Simulate(NewDriver(m), SimOptions{FPS: 50, Duration: d, Bot: AutoJumpBot})

		if res.Elapsed > DefaultSimDuration {
			t.Errorf("Duration %v: Elapsed = %v, expected at most %v", d, res.Elapsed, DefaultSimDuration)
		}
		if !res.Collided && res.Elapsed != DefaultSimDuration {
			t.Errorf("Duration %v: live run stopped at %v, expected %v", d, res.Elapsed, DefaultSimDuration)
		}
	}
}
