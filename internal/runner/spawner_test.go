package runner

import (
	"testing"

	"github.com/vovakirdan/cat-runner/internal/config"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultRunnerConfig()
	return NewSpawner(seed, cfg.Spawner, cfg.Playfield)
}

func TestSpawnerFirstTickSpawns(t *testing.T) {
	s := newTestSpawner(1)

	got := s.Update(nil, frameMs)
	if len(got) != 1 {
		t.Fatalf("first Update() spawned %d obstacles, expected 1", len(got))
	}
	if got[0].X != 820 {
		t.Errorf("spawn X = %f, expected 820", got[0].X)
	}
	if got[0].Y+got[0].Height() != 200 {
		t.Errorf("obstacle base = %f, expected ground 200", got[0].Y+got[0].Height())
	}
}

func TestSpawnerTimerExpiry(t *testing.T) {
	s := newTestSpawner(7)
	s.timer = 50

	got := s.Update(nil, 100)
	if len(got) != 1 {
		t.Fatalf("Update() spawned %d obstacles, expected exactly 1", len(got))
	}
	if s.Timer() < 700 || s.Timer() >= 1300 {
		t.Errorf("timer after spawn = %f, expected in [700, 1300)", s.Timer())
	}
}

func TestSpawnerCountsDown(t *testing.T) {
	s := newTestSpawner(7)
	s.timer = 500

	got := s.Update(nil, 100)
	if len(got) != 0 {
		t.Errorf("Update() spawned before the timer expired")
	}
	if s.Timer() != 400 {
		t.Errorf("timer = %f, expected 400", s.Timer())
	}
}

func TestSpawnerExpiresAtExactlyZero(t *testing.T) {
	s := newTestSpawner(7)
	s.timer = 100

	if got := s.Update(nil, 100); len(got) != 1 {
		t.Errorf("timer reaching exactly zero should spawn, got %d", len(got))
	}
}

func TestSpawnerProfiles(t *testing.T) {
	s := newTestSpawner(42)

	const spawns = 10000
	var obstacles []Obstacle
	tall := 0
	for i := 0; i < spawns; i++ {
		s.timer = 0
		obstacles = s.Update(obstacles[:0], 1)
		o := obstacles[0]

		switch {
		case o.Width() == 22 && o.Height() == 40:
		case o.Width() == 28 && o.Height() == 60:
			tall++
		default:
			t.Fatalf("obstacle has shape %fx%f, expected 22x40 or 28x60", o.Width(), o.Height())
		}

		if s.Timer() < 700 || s.Timer() >= 1300 {
			t.Fatalf("interval %f outside [700, 1300)", s.Timer())
		}
	}

	ratio := float64(tall) / spawns
	if ratio < 0.37 || ratio > 0.43 {
		t.Errorf("tall ratio = %f, expected about 0.4", ratio)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	a := newTestSpawner(99)
	b := newTestSpawner(99)

	var oa, ob []Obstacle
	for i := 0; i < 200; i++ {
		oa = a.Update(oa, 37)
		ob = b.Update(ob, 37)
	}

	if len(oa) != len(ob) {
		t.Fatalf("spawn counts differ: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, oa[i], ob[i])
		}
	}
	if a.Timer() != b.Timer() {
		t.Errorf("timers differ: %f vs %f", a.Timer(), b.Timer())
	}
}
