package config

import "testing"

func TestSpeedRampAdvance(t *testing.T) {
	r := NewSpeedRamp(DefaultRunnerConfig().Difficulty)

	if r.Base() != 6 {
		t.Fatalf("Base() = %f, expected 6", r.Base())
	}

	// 1000ms at 0.0005/ms adds 0.5
	if got := r.Advance(6, 1000); got != 6.5 {
		t.Errorf("Advance(6, 1000) = %f, expected 6.5", got)
	}

	// Never exceeds the cap
	if got := r.Advance(15.99, 1000); got != 16 {
		t.Errorf("Advance(15.99, 1000) = %f, expected 16", got)
	}
	if got := r.Advance(16, 1000); got != 16 {
		t.Errorf("Advance(16, 1000) = %f, expected 16", got)
	}

	// Non-positive delta leaves speed alone
	if got := r.Advance(7, 0); got != 7 {
		t.Errorf("Advance(7, 0) = %f, expected 7", got)
	}
}

func TestSpeedRampMonotone(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	r := NewSpeedRamp(cfg)

	speed := r.Base()
	for i := 0; i < 5000; i++ {
		next := r.Advance(speed, 16.67)
		if next < speed {
			t.Fatalf("speed decreased from %f to %f at step %d", speed, next, i)
		}
		if next > cfg.MaxSpeed {
			t.Fatalf("speed %f exceeded cap %f at step %d", next, cfg.MaxSpeed, i)
		}
		speed = next
	}
	if speed != cfg.MaxSpeed {
		t.Errorf("speed after long run = %f, expected cap %f", speed, cfg.MaxSpeed)
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.Enabled = false
	r := NewSpeedRamp(cfg)

	if got := r.Advance(6, 1000); got != 6 {
		t.Errorf("disabled Advance() = %f, expected 6", got)
	}
}

func TestSpeedRampLevel(t *testing.T) {
	r := NewSpeedRamp(DefaultRunnerConfig().Difficulty)

	if r.Level(6) != 0 {
		t.Errorf("Level(6) = %f, expected 0", r.Level(6))
	}
	if r.Level(11) != 0.5 {
		t.Errorf("Level(11) = %f, expected 0.5", r.Level(11))
	}
	if r.Level(16) != 1 {
		t.Errorf("Level(16) = %f, expected 1", r.Level(16))
	}
}

func TestSpeedRampLevelClamped(t *testing.T) {
	r := NewSpeedRamp(DefaultRunnerConfig().Difficulty)

	if r.Level(2) != 0 {
		t.Errorf("Level(2) = %f, expected 0 below base", r.Level(2))
	}
	if r.Level(40) != 1 {
		t.Errorf("Level(40) = %f, expected 1 above cap", r.Level(40))
	}
}
