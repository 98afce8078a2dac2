package config

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse("runner.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Playfield.GroundY() != 200 {
		t.Errorf("GroundY() = %f, expected 200", cfg.Playfield.GroundY())
	}
	if cfg.Physics.Gravity != 0.9 || cfg.Physics.JumpForce != 15 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Difficulty.BaseSpeed != 6 || cfg.Difficulty.MaxSpeed != 16 {
		t.Errorf("difficulty = %+v", cfg.Difficulty)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoadRunnerCustomYAML(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
physics:
  gravity: 1.2
difficulty:
  max_speed: 20
`)

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %f, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Difficulty.MaxSpeed != 20 {
		t.Errorf("MaxSpeed = %f, expected 20", cfg.Difficulty.MaxSpeed)
	}
	// Untouched values keep their defaults
	if cfg.Physics.JumpForce != 15 {
		t.Errorf("JumpForce = %f, expected default 15", cfg.Physics.JumpForce)
	}
	if cfg.Storage.BestScoreKey != "catRunnerHighScore" {
		t.Errorf("BestScoreKey = %q, expected default", cfg.Storage.BestScoreKey)
	}
}

func TestLoadRunnerCustomTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[physics]
jump_force = 18.5
scale_vertical = true

[spawner]
min_interval_ms = 500.0
max_interval_ms = 900.0
`)

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.JumpForce != 18.5 {
		t.Errorf("JumpForce = %f, expected 18.5", cfg.Physics.JumpForce)
	}
	if !cfg.Physics.ScaleVertical {
		t.Error("ScaleVertical should be true")
	}
	if cfg.Spawner.MinIntervalMs != 500 || cfg.Spawner.MaxIntervalMs != 900 {
		t.Errorf("Spawner = %+v", cfg.Spawner)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %f, expected default 0.9", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerMissingFile(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRunner() should fail for a missing custom file")
	}
}

func TestLoadRunnerMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "physics: [not, a, map")
	if _, err := LoadRunner(path); err == nil {
		t.Fatal("LoadRunner() should fail for malformed YAML")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero playfield", func(c *RunnerConfig) { c.Playfield.Width = 0 }},
		{"ground outside playfield", func(c *RunnerConfig) { c.Playfield.GroundOffset = 300 }},
		{"player too tall", func(c *RunnerConfig) { c.Player.Height = 500 }},
		{"no gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"no reference frame", func(c *RunnerConfig) { c.Physics.ReferenceFrameMs = 0 }},
		{"inverted spawn interval", func(c *RunnerConfig) { c.Spawner.MaxIntervalMs = 100 }},
		{"cap below base", func(c *RunnerConfig) { c.Difficulty.MaxSpeed = 2 }},
		{"negative accel", func(c *RunnerConfig) { c.Difficulty.AccelPerMs = -1 }},
		{"empty key", func(c *RunnerConfig) { c.Storage.BestScoreKey = "" }},
		{"NaN gravity", func(c *RunnerConfig) { c.Physics.Gravity = math.NaN() }},
		{"NaN jump force", func(c *RunnerConfig) { c.Physics.JumpForce = math.NaN() }},
		{"infinite max speed", func(c *RunnerConfig) { c.Difficulty.MaxSpeed = math.Inf(1) }},
		{"infinite accel", func(c *RunnerConfig) { c.Difficulty.AccelPerMs = math.Inf(1) }},
		{"NaN score rate", func(c *RunnerConfig) { c.Scoring.RatePerMs = math.NaN() }},
		{"infinite spawn interval", func(c *RunnerConfig) { c.Spawner.MaxIntervalMs = math.Inf(1) }},
		{"NaN spawn offset", func(c *RunnerConfig) { c.Playfield.SpawnOffset = math.NaN() }},
		{"negative infinite prune margin", func(c *RunnerConfig) { c.Playfield.PruneMargin = math.Inf(-1) }},
		{"NaN player x", func(c *RunnerConfig) { c.Player.X = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse("runner.yaml", []byte("difficulty:\n  base_speed: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() = %v, expected ErrInvalid", err)
	}
}

func TestParseRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"yaml NaN gravity", "runner.yaml", "physics:\n  gravity: .nan\n"},
		{"yaml infinite max speed", "runner.yaml", "difficulty:\n  max_speed: .inf\n"},
		{"toml infinite accel", "runner.toml", "[difficulty]\naccel_per_ms = inf\n"},
		{"toml NaN jump force", "runner.toml", "[physics]\njump_force = nan\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.file, []byte(tc.data))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runner.yaml")

	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	if written != path {
		t.Errorf("WriteDefault() path = %q, expected %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !bytes.Equal(data, DefaultYAML()) {
		t.Error("written file should match the embedded defaults")
	}

	// The written file loads back to the defaults
	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("loaded config differs from defaults: %+v", cfg)
	}
}

func TestWriteDefaultKeepsExisting(t *testing.T) {
	path := writeFile(t, "runner.yaml", "physics:\n  gravity: 2\n")

	if _, err := WriteDefault(path, false); !errors.Is(err, os.ErrExist) {
		t.Errorf("WriteDefault() = %v, expected os.ErrExist", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "physics:\n  gravity: 2\n" {
		t.Error("existing file should not be overwritten without force")
	}

	if _, err := WriteDefault(path, true); err != nil {
		t.Fatalf("WriteDefault(force) failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !bytes.Equal(data, DefaultYAML()) {
		t.Error("force should replace the existing file")
	}
}

func TestWriteDefaultUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	written, err := WriteDefault("", false)
	if err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	expected := filepath.Join(home, ".catrunner", "configs", "runner.yaml")
	if written != expected {
		t.Errorf("WriteDefault() path = %q, expected %q", written, expected)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}
