package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames lists the file names probed in each config directory.
var configNames = []string{"runner.yaml", "runner.yml", "runner.toml"}

// LoadRunner loads the cat runner configuration.
// Search order: customPath -> ~/.catrunner/configs/runner.{yaml,yml,toml} ->
// ./configs/runner.{yaml,yml,toml} -> embedded default.
// Values missing from a file keep their defaults.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first; failures here are reported to the caller
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return RunnerConfig{}, err
		}
		return cfg, nil
	}

	// Try user and local config directories, skipping anything unusable
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Parse(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse("runner.yaml", defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates config data on top of the defaults.
// The decoder is chosen from the file extension of name.
func Parse(name string, data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// WriteDefault writes the embedded default YAML to path, or to
// ~/.catrunner/configs/runner.yaml when path is empty, and returns the path
// written. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".catrunner", "configs", configNames[0])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return "", fmt.Errorf("config: cannot create %s: %w", path, err)
	}
	if _, err := f.Write(DefaultYAML()); err != nil {
		f.Close()
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}

// searchDirs returns the directories probed for config files, in order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".catrunner", "configs"))
	}
	return append(dirs, "configs")
}
