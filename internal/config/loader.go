package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the game configuration.
// Search order: customPath -> ~/.tui-runner/config.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Validate()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Validate()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-runner", filename)
}

// ApplyRunnerPreset rescales base values for a difficulty preset. Spawn
// interval floors and the ramp law are left untouched; they are part of the
// game rules, not the preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseSpeed = 0.45
		cfg.Obstacles.StartInterval = 180
		cfg.Coins.StartInterval = 110
		cfg.Enemies.DriftSpeed = 0.30
		cfg.Enemies.Proximity = 10.0
	case DifficultyHard:
		cfg.Obstacles.BaseSpeed = 0.70
		cfg.Obstacles.StartInterval = 90
		cfg.Coins.StartInterval = 60
		cfg.Enemies.DriftSpeed = 0.48
		cfg.Enemies.Proximity = 18.0
		cfg.Enemies.AttackCooldown = 60
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
	cfg.Validate()
}
