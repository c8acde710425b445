package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "survivor.yaml"

// Load loads Space Survivor configuration.
// Search order: customPath -> ~/.survivor/configs/survivor.yaml -> ./configs/survivor.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (SurvivorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSurvivorConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSurvivorConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSurvivorYAML)
	if err != nil {
		return DefaultSurvivorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (SurvivorConfig, error) {
	cfg := DefaultSurvivorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg SurvivorConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every value that would make the game unplayable.
func (c SurvivorConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Spaceship.MaxSpeed > 0, "spaceship.max_speed must be positive")
	check(c.Spaceship.Acceleration > 0, "spaceship.acceleration must be positive")
	check(c.Spaceship.Deceleration >= 0, "spaceship.deceleration must not be negative")
	check(c.Bullet.Speed > 0, "bullet.speed must be positive")
	check(c.Asteroids.Large.Count >= 0 && c.Asteroids.Small.Count >= 0, "asteroids counts must not be negative")
	check(c.Round.TimeSeconds > 0, "round.time_seconds must be positive")
	check(c.Round.StartLives > 0, "round.start_lives must be positive")
	check(c.Round.MaxLives >= c.Round.StartLives, "round.max_lives (%d) must be at least start_lives (%d)", c.Round.MaxLives, c.Round.StartLives)
	if _, err := ParseDifficulty(c.Round.DefaultLevel); err != nil {
		errs = append(errs, fmt.Errorf("round.default_difficulty: %w", err))
	}

	for _, d := range Difficulties {
		t := c.Tier(d)
		check(t.LargeSpeed.Min >= 0 && t.LargeSpeed.Min <= t.LargeSpeed.Max, "difficulty.%s.large_speed is not a valid range", d)
		check(t.SmallSpeed.Min >= 0 && t.SmallSpeed.Min <= t.SmallSpeed.Max, "difficulty.%s.small_speed is not a valid range", d)
		check(t.BonusInterval.Min > 0 && t.BonusInterval.Min <= t.BonusInterval.Max, "difficulty.%s.bonus_interval is not a valid range", d)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "configs", filename)
}
