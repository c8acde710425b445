// Package config provides YAML-based gameplay configuration loading and
// difficulty tiers for Space Survivor.
package config

// SurvivorConfig contains all gameplay tuning for Space Survivor.
// Distances are in terminal cells and speeds in cells per tick.
type SurvivorConfig struct {
	Spaceship  SpaceshipConfig `yaml:"spaceship"`
	Bullet     BulletConfig    `yaml:"bullet"`
	Asteroids  AsteroidsConfig `yaml:"asteroids"`
	Bonus      BonusConfig     `yaml:"bonus"`
	Round      RoundConfig     `yaml:"round"`
	Difficulty DifficultyTiers `yaml:"difficulty"`
	Audio      AudioConfig     `yaml:"audio"`
}

// SpaceshipConfig defines the player ship's handling.
type SpaceshipConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	TurnSpeed    float64 `yaml:"turn_speed"` // degrees per tick
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AsteroidsConfig defines the asteroid field.
type AsteroidsConfig struct {
	Large AsteroidKind `yaml:"large"`
	Small AsteroidKind `yaml:"small"`
}

// AsteroidKind defines one asteroid size class.
type AsteroidKind struct {
	Count  int     `yaml:"count"` // alive at round start
	Score  int     `yaml:"score"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BonusConfig defines the bonus star pickup.
type BonusConfig struct {
	Score  int     `yaml:"score"` // awarded instead of a life when lives are capped
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoundConfig defines lives, timing and end-of-round scoring.
type RoundConfig struct {
	TimeSeconds      float64 `yaml:"time_seconds"`
	StartLives       int     `yaml:"start_lives"`
	MaxLives         int     `yaml:"max_lives"`
	TimeBonusPerLife int     `yaml:"time_bonus_per_life"`
	DefaultPlayer    string  `yaml:"default_player"`
	DefaultLevel     string  `yaml:"default_difficulty"`
}

// DifficultyTiers holds the per-difficulty tuning.
type DifficultyTiers struct {
	Easy   TierConfig `yaml:"easy"`
	Normal TierConfig `yaml:"normal"`
	Hard   TierConfig `yaml:"hard"`
}

// TierConfig defines asteroid speeds and bonus frequency for one difficulty.
type TierConfig struct {
	LargeSpeed    Range    `yaml:"large_speed"`
	SmallSpeed    Range    `yaml:"small_speed"`
	BonusInterval IntRange `yaml:"bonus_interval"` // seconds, inclusive
}

// Range is a closed float interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// AudioConfig defines the synthesized sound levels.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // beep effects.Volume exponent, base 2
}

// Tier returns the tuning for the given difficulty.
func (c SurvivorConfig) Tier(d Difficulty) TierConfig {
	switch d {
	case DifficultyEasy:
		return c.Difficulty.Easy
	case DifficultyHard:
		return c.Difficulty.Hard
	default:
		return c.Difficulty.Normal
	}
}
