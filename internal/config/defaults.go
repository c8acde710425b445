package config

import (
	_ "embed"
)

//go:embed defaults/survivor.yaml
var defaultSurvivorYAML []byte

// DefaultSurvivorConfig returns the hard-coded Space Survivor configuration.
// It matches defaults/survivor.yaml and is the last fallback of Load.
func DefaultSurvivorConfig() SurvivorConfig {
	return SurvivorConfig{
		Spaceship: SpaceshipConfig{
			Acceleration: 0.03,
			Deceleration: 0.01,
			MaxSpeed:     0.3,
			TurnSpeed:    2,
			Width:        1,
			Height:       1,
		},
		Bullet: BulletConfig{
			Speed:  0.4,
			Width:  1,
			Height: 1,
		},
		Asteroids: AsteroidsConfig{
			Large: AsteroidKind{Count: 5, Score: 3, Width: 4, Height: 2},
			Small: AsteroidKind{Count: 3, Score: 1, Width: 2, Height: 1},
		},
		Bonus: BonusConfig{
			Score:  10,
			Width:  1,
			Height: 1,
		},
		Round: RoundConfig{
			TimeSeconds:      60,
			StartLives:       3,
			MaxLives:         5,
			TimeBonusPerLife: 3,
			DefaultPlayer:    "New Player",
			DefaultLevel:     "normal",
		},
		Difficulty: DifficultyTiers{
			Easy: TierConfig{
				LargeSpeed:    Range{Min: 0.05, Max: 0.15},
				SmallSpeed:    Range{Min: 0.15, Max: 0.25},
				BonusInterval: IntRange{Min: 5, Max: 10},
			},
			Normal: TierConfig{
				LargeSpeed:    Range{Min: 0.1, Max: 0.2},
				SmallSpeed:    Range{Min: 0.2, Max: 0.3},
				BonusInterval: IntRange{Min: 15, Max: 20},
			},
			Hard: TierConfig{
				LargeSpeed:    Range{Min: 0.2, Max: 0.3},
				SmallSpeed:    Range{Min: 0.4, Max: 0.5},
				BonusInterval: IntRange{Min: 25, Max: 30},
			},
		},
		Audio: AudioConfig{
			Volume: -3,
		},
	}
}
