package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty selects one of the three gameplay tiers.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists the tiers in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// String returns the lower-case name used by flags and config files.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// Label returns the upper-case name shown on screen and stored with scores.
func (d Difficulty) Label() string {
	return strings.ToUpper(d.String())
}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// MarshalYAML encodes the difficulty as its label.
func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.Label(), nil
}

// UnmarshalYAML accepts any case of the difficulty name.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
