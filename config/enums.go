package config

import (
	"fmt"
	"strings"
)

// Theme selects the environment dressing; core logic ignores it
type Theme int

const (
	ThemeForest Theme = iota
	ThemeCity
	ThemeSpace
)

var themeNames = [...]string{"forest", "city", "space"}

func (t Theme) String() string {
	if t < 0 || int(t) >= len(themeNames) {
		return "unknown"
	}
	return themeNames[t]
}

// ParseTheme resolves a theme name
func ParseTheme(s string) (Theme, error) {
	for i, name := range themeNames {
		if strings.EqualFold(s, name) {
			return Theme(i), nil
		}
	}
	return ThemeForest, fmt.Errorf("%w: theme %q", ErrInvalidOption, s)
}

// EnemyMode selects which enemy kinds the spawn director produces
type EnemyMode int

const (
	EnemyModeMixed EnemyMode = iota
	EnemyModeZombie
	EnemyModeHuman
)

var enemyModeNames = [...]string{"mixed", "zombie", "human"}

func (m EnemyMode) String() string {
	if m < 0 || int(m) >= len(enemyModeNames) {
		return "unknown"
	}
	return enemyModeNames[m]
}

// ParseEnemyMode resolves an enemy kind option
func ParseEnemyMode(s string) (EnemyMode, error) {
	for i, name := range enemyModeNames {
		if strings.EqualFold(s, name) {
			return EnemyMode(i), nil
		}
	}
	return EnemyModeMixed, fmt.Errorf("%w: enemy kind %q", ErrInvalidOption, s)
}

// Difficulty scales spawn pressure and hostile damage
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

var difficultyNames = [...]string{"normal", "easy", "hard"}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty resolves a difficulty name
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: difficulty %q", ErrInvalidOption, s)
}

// DifficultyProfile holds the multipliers a difficulty applies
type DifficultyProfile struct {
	SpawnScale       float64 // spawn rate multiplier
	HostileRateScale float64 // enemy attack rate multiplier
	DamageScale      float64 // enemy damage multiplier
}

// Profile returns the multipliers for d; normal is the identity
func (d Difficulty) Profile() DifficultyProfile {
	switch d {
	case DifficultyEasy:
		return DifficultyProfile{SpawnScale: 0.6, HostileRateScale: 0.5, DamageScale: 0.75}
	case DifficultyHard:
		return DifficultyProfile{SpawnScale: 1.5, HostileRateScale: 1.5, DamageScale: 1.25}
	default:
		return DifficultyProfile{SpawnScale: 1, HostileRateScale: 1, DamageScale: 1}
	}
}

// ScaleDamage applies the damage multiplier, rounding to the nearest integer
func (p DifficultyProfile) ScaleDamage(base int) int {
	return int(float64(base)*p.DamageScale + 0.5)
}

// Next cycles to the following theme, wrapping around
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(themeNames))
}

// Next cycles to the following enemy mode, wrapping around
func (m EnemyMode) Next() EnemyMode {
	return EnemyMode((int(m) + 1) % len(enemyModeNames))
}

// Next cycles to the following difficulty, wrapping around
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(difficultyNames))
}
