package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Sentinel errors
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrMalformed     = errors.New("malformed config file")
)

// Config holds every recognized runtime option
type Config struct {
	// Gameplay
	Theme                Theme
	EnemyMode            EnemyMode
	Difficulty           Difficulty
	MatchDurationSeconds int

	// Presentation
	SoundEnabled        bool
	BloodEffectsEnabled bool
	MasterVolume        float64 // 0.0-1.0

	// Collaborators
	ScoreEndpoint string        // empty disables network submission
	SubmitTimeout time.Duration // per-request deadline
	AppName       string        // gdata application namespace

	Debug bool
}

// Default returns the out-of-the-box configuration
func Default() *Config {
	return &Config{
		Theme:                ThemeForest,
		EnemyMode:            EnemyModeMixed,
		Difficulty:           DifficultyNormal,
		MatchDurationSeconds: parameter.MatchDefaultDuration,
		SoundEnabled:         true,
		BloodEffectsEnabled:  true,
		MasterVolume:         parameter.AudioDefaultVolume,
		SubmitTimeout:        5 * time.Second,
		AppName:              "arena_fighter",
	}
}

// File is the on-disk YAML shape; enums are kept as strings so unknown
// values degrade to defaults instead of failing the whole file
type File struct {
	Theme                string   `yaml:"theme,omitempty"`
	EnemyKind            string   `yaml:"enemy_kind,omitempty"`
	Difficulty           string   `yaml:"difficulty,omitempty"`
	MatchDurationSeconds *int     `yaml:"match_duration_seconds,omitempty"`
	SoundEnabled         *bool    `yaml:"sound_enabled,omitempty"`
	BloodEffectsEnabled  *bool    `yaml:"blood_effects_enabled,omitempty"`
	MasterVolume         *float64 `yaml:"master_volume,omitempty"`
	ScoreEndpoint        string   `yaml:"score_endpoint,omitempty"`
	SubmitTimeout        string   `yaml:"submit_timeout,omitempty"`
	AppName              string   `yaml:"app_name,omitempty"`
	Debug                *bool    `yaml:"debug,omitempty"`
}

// Load reads a YAML config file over the defaults, then applies environment overrides
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.ApplyYAML(data); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			log.Printf("[Config] %s not found, using defaults", path)
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	cfg.Normalize()
	return cfg, nil
}

// ApplyYAML overlays fields present in a YAML document
func (c *Config) ApplyYAML(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	c.ApplyFile(&f)
	return nil
}

// ApplyFile overlays the set fields of f; unknown enum values are logged and ignored
func (c *Config) ApplyFile(f *File) {
	if f.Theme != "" {
		if v, err := ParseTheme(f.Theme); err == nil {
			c.Theme = v
		} else {
			log.Printf("[Config] %v, keeping %s", err, c.Theme)
		}
	}
	if f.EnemyKind != "" {
		if v, err := ParseEnemyMode(f.EnemyKind); err == nil {
			c.EnemyMode = v
		} else {
			log.Printf("[Config] %v, keeping %s", err, c.EnemyMode)
		}
	}
	if f.Difficulty != "" {
		if v, err := ParseDifficulty(f.Difficulty); err == nil {
			c.Difficulty = v
		} else {
			log.Printf("[Config] %v, keeping %s", err, c.Difficulty)
		}
	}
	if f.MatchDurationSeconds != nil {
		c.MatchDurationSeconds = *f.MatchDurationSeconds
	}
	if f.SoundEnabled != nil {
		c.SoundEnabled = *f.SoundEnabled
	}
	if f.BloodEffectsEnabled != nil {
		c.BloodEffectsEnabled = *f.BloodEffectsEnabled
	}
	if f.MasterVolume != nil {
		c.MasterVolume = *f.MasterVolume
	}
	if f.ScoreEndpoint != "" {
		c.ScoreEndpoint = f.ScoreEndpoint
	}
	if f.SubmitTimeout != "" {
		if d, err := time.ParseDuration(f.SubmitTimeout); err == nil {
			c.SubmitTimeout = d
		} else {
			log.Printf("[Config] submit_timeout %q: %v", f.SubmitTimeout, err)
		}
	}
	if f.AppName != "" {
		c.AppName = f.AppName
	}
	if f.Debug != nil {
		c.Debug = *f.Debug
	}
}

// ToFile converts the config back to its YAML shape
func (c *Config) ToFile() *File {
	duration := c.MatchDurationSeconds
	sound := c.SoundEnabled
	blood := c.BloodEffectsEnabled
	volume := c.MasterVolume
	return &File{
		Theme:                c.Theme.String(),
		EnemyKind:            c.EnemyMode.String(),
		Difficulty:           c.Difficulty.String(),
		MatchDurationSeconds: &duration,
		SoundEnabled:         &sound,
		BloodEffectsEnabled:  &blood,
		MasterVolume:         &volume,
	}
}

// ApplyEnv overlays ARENA_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ARENA_THEME"); v != "" {
		c.ApplyFile(&File{Theme: v})
	}
	if v := os.Getenv("ARENA_ENEMY_KIND"); v != "" {
		c.ApplyFile(&File{EnemyKind: v})
	}
	if v := os.Getenv("ARENA_DIFFICULTY"); v != "" {
		c.ApplyFile(&File{Difficulty: v})
	}
	if v := os.Getenv("ARENA_SOUND_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.SoundEnabled = val
		}
	}
	if v := os.Getenv("ARENA_BLOOD"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.BloodEffectsEnabled = val
		}
	}
	if v := os.Getenv("ARENA_MATCH_DURATION"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.MatchDurationSeconds = val
		}
	}
	// Master volume is 0-100 in the environment
	if v := os.Getenv("ARENA_MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = float64(val) / 100.0
		}
	}
	if v := os.Getenv("ARENA_SCORE_ENDPOINT"); v != "" {
		c.ScoreEndpoint = v
	}
}

// Normalize clamps out-of-range values instead of rejecting them
func (c *Config) Normalize() {
	c.MasterVolume = ClampVolume(c.MasterVolume)
	if c.MatchDurationSeconds <= 0 {
		log.Printf("[Config] match duration %d invalid, using %d", c.MatchDurationSeconds, parameter.MatchDefaultDuration)
		c.MatchDurationSeconds = parameter.MatchDefaultDuration
	}
	if c.SubmitTimeout <= 0 {
		c.SubmitTimeout = 5 * time.Second
	}
	if c.AppName == "" {
		c.AppName = "arena_fighter"
	}
}

// ClampVolume limits a volume to [0, 1]
func ClampVolume(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
