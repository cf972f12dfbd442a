package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MatchDurationSeconds != 180 {
		t.Errorf("MatchDurationSeconds = %d, want 180", cfg.MatchDurationSeconds)
	}
	if cfg.MasterVolume != 0.7 {
		t.Errorf("MasterVolume = %v, want 0.7", cfg.MasterVolume)
	}
	if !cfg.SoundEnabled || !cfg.BloodEffectsEnabled {
		t.Error("sound and blood should default to enabled")
	}
	if cfg.EnemyMode != EnemyModeMixed || cfg.Difficulty != DifficultyNormal || cfg.Theme != ThemeForest {
		t.Errorf("unexpected enum defaults: %s %s %s", cfg.EnemyMode, cfg.Difficulty, cfg.Theme)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	content := `
theme: space
enemy_kind: zombie
difficulty: hard
match_duration_seconds: 60
sound_enabled: false
master_volume: 1.5
submit_timeout: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Theme != ThemeSpace {
		t.Errorf("Theme = %s, want space", cfg.Theme)
	}
	if cfg.EnemyMode != EnemyModeZombie {
		t.Errorf("EnemyMode = %s, want zombie", cfg.EnemyMode)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %s, want hard", cfg.Difficulty)
	}
	if cfg.MatchDurationSeconds != 60 {
		t.Errorf("MatchDurationSeconds = %d, want 60", cfg.MatchDurationSeconds)
	}
	if cfg.SoundEnabled {
		t.Error("SoundEnabled should be false")
	}
	if !cfg.BloodEffectsEnabled {
		t.Error("BloodEffectsEnabled should keep its default")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, want clamped 1", cfg.MasterVolume)
	}
	if cfg.SubmitTimeout != 2*time.Second {
		t.Errorf("SubmitTimeout = %v, want 2s", cfg.SubmitTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.MatchDurationSeconds != 180 {
		t.Errorf("expected defaults, got duration %d", cfg.MatchDurationSeconds)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("theme: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Load() error = %v, want ErrMalformed", err)
	}
}

func TestUnknownEnumKeepsDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyYAML([]byte("difficulty: nightmare\ntheme: ocean\n")); err != nil {
		t.Fatalf("ApplyYAML() error: %v", err)
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("Difficulty = %s, want normal", cfg.Difficulty)
	}
	if cfg.Theme != ThemeForest {
		t.Errorf("Theme = %s, want forest", cfg.Theme)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ARENA_MASTER_VOLUME", "25")
	t.Setenv("ARENA_ENEMY_KIND", "human")
	t.Setenv("ARENA_SOUND_ENABLED", "false")
	t.Setenv("ARENA_MATCH_DURATION", "90")
	t.Setenv("ARENA_SCORE_ENDPOINT", "http://localhost:8080/api/scores")

	cfg := Default()
	cfg.ApplyEnv()
	cfg.Normalize()

	if cfg.MasterVolume != 0.25 {
		t.Errorf("MasterVolume = %v, want 0.25", cfg.MasterVolume)
	}
	if cfg.EnemyMode != EnemyModeHuman {
		t.Errorf("EnemyMode = %s, want human", cfg.EnemyMode)
	}
	if cfg.SoundEnabled {
		t.Error("SoundEnabled should be false")
	}
	if cfg.MatchDurationSeconds != 90 {
		t.Errorf("MatchDurationSeconds = %d, want 90", cfg.MatchDurationSeconds)
	}
	if cfg.ScoreEndpoint == "" {
		t.Error("ScoreEndpoint not applied")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Default()
	cfg.MasterVolume = -0.5
	cfg.MatchDurationSeconds = 0
	cfg.Normalize()

	if cfg.MasterVolume != 0 {
		t.Errorf("MasterVolume = %v, want 0", cfg.MasterVolume)
	}
	if cfg.MatchDurationSeconds != 180 {
		t.Errorf("MatchDurationSeconds = %d, want 180", cfg.MatchDurationSeconds)
	}
}

func TestDifficultyProfile(t *testing.T) {
	normal := DifficultyNormal.Profile()
	if normal.ScaleDamage(15) != 15 || normal.ScaleDamage(20) != 20 {
		t.Error("normal difficulty must keep base damage exactly")
	}

	easy := DifficultyEasy.Profile()
	hard := DifficultyHard.Profile()
	if !(easy.SpawnScale < normal.SpawnScale && normal.SpawnScale < hard.SpawnScale) {
		t.Error("spawn scale should increase with difficulty")
	}
	if hard.ScaleDamage(20) != 25 {
		t.Errorf("hard ScaleDamage(20) = %d, want 25", hard.ScaleDamage(20))
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseEnemyMode("robot"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("ParseEnemyMode(robot) error = %v, want ErrInvalidOption", err)
	}
	if m, _ := ParseEnemyMode("ZOMBIE"); m != EnemyModeZombie {
		t.Errorf("parsing is case-insensitive, got %s", m)
	}
}
