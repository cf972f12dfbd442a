package game

import (
	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/network"
)

// ScoreLedger is the high-score store
type ScoreLedger interface {
	AppendScore(score int) error
	TopScores(n int) ([]int, error)
}

// ScoreSubmitter sends finished matches to the score service; it must not block
type ScoreSubmitter interface {
	Submit(sub network.ScoreSubmission) <-chan error
}

// SoundPlayer plays synthesized tones, reporting false when nothing was queued
type SoundPlayer interface {
	Play(tones []audio.Tone) bool
}

// SettingsSaver persists player-adjustable settings
type SettingsSaver interface {
	Save(cfg *config.Config) error
}
