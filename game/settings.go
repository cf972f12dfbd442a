package game

import (
	"log"

	"github.com/lixenwraith/arena-fighter/config"
)

// Settings setters apply immediately and write through to the settings store
// Match duration takes effect at the next Start

func (g *Game) SetVolume(v float64) {
	g.cfg.MasterVolume = config.ClampVolume(v)
	g.synth.SetVolume(g.cfg.MasterVolume)
	g.saveSettings()
}

func (g *Game) SetSoundEnabled(enabled bool) {
	g.cfg.SoundEnabled = enabled
	g.synth.SetEnabled(enabled)
	g.saveSettings()
}

func (g *Game) SetBloodEffects(enabled bool) {
	g.cfg.BloodEffectsEnabled = enabled
	g.saveSettings()
}

func (g *Game) SetDifficulty(d config.Difficulty) {
	g.cfg.Difficulty = d
	g.saveSettings()
}

func (g *Game) SetTheme(t config.Theme) {
	g.cfg.Theme = t
	g.saveSettings()
}

func (g *Game) SetEnemyMode(m config.EnemyMode) {
	g.cfg.EnemyMode = m
	g.saveSettings()
}

// SetMatchDuration ignores non-positive durations
func (g *Game) SetMatchDuration(seconds int) {
	if seconds <= 0 {
		log.Printf("[Game] ignoring match duration %d", seconds)
		return
	}
	g.cfg.MatchDurationSeconds = seconds
	g.saveSettings()
}

func (g *Game) saveSettings() {
	if g.settings == nil {
		return
	}
	if err := g.settings.Save(g.cfg); err != nil {
		log.Printf("[Game] settings not saved: %v", err)
	}
}
