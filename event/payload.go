package event

import "github.com/lixenwraith/arena-fighter/core"

// SoundRequestPayload names the combat sound to synthesize
type SoundRequestPayload struct {
	Sound core.SoundEvent
}

// PlayerDamagedPayload carries the applied damage and resulting health
type PlayerDamagedPayload struct {
	Amount int
	Health int
}

// EnemyKilledPayload describes a scored kill
type EnemyKilledPayload struct {
	Enemy    core.Handle
	Headshot bool
}

// WaveAdvancedPayload carries the new wave number
type WaveAdvancedPayload struct {
	Wave int
}

// PhaseChangedPayload describes a transition; phases are the engine's Phase values
type PhaseChangedPayload struct {
	From int
	To   int
}

// MatchEndedPayload is the frozen summary of a finished match
type MatchEndedPayload struct {
	Score         int
	EnemiesKilled int
	HeadshotKills int
	Wave          int
}

// ScoreSubmittedPayload reports a network submission outcome; Err is nil on success
type ScoreSubmittedPayload struct {
	MatchID string
	Err     error
}

// NewSoundRequest builds a sound request event
func NewSoundRequest(sound core.SoundEvent) GameEvent {
	return GameEvent{Type: EventSoundRequest, Payload: &SoundRequestPayload{Sound: sound}}
}
