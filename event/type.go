package event

// EventType represents the type of game event
type EventType int

const (
	// EventSoundRequest requests synthesis of a combat sound
	// Trigger: CombatResolver, HostileSystem, Weapon reload
	// Consumer: Game audio drain | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// EventPlayerDamaged reports a health decrease
	// Trigger: Game.TakeDamage | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventEnemyKilled reports a scored kill
	// Trigger: CombatResolver | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventWaveAdvanced reports a wave increment
	// Trigger: SpawnDirector | Payload: *WaveAdvancedPayload
	EventWaveAdvanced

	// EventPhaseChanged reports a state machine transition
	// Trigger: Game | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventMatchEnded carries the final match summary
	// Trigger: Game.endMatch | Payload: *MatchEndedPayload
	EventMatchEnded

	// EventScoreSubmitted reports the outcome of a network submission
	// Trigger: network.Submitter goroutine | Payload: *ScoreSubmittedPayload
	EventScoreSubmitted

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"sound_request",
	"player_damaged",
	"enemy_killed",
	"wave_advanced",
	"phase_changed",
	"match_ended",
	"score_submitted",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventTypeNames[t]
}

// GameEvent represents a single game event with typed payload
type GameEvent struct {
	Type    EventType
	Payload any
}
