package engine

import "github.com/lixenwraith/arena-fighter/parameter"

// Phase is the top-level game state
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

var validTransitions = map[Phase][]Phase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhaseGameOver, PhaseMenu},
	PhaseGameOver: {PhaseMenu, PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// MatchState is the per-session scoreboard and clock
// Plain value type; the game snapshots it by copy at the start of each tick
type MatchState struct {
	Phase Phase

	Score  int
	Health int

	TimeRemaining float64 // seconds
	TotalTime     float64 // seconds
	Elapsed       float64 // simulated seconds since match start

	Wave           int
	EnemiesSpawned int
	EnemiesKilled  int
	HeadshotKills  int
}

// NewMatchState returns the initial menu state
func NewMatchState() MatchState {
	return MatchState{
		Phase:  PhaseMenu,
		Health: parameter.PlayerMaxHealth,
		Wave:   parameter.MatchStartWave,
	}
}

// Reset restores match values for a new match of totalSeconds; Phase is untouched
func (m *MatchState) Reset(totalSeconds float64) {
	phase := m.Phase
	*m = NewMatchState()
	m.Phase = phase
	m.TotalTime = totalSeconds
	m.TimeRemaining = totalSeconds
}

// Transition moves to the given phase if the table allows it
func (m *MatchState) Transition(to Phase) bool {
	if !CanTransition(m.Phase, to) {
		return false
	}
	m.Phase = to
	return true
}

// ApplyDamage lowers health, clamping at zero
// Returns the damage actually applied and whether health reached zero
func (m *MatchState) ApplyDamage(amount int) (applied int, dead bool) {
	if amount <= 0 || m.Health <= 0 {
		return 0, m.Health <= 0
	}
	if amount > m.Health {
		amount = m.Health
	}
	m.Health -= amount
	return amount, m.Health == 0
}

// SpawnCap is the living-enemy ceiling for the current wave
func (m *MatchState) SpawnCap() int {
	return parameter.SpawnBaseCap + m.Wave*parameter.SpawnPerWaveCap
}
