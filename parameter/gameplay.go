package parameter

// Match
const (
	// MatchDefaultDuration is the default match length in seconds
	MatchDefaultDuration = 180

	// MatchStartWave is the wave counter at match start
	MatchStartWave = 1
)

// Spawn director
const (
	// SpawnBaseCap is the living-enemy cap at wave 0
	SpawnBaseCap = 5

	// SpawnPerWaveCap is added to the cap per wave
	SpawnPerWaveCap = 2

	// SpawnRateScale converts the time-pressure ratio into spawns per second
	// Derived from 0.01 per frame at 60 frames per second
	SpawnRateScale = 0.01 * 60

	// SpawnRingInner is the minimum spawn distance from the player
	SpawnRingInner = 20.0

	// SpawnRingOuter is the maximum spawn distance from the player
	SpawnRingOuter = 50.0

	// SpawnPerWaveQuota multiplies the wave number for the advancement threshold
	SpawnPerWaveQuota = 20

	// DespawnRadius removes enemies that wander this far from the player
	DespawnRadius = 200.0
)

// Physics collaborator
const (
	// Gravity is downward acceleration (m/s^2)
	Gravity = 9.82

	// PhysicsFixedStep is the nominal frame delta
	PhysicsFixedStep = 1.0 / 60.0
)

// Leaderboard
const (
	// LedgerCapacity caps stored high scores
	LedgerCapacity = 100

	// GameOverTopScores is how many scores the game over summary shows
	GameOverTopScores = 5

	// MenuTopScores is how many scores the high score view shows
	MenuTopScores = 10
)

// Arena bounds
const (
	// ArenaHalfExtent clamps the player to a square arena centered on the origin
	ArenaHalfExtent = 100.0
)
