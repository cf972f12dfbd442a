package parameter

// Enemy stats
const (
	// EnemyMaxHealth is enemy starting health for every kind
	EnemyMaxHealth = 100

	// EnemyMeleeSpeed is melee enemy approach speed (m/s)
	EnemyMeleeSpeed = 3.0

	// EnemyRangedSpeed is ranged enemy approach speed (m/s)
	EnemyRangedSpeed = 2.0

	// EnemyRangedHoldDistance is where ranged enemies stop approaching
	EnemyRangedHoldDistance = 15.0

	// EnemyMeleeStopDistance keeps melee enemies from overlapping the player
	EnemyMeleeStopDistance = 1.5
)

// Enemy body geometry relative to the placed ground position
const (
	EnemyBodyCenterY = 0.9
	EnemyBodyRadius  = 0.6
	EnemyHeadCenterY = 1.75
	EnemyHeadRadius  = 0.25
)
