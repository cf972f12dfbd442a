package parameter

import "github.com/lixenwraith/arena-fighter/vmath"

// Player
const (
	// PlayerMaxHealth is health at match start
	PlayerMaxHealth = 100

	// PlayerMoveSpeed is horizontal speed under full movement intent (m/s)
	PlayerMoveSpeed = 2.0

	// PlayerVelocityDamping multiplies horizontal velocity each frame without intent
	PlayerVelocityDamping = 0.9

	// PlayerJumpVelocity is the vertical launch speed when grounded
	PlayerJumpVelocity = 10.0

	// PlayerEyeHeight is the view origin above the player body center
	PlayerEyeHeight = 0.5

	// PlayerRadius is the player collision sphere radius
	PlayerRadius = 0.5

	// PlayerPitchLimit bounds view pitch (radians)
	PlayerPitchLimit = 1.5
)

// PlayerSpawn is the player body center at match start
var PlayerSpawn = vmath.Vec3F{X: 0, Y: 1, Z: 0}
