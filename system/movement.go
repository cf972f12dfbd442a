package system

import (
	"fmt"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// MoveIntent is the per-frame player control state
type MoveIntent struct {
	Forward, Back, Left, Right bool
	Jump                       bool
	Yaw                        float64
}

// Vector returns the normalized local intent (x right, z back), rotated by yaw
func (m MoveIntent) Vector() vmath.Vec3F {
	var v vmath.Vec3F
	if m.Forward {
		v.Z -= 1
	}
	if m.Back {
		v.Z += 1
	}
	if m.Left {
		v.X -= 1
	}
	if m.Right {
		v.X += 1
	}
	if v == (vmath.Vec3F{}) {
		return v
	}
	return vmath.V3FRotateY(vmath.V3FNormalize(v), m.Yaw)
}

// MovementSystem drives the player velocity and steers enemies toward the player
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

// ApplyPlayer converts intent to a velocity command
// Without intent horizontal velocity decays; jump only launches from the ground
func (s *MovementSystem) ApplyPlayer(ctx *engine.Context, intent MoveIntent, grounded bool) error {
	player := ctx.Pool.Player()
	vel, err := ctx.Physics.Velocity(player)
	if err != nil {
		return fmt.Errorf("move player: %w", err)
	}

	if dir := intent.Vector(); dir != (vmath.Vec3F{}) {
		vel.X = dir.X * parameter.PlayerMoveSpeed
		vel.Z = dir.Z * parameter.PlayerMoveSpeed
	} else {
		vel.X *= parameter.PlayerVelocityDamping
		vel.Z *= parameter.PlayerVelocityDamping
	}

	if intent.Jump && grounded {
		vel.Y = parameter.PlayerJumpVelocity
	}

	if err := ctx.Physics.SetVelocity(player, vel); err != nil {
		return fmt.Errorf("move player: %w", err)
	}
	return nil
}

// SteerEnemies points every enemy at the player
// Melee closes to contact range, ranged holds at a firing distance
func (s *MovementSystem) SteerEnemies(ctx *engine.Context) error {
	target, err := ctx.PlayerPosition()
	if err != nil {
		return fmt.Errorf("steer: %w", err)
	}
	target = vmath.V3FFlat(target)

	for _, h := range ctx.Pool.LivingEnemies() {
		enemy, ok := ctx.Pool.Enemy(h)
		if !ok {
			continue
		}
		pos, err := ctx.Physics.Position(h)
		if err != nil {
			return fmt.Errorf("steer: %w", err)
		}

		speed, stop := parameter.EnemyMeleeSpeed, parameter.EnemyMeleeStopDistance
		if enemy.Kind == engine.EnemyRanged {
			speed, stop = parameter.EnemyRangedSpeed, parameter.EnemyRangedHoldDistance
		}

		delta := vmath.V3FSub(target, vmath.V3FFlat(pos))
		var vel vmath.Vec3F
		if vmath.V3FMag(delta) > stop {
			vel = vmath.V3FScale(vmath.V3FNormalize(delta), speed)
		}
		if err := ctx.Physics.SetVelocity(h, vel); err != nil {
			return fmt.Errorf("steer: %w", err)
		}
	}
	return nil
}
