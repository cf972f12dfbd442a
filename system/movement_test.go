package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

func TestMoveIntentVector(t *testing.T) {
	if v := (MoveIntent{}).Vector(); v != (vmath.Vec3F{}) {
		t.Errorf("no intent = %+v", v)
	}

	v := MoveIntent{Forward: true, Right: true}.Vector()
	if math.Abs(vmath.V3FMag(v)-1) > 1e-9 {
		t.Errorf("diagonal not normalized: %+v", v)
	}

	// Facing +X (yaw -pi/2), forward moves along +X
	v = MoveIntent{Forward: true, Yaw: -math.Pi / 2}.Vector()
	if math.Abs(v.X-1) > 1e-9 || math.Abs(v.Z) > 1e-9 {
		t.Errorf("rotated forward = %+v", v)
	}
}

func TestApplyPlayerSpeedAndDamping(t *testing.T) {
	r := newTestRig(t, 1)
	m := NewMovementSystem()
	player := r.ctx.Pool.Player()

	if err := m.ApplyPlayer(r.ctx, MoveIntent{Forward: true}, true); err != nil {
		t.Fatal(err)
	}
	vel, _ := r.world.Velocity(player)
	if math.Abs(vmath.V3FMag(vmath.V3FFlat(vel))-parameter.PlayerMoveSpeed) > 1e-9 {
		t.Errorf("speed = %v", vmath.V3FMag(vel))
	}

	m.ApplyPlayer(r.ctx, MoveIntent{}, true)
	damped, _ := r.world.Velocity(player)
	if math.Abs(damped.Z-vel.Z*parameter.PlayerVelocityDamping) > 1e-9 {
		t.Errorf("damped Z = %v, want %v", damped.Z, vel.Z*parameter.PlayerVelocityDamping)
	}
}

func TestApplyPlayerJumpRequiresGround(t *testing.T) {
	r := newTestRig(t, 1)
	m := NewMovementSystem()
	player := r.ctx.Pool.Player()

	m.ApplyPlayer(r.ctx, MoveIntent{Jump: true}, false)
	if vel, _ := r.world.Velocity(player); vel.Y != 0 {
		t.Errorf("airborne jump applied: %+v", vel)
	}

	m.ApplyPlayer(r.ctx, MoveIntent{Jump: true}, true)
	if vel, _ := r.world.Velocity(player); vel.Y != parameter.PlayerJumpVelocity {
		t.Errorf("grounded jump Y = %v", vel.Y)
	}
}

func TestSteerEnemies(t *testing.T) {
	r := newTestRig(t, 1)
	melee, _ := r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, vmath.Vec3F{Z: -20})
	holding, _ := r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, vmath.Vec3F{X: 10})

	if err := NewMovementSystem().SteerEnemies(r.ctx); err != nil {
		t.Fatal(err)
	}

	vel, _ := r.world.Velocity(melee)
	if math.Abs(vel.Z-parameter.EnemyMeleeSpeed) > 1e-9 {
		t.Errorf("melee velocity = %+v, want toward player at %v", vel, parameter.EnemyMeleeSpeed)
	}
	if vel, _ := r.world.Velocity(holding); vel != (vmath.Vec3F{}) {
		t.Errorf("ranged inside hold distance should stand still, got %+v", vel)
	}
}
