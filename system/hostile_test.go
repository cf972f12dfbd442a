package system

import (
	"testing"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// certain is a dt long enough that every hazard trial succeeds
const certain = 1e4

func TestHostileRangedWithinRadius(t *testing.T) {
	r := newTestRig(t, 7)
	r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, vmath.Vec3F{Z: -10})

	if err := NewHostileSystem().Update(r.ctx, certain); err != nil {
		t.Fatal(err)
	}
	if r.damage.total != parameter.HostileRangedDamage {
		t.Errorf("damage = %d, want %d", r.damage.total, parameter.HostileRangedDamage)
	}
	sounds := r.sounds()
	if len(sounds) != 1 || sounds[0] != core.SoundEnemyShoot {
		t.Errorf("sounds = %v", sounds)
	}
}

func TestHostileMeleeOnlyInReach(t *testing.T) {
	r := newTestRig(t, 7)
	r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, vmath.Vec3F{Z: -2})
	r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, vmath.Vec3F{Z: -10})

	NewHostileSystem().Update(r.ctx, certain)
	if r.damage.total != parameter.HostileMeleeDamage {
		t.Errorf("damage = %d, want one melee hit of %d", r.damage.total, parameter.HostileMeleeDamage)
	}
	sounds := r.sounds()
	if len(sounds) != 1 || sounds[0] != core.SoundHurt {
		t.Errorf("sounds = %v", sounds)
	}
}

func TestHostileOutOfRange(t *testing.T) {
	r := newTestRig(t, 7)
	r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, vmath.Vec3F{Z: -parameter.HostileRangedRadius - 5})

	NewHostileSystem().Update(r.ctx, certain)
	if r.damage.total != 0 {
		t.Errorf("damage = %d from out of range enemy", r.damage.total)
	}
}

func TestHostileStopsAfterDeath(t *testing.T) {
	r := newTestRig(t, 7)
	r.ctx.State.Health = 10
	r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, vmath.Vec3F{Z: -10})
	r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, vmath.Vec3F{Z: 10})

	NewHostileSystem().Update(r.ctx, certain)
	if r.ctx.State.Health != 0 || r.ctx.State.Phase != engine.PhaseGameOver {
		t.Errorf("health=%d phase=%s", r.ctx.State.Health, r.ctx.State.Phase)
	}
	if r.damage.total != 10 {
		t.Errorf("applied %d, want 10", r.damage.total)
	}
}

func TestHostileDifficultyScalesDamage(t *testing.T) {
	r := newTestRig(t, 7)
	r.ctx.Config.Difficulty = config.DifficultyHard
	r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, vmath.Vec3F{Z: -2})

	NewHostileSystem().Update(r.ctx, certain)
	want := config.DifficultyHard.Profile().ScaleDamage(parameter.HostileMeleeDamage)
	if r.damage.total != want {
		t.Errorf("damage = %d, want %d", r.damage.total, want)
	}
}

func TestHostileRateIsFrameRateIndependent(t *testing.T) {
	// Over one simulated minute the expected hit count must not depend on dt
	expected := func(dt float64) float64 {
		p := vmath.HazardProbability(parameter.HostileRangedRate, dt)
		return p * (60 / dt)
	}
	a, b := expected(1.0/30), expected(1.0/144)
	if d := a - b; d > 0.01 || d < -0.01 {
		t.Errorf("expected hits differ: 30fps=%v 144fps=%v", a, b)
	}
}
