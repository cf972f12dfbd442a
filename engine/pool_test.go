package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

func TestPoolSpawnAndRemoveEnemy(t *testing.T) {
	phys := newFakePhysics()
	pool := NewEntityPool(phys)

	h, err := pool.SpawnEnemy(EnemyRanged, vmath.Vec3F{Z: -20})
	if err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	e, ok := pool.Enemy(h)
	if !ok || e.Health != parameter.EnemyMaxHealth || e.HeadPart != SubPartHead || e.Kind != EnemyRanged {
		t.Fatalf("Enemy(h) = %+v, %v", e, ok)
	}
	if _, placed := phys.bodies[h]; !placed {
		t.Error("enemy body not placed")
	}

	if err := pool.RemoveEnemy(h); err != nil {
		t.Fatalf("RemoveEnemy: %v", err)
	}
	if _, ok := pool.Enemy(h); ok {
		t.Error("removed handle still resolves")
	}
	if _, placed := phys.bodies[h]; placed {
		t.Error("enemy body not released")
	}
	if len(pool.LivingEnemies()) != 0 || pool.EnemyCount() != 0 {
		t.Error("removed enemy still listed")
	}
}

func TestPoolSpawnFailureLeavesNoActor(t *testing.T) {
	phys := newFakePhysics()
	phys.fail = true
	pool := NewEntityPool(phys)

	_, err := pool.SpawnEnemy(EnemyMelee, vmath.Vec3F{})
	if !errors.Is(err, ErrCollaboratorUnavailable) {
		t.Fatalf("err = %v, want ErrCollaboratorUnavailable", err)
	}
	if pool.Len() != 0 || pool.EnemyCount() != 0 {
		t.Errorf("failed spawn left %d actors", pool.Len())
	}
}

func TestPoolRemoveFailureStillInvalidates(t *testing.T) {
	phys := newFakePhysics()
	pool := NewEntityPool(phys)
	h, _ := pool.SpawnEnemy(EnemyMelee, vmath.Vec3F{})

	phys.fail = true
	if err := pool.RemoveEnemy(h); !errors.Is(err, ErrCollaboratorUnavailable) {
		t.Errorf("err = %v, want ErrCollaboratorUnavailable", err)
	}
	if _, ok := pool.Enemy(h); ok {
		t.Error("handle must be invalid even when body release fails")
	}
}

func TestPoolLivingEnemiesStableOrder(t *testing.T) {
	pool := NewEntityPool(newFakePhysics())
	for i := 0; i < 4; i++ {
		pool.SpawnEnemy(EnemyMelee, vmath.Vec3F{X: float64(i)})
	}
	first := pool.LivingEnemies()
	second := pool.LivingEnemies()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order changed between calls: %v vs %v", first, second)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].Index() >= first[i].Index() {
			t.Errorf("not in index order: %v", first)
		}
	}
}

func TestPoolParticlesAgeAndPrune(t *testing.T) {
	pool := NewEntityPool(newFakePhysics())
	h := pool.SpawnParticle(ParticleBlood, vmath.Vec3F{Y: 1}, vmath.Vec3F{Y: 1})
	if pool.ParticleCount() != 1 {
		t.Fatalf("ParticleCount() = %d", pool.ParticleCount())
	}

	pool.AdvanceParticles(parameter.BloodParticleLifetime / 2)
	p, ok := pool.Particle(h)
	if !ok || p.IsDead() {
		t.Fatal("particle died early")
	}
	if p.Position.Y <= 1 {
		t.Errorf("particle did not move along normal: %+v", p.Position)
	}

	pool.AdvanceParticles(parameter.BloodParticleLifetime)
	if _, ok := pool.Particle(h); ok {
		t.Error("expired particle still live")
	}
	if pool.ParticleCount() != 0 {
		t.Errorf("ParticleCount() = %d after expiry", pool.ParticleCount())
	}
}

func TestPoolClearTransientKeepsPlayer(t *testing.T) {
	phys := newFakePhysics()
	pool := NewEntityPool(phys)
	player, err := pool.SpawnPlayer(parameter.PlayerSpawn)
	if err != nil {
		t.Fatal(err)
	}
	pool.SpawnEnemy(EnemyMelee, vmath.Vec3F{})
	pool.SpawnEnemy(EnemyRanged, vmath.Vec3F{})
	pool.SpawnParticle(ParticleBlood, vmath.Vec3F{}, vmath.Vec3F{Y: 1})

	pool.ClearTransient()
	if pool.EnemyCount() != 0 || pool.ParticleCount() != 0 {
		t.Errorf("enemies=%d particles=%d after ClearTransient", pool.EnemyCount(), pool.ParticleCount())
	}
	if pool.Player() != player || pool.Len() != 1 {
		t.Error("player should survive ClearTransient")
	}

	pool.Clear()
	if pool.Len() != 0 || !pool.Player().IsNil() {
		t.Error("Clear should release the player")
	}
	if len(phys.bodies) != 0 {
		t.Errorf("%d bodies leaked", len(phys.bodies))
	}
}

func TestPoolRespawnPlayerReplacesOld(t *testing.T) {
	phys := newFakePhysics()
	pool := NewEntityPool(phys)
	first, _ := pool.SpawnPlayer(parameter.PlayerSpawn)
	second, _ := pool.SpawnPlayer(parameter.PlayerSpawn)

	if first == second {
		t.Error("respawned player reused the stale handle")
	}
	if len(phys.bodies) != 1 {
		t.Errorf("bodies = %d, want 1", len(phys.bodies))
	}
}
