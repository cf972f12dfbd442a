package system

import (
	"fmt"
	"log"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// FireResult describes the outcome of one fire command
// Fired=false means the command was ignored (cooldown or empty magazine)
type FireResult struct {
	Fired    bool
	Hit      bool
	Target   core.Handle
	Part     engine.SubPart
	Headshot bool
	Damage   int
	Killed   bool
	Point    vmath.Vec3F
}

// CombatResolver turns a fire command into ammo use, a hit test, damage and score
type CombatResolver struct{}

func NewCombatResolver() *CombatResolver {
	return &CombatResolver{}
}

func (c *CombatResolver) Name() string {
	return "combat"
}

// ResolveFire fires one round along direction from origin
// Enemy health and removal both go through the pool
func (c *CombatResolver) ResolveFire(ctx *engine.Context, origin, direction vmath.Vec3F) (FireResult, error) {
	if !ctx.Weapon.TryFire(ctx.Now()) {
		return FireResult{}, nil
	}
	ctx.EmitSound(core.SoundShoot)
	result := FireResult{Fired: true}

	targets := ctx.Pool.LivingEnemies()
	if len(targets) == 0 {
		return result, nil
	}

	hit, ok, err := ctx.Physics.CastRay(origin, direction, parameter.WeaponRange, targets)
	if err != nil {
		return result, fmt.Errorf("resolve fire: %w", err)
	}
	if !ok {
		return result, nil
	}

	enemy, ok := ctx.Pool.Enemy(hit.Handle)
	if !ok {
		return result, nil
	}

	result.Hit = true
	result.Target = hit.Handle
	result.Part = hit.Part
	result.Point = hit.Point
	result.Headshot = hit.Part == enemy.HeadPart

	if result.Headshot {
		result.Damage = parameter.CombatDamageHeadshot
		ctx.State.Score += parameter.ScoreHeadshot
		ctx.State.HeadshotKills++
		ctx.EmitSound(core.SoundHeadshot)
	} else {
		result.Damage = parameter.CombatDamageBody
		ctx.State.Score += parameter.ScoreBodyHit
		ctx.EmitSound(core.SoundHit)
	}

	remaining, _ := ctx.Pool.DamageEnemy(hit.Handle, result.Damage)

	if ctx.Config.BloodEffectsEnabled {
		c.spawnBlood(ctx, hit.Point, hit.Normal)
	}

	if remaining <= 0 {
		result.Killed = true
		ctx.State.Score += parameter.ScoreKill
		ctx.State.EnemiesKilled++
		ctx.Emit(event.EventEnemyKilled, &event.EnemyKilledPayload{Enemy: hit.Handle, Headshot: result.Headshot})

		// Membership is released even if the body release fails; the kill stands
		if err := ctx.Pool.RemoveEnemy(hit.Handle); err != nil {
			log.Printf("[Combat] %v", err)
		}
	}

	return result, nil
}

// spawnBlood emits a burst of particles around the surface normal
func (c *CombatResolver) spawnBlood(ctx *engine.Context, point, normal vmath.Vec3F) {
	jitter := parameter.BloodParticleSpread / parameter.BloodParticleSpeed
	for i := 0; i < parameter.BloodParticleCount; i++ {
		dir := vmath.V3FAdd(normal, vmath.Vec3F{
			X: ctx.Rand.Range(-jitter, jitter),
			Y: ctx.Rand.Range(0, jitter),
			Z: ctx.Rand.Range(-jitter, jitter),
		})
		ctx.Pool.SpawnParticle(engine.ParticleBlood, point, dir)
	}
}
