package system

import (
	"fmt"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// HostileSystem runs the per-enemy attack trials against the player
// Each enemy gets an independent ranged trial (ranged kind only) and melee trial per frame
// Trials are hazard rates, so the attack frequency does not depend on frame rate
type HostileSystem struct{}

func NewHostileSystem() *HostileSystem {
	return &HostileSystem{}
}

func (s *HostileSystem) Name() string {
	return "hostile"
}

func (s *HostileSystem) Update(ctx *engine.Context, dt float64) error {
	if dt <= 0 || ctx.Pool.EnemyCount() == 0 {
		return nil
	}

	playerPos, err := ctx.PlayerPosition()
	if err != nil {
		return fmt.Errorf("hostile: %w", err)
	}

	profile := ctx.Config.Difficulty.Profile()
	rangedP := vmath.HazardProbability(parameter.HostileRangedRate*profile.HostileRateScale, dt)
	meleeP := vmath.HazardProbability(parameter.HostileMeleeRate*profile.HostileRateScale, dt)

	for _, h := range ctx.Pool.LivingEnemies() {
		if ctx.State.Phase != engine.PhasePlaying {
			return nil
		}
		enemy, ok := ctx.Pool.Enemy(h)
		if !ok {
			continue
		}
		pos, err := ctx.Physics.Position(h)
		if err != nil {
			return fmt.Errorf("hostile: %w", err)
		}
		dist := vmath.V3FDist(vmath.V3FFlat(pos), vmath.V3FFlat(playerPos))

		// Roll before the range check; the random stream must not depend on positions
		if enemy.Kind == engine.EnemyRanged {
			if ctx.Rand.Chance(rangedP) && dist < parameter.HostileRangedRadius {
				ctx.Damage.TakeDamage(profile.ScaleDamage(parameter.HostileRangedDamage))
				ctx.EmitSound(core.SoundEnemyShoot)
			}
		}
		if ctx.Rand.Chance(meleeP) && dist < parameter.HostileMeleeRadius {
			ctx.Damage.TakeDamage(profile.ScaleDamage(parameter.HostileMeleeDamage))
			ctx.EmitSound(core.SoundHurt)
		}
	}
	return nil
}
