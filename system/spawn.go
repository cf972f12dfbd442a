package system

import (
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// SpawnDirector adds enemies under accelerating time pressure and advances waves
type SpawnDirector struct{}

func NewSpawnDirector() *SpawnDirector {
	return &SpawnDirector{}
}

func (s *SpawnDirector) Name() string {
	return "spawn"
}

// SpawnProbability is the chance of one spawn within dt
// Pressure grows as totalTime/(timeRemaining+1) while the clock runs down
func SpawnProbability(state *engine.MatchState, scale, dt float64) float64 {
	pressure := state.TotalTime / (state.TimeRemaining + 1)
	return vmath.HazardProbability(parameter.SpawnRateScale*pressure*scale, dt)
}

// Update runs one spawn trial, then the wave check
func (s *SpawnDirector) Update(ctx *engine.Context, dt float64) error {
	state := ctx.State

	if ctx.Pool.EnemyCount() < state.SpawnCap() {
		p := SpawnProbability(state, ctx.Config.Difficulty.Profile().SpawnScale, dt)
		if ctx.Rand.Chance(p) {
			if err := s.spawn(ctx); err != nil {
				return err
			}
		}
	}

	s.advanceWave(ctx)
	return nil
}

func (s *SpawnDirector) spawn(ctx *engine.Context) error {
	center, err := ctx.PlayerPosition()
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}

	angle := ctx.Rand.Range(0, 2*math.Pi)
	dist := ctx.Rand.Range(parameter.SpawnRingInner, parameter.SpawnRingOuter)
	pos := vmath.Vec3F{
		X: center.X + math.Cos(angle)*dist,
		Z: center.Z + math.Sin(angle)*dist,
	}

	kind := s.pickKind(ctx)
	if _, err := ctx.Pool.SpawnEnemy(kind, pos); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	ctx.State.EnemiesSpawned++
	return nil
}

// pickKind maps the configured enemy mode to a kind; mixed is a fair coin
func (s *SpawnDirector) pickKind(ctx *engine.Context) engine.EnemyKind {
	switch ctx.Config.EnemyMode {
	case config.EnemyModeZombie:
		return engine.EnemyMelee
	case config.EnemyModeHuman:
		return engine.EnemyRanged
	}
	if ctx.Rand.Chance(0.5) {
		return engine.EnemyRanged
	}
	return engine.EnemyMelee
}

// advanceWave increments the wave once the quota is exceeded and the field is clear
func (s *SpawnDirector) advanceWave(ctx *engine.Context) {
	state := ctx.State
	if state.EnemiesSpawned > parameter.SpawnPerWaveQuota*state.Wave && ctx.Pool.EnemyCount() == 0 {
		state.Wave++
		ctx.Emit(event.EventWaveAdvanced, &event.WaveAdvancedPayload{Wave: state.Wave})
	}
}

// Cull removes enemies beyond the despawn radius without scoring them
func (s *SpawnDirector) Cull(ctx *engine.Context) error {
	center, err := ctx.PlayerPosition()
	if err != nil {
		return fmt.Errorf("cull: %w", err)
	}
	for _, h := range ctx.Pool.LivingEnemies() {
		pos, err := ctx.Physics.Position(h)
		if err != nil {
			return fmt.Errorf("cull: %w", err)
		}
		if vmath.V3FDist(vmath.V3FFlat(pos), vmath.V3FFlat(center)) > parameter.DespawnRadius {
			if err := ctx.Pool.RemoveEnemy(h); err != nil {
				log.Printf("[Spawn] %v", err)
			}
		}
	}
	return nil
}
