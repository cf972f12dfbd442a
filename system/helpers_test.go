package system

import (
	"testing"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// stateDamager applies damage straight to match state, entering GameOver at zero
type stateDamager struct {
	state *engine.MatchState
	total int
}

func (d *stateDamager) TakeDamage(amount int) {
	applied, dead := d.state.ApplyDamage(amount)
	d.total += applied
	if dead {
		d.state.Transition(engine.PhaseGameOver)
	}
}

type testRig struct {
	ctx    *engine.Context
	world  *physics.World
	damage *stateDamager
}

func newTestRig(t *testing.T, seed uint64) *testRig {
	t.Helper()

	world := physics.NewWorld()
	state := engine.NewMatchState()
	state.Phase = engine.PhasePlaying
	state.Reset(parameter.MatchDefaultDuration)
	weapon := engine.NewWeapon()
	dmg := &stateDamager{state: &state}

	ctx := &engine.Context{
		State:   &state,
		Pool:    engine.NewEntityPool(world),
		Weapon:  &weapon,
		Physics: world,
		Events:  event.NewEventQueue(),
		Rand:    vmath.NewFastRand(seed),
		Config:  config.Default(),
		Damage:  dmg,
	}
	if _, err := ctx.Pool.SpawnPlayer(vmath.Vec3F{Y: parameter.PlayerRadius}); err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	return &testRig{ctx: ctx, world: world, damage: dmg}
}

// eye returns the player view origin
func (r *testRig) eye(t *testing.T) vmath.Vec3F {
	t.Helper()
	pos, err := r.ctx.PlayerPosition()
	if err != nil {
		t.Fatal(err)
	}
	return vmath.V3FAdd(pos, vmath.Vec3F{Y: parameter.PlayerEyeHeight})
}

// sounds drains the queue and returns the requested sounds in order
func (r *testRig) sounds() []core.SoundEvent {
	var out []core.SoundEvent
	for _, ev := range r.ctx.Events.Consume() {
		if ev.Type == event.EventSoundRequest {
			out = append(out, ev.Payload.(*event.SoundRequestPayload).Sound)
		}
	}
	return out
}
