package system

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/vmath"
)

func TestResolveFireHeadshotKill(t *testing.T) {
	r := newTestRig(t, 1)
	ground := vmath.Vec3F{Z: -10}
	h, _ := r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, ground)

	eye := r.eye(t)
	res, err := NewCombatResolver().ResolveFire(r.ctx, eye, vmath.V3FSub(physics.HeadCenter(ground), eye))
	if err != nil {
		t.Fatal(err)
	}

	if !res.Fired || !res.Hit || !res.Headshot || !res.Killed || res.Damage != parameter.CombatDamageHeadshot {
		t.Fatalf("result = %+v", res)
	}
	s := r.ctx.State
	if s.Score != parameter.ScoreHeadshot+parameter.ScoreKill || s.HeadshotKills != 1 || s.EnemiesKilled != 1 {
		t.Errorf("state score=%d headshots=%d kills=%d", s.Score, s.HeadshotKills, s.EnemiesKilled)
	}
	if _, ok := r.ctx.Pool.Enemy(h); ok {
		t.Error("killed enemy still in pool")
	}
	for _, live := range r.ctx.Pool.LivingEnemies() {
		if live == h {
			t.Error("killed enemy listed as living")
		}
	}

	sounds := r.sounds()
	if len(sounds) != 2 || sounds[0] != core.SoundShoot || sounds[1] != core.SoundHeadshot {
		t.Errorf("sounds = %v, want [shoot headshot]", sounds)
	}
	if r.ctx.Pool.ParticleCount() != parameter.BloodParticleCount {
		t.Errorf("blood particles = %d", r.ctx.Pool.ParticleCount())
	}
}

func TestResolveFireBodyShots(t *testing.T) {
	r := newTestRig(t, 1)
	r.ctx.Config.BloodEffectsEnabled = false
	ground := vmath.Vec3F{Z: -10}
	h, _ := r.ctx.Pool.SpawnEnemy(engine.EnemyRanged, ground)
	resolver := NewCombatResolver()

	fire := func(at time.Duration) FireResult {
		r.ctx.State.Elapsed = at.Seconds()
		eye := r.eye(t)
		res, err := resolver.ResolveFire(r.ctx, eye, vmath.V3FSub(physics.BodyCenter(ground), eye))
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	// 40 + 40 leaves 20, third body shot kills
	for i := 0; i < 2; i++ {
		res := fire(time.Duration(i) * time.Second)
		if !res.Hit || res.Headshot || res.Killed || res.Damage != parameter.CombatDamageBody {
			t.Fatalf("shot %d = %+v", i, res)
		}
	}
	e, _ := r.ctx.Pool.Enemy(h)
	if e.Health != parameter.EnemyMaxHealth-2*parameter.CombatDamageBody {
		t.Errorf("health = %d", e.Health)
	}

	res := fire(3 * time.Second)
	if !res.Killed {
		t.Fatalf("third body shot should kill: %+v", res)
	}
	want := 3*parameter.ScoreBodyHit + parameter.ScoreKill
	if r.ctx.State.Score != want || r.ctx.State.HeadshotKills != 0 {
		t.Errorf("score = %d, want %d", r.ctx.State.Score, want)
	}
	if r.ctx.Pool.ParticleCount() != 0 {
		t.Error("blood disabled but particles spawned")
	}

	// Nothing left to hit: round is spent, no extra score
	res = fire(4 * time.Second)
	if !res.Fired || res.Hit || r.ctx.State.Score != want {
		t.Errorf("empty field shot = %+v, score %d", res, r.ctx.State.Score)
	}
}

func TestResolveFireRejected(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(w *engine.Weapon)
	}{
		{"cooldown", func(w *engine.Weapon) { w.LastFire = 0 }},
		{"empty magazine", func(w *engine.Weapon) { w.RoundsInMagazine = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t, 1)
			r.ctx.State.Elapsed = 0.05
			tt.prepare(r.ctx.Weapon)
			rounds := r.ctx.Weapon.RoundsInMagazine

			res, err := NewCombatResolver().ResolveFire(r.ctx, r.eye(t), vmath.Vec3F{Z: -1})
			if err != nil || res.Fired {
				t.Errorf("res=%+v err=%v, want silent no-op", res, err)
			}
			if r.ctx.Weapon.RoundsInMagazine != rounds {
				t.Error("rejected shot consumed ammo")
			}
			if len(r.sounds()) != 0 {
				t.Error("rejected shot emitted sound")
			}
		})
	}
}

func TestResolveFireCollaboratorFailure(t *testing.T) {
	r := newTestRig(t, 1)
	r.ctx.Pool.SpawnEnemy(engine.EnemyMelee, vmath.Vec3F{Z: -10})
	eye := r.eye(t)
	r.world.SetAvailable(false)

	_, err := NewCombatResolver().ResolveFire(r.ctx, eye, vmath.Vec3F{Z: -1})
	if !errors.Is(err, engine.ErrCollaboratorUnavailable) {
		t.Errorf("err = %v, want ErrCollaboratorUnavailable", err)
	}
	if r.ctx.State.Score != 0 {
		t.Error("failed ray must not score")
	}
}
