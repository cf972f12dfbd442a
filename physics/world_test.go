package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

var (
	playerH = core.NewHandle(0, 1)
	enemyA  = core.NewHandle(1, 1)
	enemyB  = core.NewHandle(2, 1)
)

func TestCastRayHeadAndBody(t *testing.T) {
	w := NewWorld()
	w.Place(enemyA, engine.BodyEnemy, vmath.Vec3F{Z: -10})
	origin := vmath.Vec3F{Y: 1.5}

	tests := []struct {
		name   string
		target vmath.Vec3F
		part   engine.SubPart
	}{
		{"head", HeadCenter(vmath.Vec3F{Z: -10}), engine.SubPartHead},
		{"body", BodyCenter(vmath.Vec3F{Z: -10}), engine.SubPartBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := vmath.V3FSub(tt.target, origin)
			hit, ok, err := w.CastRay(origin, dir, parameter.WeaponRange, []core.Handle{enemyA})
			if err != nil || !ok {
				t.Fatalf("CastRay = %v, %v", ok, err)
			}
			if hit.Part != tt.part || hit.Handle != enemyA {
				t.Errorf("hit %s on %v, want %s", hit.Part, hit.Handle, tt.part)
			}
			if math.Abs(vmath.V3FMag(hit.Normal)-1) > 1e-9 {
				t.Errorf("normal not unit: %+v", hit.Normal)
			}
		})
	}
}

func TestCastRayRestrictedToTargets(t *testing.T) {
	w := NewWorld()
	w.Place(enemyA, engine.BodyEnemy, vmath.Vec3F{Z: -10})
	w.Place(enemyB, engine.BodyEnemy, vmath.Vec3F{Z: -20})
	origin := vmath.Vec3F{Y: parameter.EnemyBodyCenterY}
	dir := vmath.Vec3F{Z: -1}

	hit, ok, _ := w.CastRay(origin, dir, 100, []core.Handle{enemyA, enemyB})
	if !ok || hit.Handle != enemyA {
		t.Errorf("nearest should be enemyA, got %v", hit.Handle)
	}

	hit, ok, _ = w.CastRay(origin, dir, 100, []core.Handle{enemyB})
	if !ok || hit.Handle != enemyB {
		t.Errorf("restricted ray should hit enemyB, got %v", hit.Handle)
	}

	if _, ok, _ := w.CastRay(origin, dir, 5, []core.Handle{enemyA}); ok {
		t.Error("hit beyond maxDist")
	}
	if _, ok, _ := w.CastRay(origin, dir, 100, nil); ok {
		t.Error("hit with no targets")
	}
}

func TestStepGravityAndGrounding(t *testing.T) {
	w := NewWorld()
	w.Place(playerH, engine.BodyPlayer, parameter.PlayerSpawn)

	contacts, _ := w.BodyContacts(playerH)
	if len(contacts) != 0 {
		t.Errorf("airborne player has %d contacts", len(contacts))
	}

	for i := 0; i < 120; i++ {
		if err := w.Step(parameter.PhysicsFixedStep); err != nil {
			t.Fatal(err)
		}
	}

	pos, _ := w.Position(playerH)
	if math.Abs(pos.Y-parameter.PlayerRadius) > 1e-9 {
		t.Errorf("player resting at Y=%v, want %v", pos.Y, parameter.PlayerRadius)
	}
	contacts, _ = w.BodyContacts(playerH)
	if len(contacts) == 0 || !contacts[0].Ground {
		t.Error("landed player should report ground contact")
	}
}

func TestStepEnemyStaysOnGround(t *testing.T) {
	w := NewWorld()
	w.Place(enemyA, engine.BodyEnemy, vmath.Vec3F{Y: 5})
	w.SetVelocity(enemyA, vmath.Vec3F{X: 1, Y: 3})
	w.Step(1)

	pos, _ := w.Position(enemyA)
	if pos.Y != 0 || math.Abs(pos.X-1) > 1e-9 {
		t.Errorf("enemy at %+v, want (1,0,0)", pos)
	}
}

func TestPlayerEnemyContact(t *testing.T) {
	w := NewWorld()
	w.Place(playerH, engine.BodyPlayer, vmath.Vec3F{Y: parameter.PlayerRadius})
	w.Place(enemyA, engine.BodyEnemy, vmath.Vec3F{Z: -0.5})
	w.Step(parameter.PhysicsFixedStep)

	contacts, _ := w.BodyContacts(playerH)
	found := false
	for _, c := range contacts {
		if c.Other == enemyA {
			found = true
		}
	}
	if !found {
		t.Errorf("expected enemy contact, got %+v", contacts)
	}
}

func TestUnavailable(t *testing.T) {
	w := NewWorld()
	w.Place(playerH, engine.BodyPlayer, vmath.Vec3F{})
	w.SetAvailable(false)

	if err := w.Step(0.1); !errors.Is(err, engine.ErrCollaboratorUnavailable) {
		t.Errorf("Step err = %v", err)
	}
	if _, _, err := w.CastRay(vmath.Vec3F{}, vmath.Vec3F{Z: -1}, 10, nil); !errors.Is(err, engine.ErrCollaboratorUnavailable) {
		t.Errorf("CastRay err = %v", err)
	}
	if _, err := w.Position(playerH); !errors.Is(err, engine.ErrCollaboratorUnavailable) {
		t.Errorf("Position err = %v", err)
	}

	w.SetAvailable(true)
	if _, err := w.Position(playerH); err != nil {
		t.Errorf("Position after recovery: %v", err)
	}
}

func TestUnknownBody(t *testing.T) {
	w := NewWorld()
	if _, err := w.Position(enemyA); !errors.Is(err, engine.ErrCollaboratorUnavailable) {
		t.Errorf("unknown body err = %v", err)
	}
	if err := w.RemoveBody(enemyA); err != nil {
		t.Errorf("removing unknown body should be a no-op: %v", err)
	}
}

// World must satisfy the collaborator contract
var _ engine.Physics = (*World)(nil)
