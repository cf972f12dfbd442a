package engine

import (
	"fmt"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// fakePhysics records placement and removal without simulating anything
type fakePhysics struct {
	bodies  map[core.Handle]vmath.Vec3F
	removed []core.Handle
	fail    bool

	failRemove bool // Only RemoveBody fails
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[core.Handle]vmath.Vec3F)}
}

func (f *fakePhysics) err(op string) error {
	if f.fail {
		return fmt.Errorf("%s: %w", op, ErrCollaboratorUnavailable)
	}
	return nil
}

func (f *fakePhysics) Place(h core.Handle, _ BodyKind, pos vmath.Vec3F) error {
	if err := f.err("place"); err != nil {
		return err
	}
	f.bodies[h] = pos
	return nil
}

func (f *fakePhysics) SetVelocity(core.Handle, vmath.Vec3F) error { return f.err("velocity") }

func (f *fakePhysics) Velocity(core.Handle) (vmath.Vec3F, error) {
	return vmath.Vec3F{}, f.err("velocity")
}

func (f *fakePhysics) Position(h core.Handle) (vmath.Vec3F, error) {
	return f.bodies[h], f.err("position")
}

func (f *fakePhysics) CastRay(vmath.Vec3F, vmath.Vec3F, float64, []core.Handle) (RayHit, bool, error) {
	return RayHit{}, false, f.err("ray")
}

func (f *fakePhysics) BodyContacts(core.Handle) ([]Contact, error) { return nil, f.err("contacts") }

func (f *fakePhysics) RemoveBody(h core.Handle) error {
	delete(f.bodies, h)
	f.removed = append(f.removed, h)
	if f.failRemove {
		return fmt.Errorf("remove: %w", ErrCollaboratorUnavailable)
	}
	return f.err("remove")
}

func (f *fakePhysics) Step(float64) error { return f.err("step") }
