package physics

import (
	"fmt"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// body is one simulated collider
// Player position is the sphere center; enemy position is the ground point under its feet
type body struct {
	kind     engine.BodyKind
	pos      vmath.Vec3F
	vel      vmath.Vec3F
	grounded bool
}

// World is an in-memory scene implementing engine.Physics
// Not safe for concurrent use; the game loop owns it
type World struct {
	bodies    map[core.Handle]*body
	available bool
}

// NewWorld creates an empty, available world
func NewWorld() *World {
	return &World{
		bodies:    make(map[core.Handle]*body),
		available: true,
	}
}

// SetAvailable toggles collaborator availability; while false every call fails
func (w *World) SetAvailable(ok bool) {
	w.available = ok
}

func (w *World) check(op string) error {
	if !w.available {
		return fmt.Errorf("physics %s: %w", op, engine.ErrCollaboratorUnavailable)
	}
	return nil
}

func (w *World) lookup(op string, h core.Handle) (*body, error) {
	if err := w.check(op); err != nil {
		return nil, err
	}
	b, ok := w.bodies[h]
	if !ok {
		return nil, fmt.Errorf("physics %s %s: unknown body: %w", op, h, engine.ErrCollaboratorUnavailable)
	}
	return b, nil
}

// Place creates or moves a body
func (w *World) Place(h core.Handle, kind engine.BodyKind, pos vmath.Vec3F) error {
	if err := w.check("place"); err != nil {
		return err
	}
	if kind == engine.BodyEnemy {
		pos.Y = 0
	}
	w.bodies[h] = &body{kind: kind, pos: pos}
	return nil
}

func (w *World) SetVelocity(h core.Handle, v vmath.Vec3F) error {
	b, err := w.lookup("set velocity", h)
	if err != nil {
		return err
	}
	b.vel = v
	return nil
}

func (w *World) Velocity(h core.Handle) (vmath.Vec3F, error) {
	b, err := w.lookup("velocity", h)
	if err != nil {
		return vmath.Vec3F{}, err
	}
	return b.vel, nil
}

func (w *World) Position(h core.Handle) (vmath.Vec3F, error) {
	b, err := w.lookup("position", h)
	if err != nil {
		return vmath.Vec3F{}, err
	}
	return b.pos, nil
}

// RemoveBody drops a body; removing an unknown body is a no-op
func (w *World) RemoveBody(h core.Handle) error {
	if err := w.check("remove"); err != nil {
		return err
	}
	delete(w.bodies, h)
	return nil
}

// Len returns the number of bodies
func (w *World) Len() int {
	return len(w.bodies)
}

// EachBody visits every body; order is unspecified
func (w *World) EachBody(fn func(h core.Handle, kind engine.BodyKind, pos vmath.Vec3F)) {
	for h, b := range w.bodies {
		fn(h, b.kind, b.pos)
	}
}
