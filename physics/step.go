package physics

import (
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Step integrates every body by dt seconds
// Player bodies fall under gravity and land on the ground plane; enemies walk on it
func (w *World) Step(dt float64) error {
	if err := w.check("step"); err != nil {
		return err
	}
	if dt <= 0 {
		return nil
	}

	for _, b := range w.bodies {
		switch b.kind {
		case engine.BodyPlayer:
			b.vel.Y -= parameter.Gravity * dt
			b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(b.vel, dt))
			b.grounded = false
			if b.pos.Y <= parameter.PlayerRadius {
				b.pos.Y = parameter.PlayerRadius
				if b.vel.Y < 0 {
					b.vel.Y = 0
				}
				b.grounded = true
			}
			b.pos.X = vmath.Clamp(b.pos.X, -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent)
			b.pos.Z = vmath.Clamp(b.pos.Z, -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent)
		case engine.BodyEnemy:
			b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(vmath.V3FFlat(b.vel), dt))
		}
	}
	return nil
}

// BodyContacts reports the ground plane and any overlapping enemy bodies
func (w *World) BodyContacts(h core.Handle) ([]engine.Contact, error) {
	b, err := w.lookup("contacts", h)
	if err != nil {
		return nil, err
	}

	var contacts []engine.Contact
	if b.grounded || (b.kind == engine.BodyEnemy) {
		contacts = append(contacts, engine.Contact{
			Normal: vmath.Vec3F{Y: 1},
			Ground: true,
		})
	}

	if b.kind != engine.BodyPlayer {
		return contacts, nil
	}
	for other, ob := range w.bodies {
		if other == h || ob.kind != engine.BodyEnemy {
			continue
		}
		center := BodyCenter(ob.pos)
		reach := parameter.PlayerRadius + parameter.EnemyBodyRadius
		if vmath.V3FDist(b.pos, center) <= reach {
			contacts = append(contacts, engine.Contact{
				Other:  other,
				Normal: vmath.SphereNormal(b.pos, center),
			})
		}
	}
	return contacts, nil
}
