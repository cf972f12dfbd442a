package engine

import (
	"errors"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// ErrCollaboratorUnavailable wraps every failed physics/render call
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// BodyKind selects collision geometry for a placed body
type BodyKind int

const (
	BodyPlayer BodyKind = iota // Capsule-ish sphere, gravity, ground contacts
	BodyEnemy                  // Body sphere plus head sphere, ray targetable
)

// SubPart identifies the region of an enemy struck by a ray
type SubPart int

const (
	SubPartNone SubPart = iota
	SubPartBody
	SubPartHead
)

func (p SubPart) String() string {
	switch p {
	case SubPartBody:
		return "body"
	case SubPartHead:
		return "head"
	}
	return "none"
}

// RayHit is the nearest intersection reported by CastRay
type RayHit struct {
	Handle   core.Handle
	Part     SubPart
	Point    vmath.Vec3F
	Normal   vmath.Vec3F
	Distance float64
}

// Contact is one touching surface reported for a body
type Contact struct {
	Other  core.Handle // NilHandle for static ground
	Normal vmath.Vec3F
	Ground bool
}

// Physics is the scene/physics collaborator consumed by the core
// Positions belong to the collaborator; the core refers to bodies only by handle
// Every method may fail; failures wrap ErrCollaboratorUnavailable
type Physics interface {
	Place(h core.Handle, kind BodyKind, pos vmath.Vec3F) error
	SetVelocity(h core.Handle, v vmath.Vec3F) error
	Velocity(h core.Handle) (vmath.Vec3F, error)
	Position(h core.Handle) (vmath.Vec3F, error)

	// CastRay tests only the given targets and returns the nearest hit within maxDist
	CastRay(origin, dir vmath.Vec3F, maxDist float64, targets []core.Handle) (RayHit, bool, error)

	BodyContacts(h core.Handle) ([]Contact, error)
	RemoveBody(h core.Handle) error
	Step(dt float64) error
}
