package physics

import (
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// hitSphere is one targetable region of an enemy
type hitSphere struct {
	part   engine.SubPart
	center vmath.Vec3F
	radius float64
}

// enemySpheres returns head first so a tie resolves to the head
func enemySpheres(ground vmath.Vec3F) [2]hitSphere {
	return [2]hitSphere{
		{engine.SubPartHead, vmath.V3FAdd(ground, vmath.Vec3F{Y: parameter.EnemyHeadCenterY}), parameter.EnemyHeadRadius},
		{engine.SubPartBody, vmath.V3FAdd(ground, vmath.Vec3F{Y: parameter.EnemyBodyCenterY}), parameter.EnemyBodyRadius},
	}
}

// HeadCenter returns the head sphere center for an enemy standing at ground
func HeadCenter(ground vmath.Vec3F) vmath.Vec3F {
	return enemySpheres(ground)[0].center
}

// BodyCenter returns the torso sphere center for an enemy standing at ground
func BodyCenter(ground vmath.Vec3F) vmath.Vec3F {
	return enemySpheres(ground)[1].center
}

// CastRay intersects the ray with the given enemy targets only
// The nearest entry point wins; on equal distance the earlier target wins
func (w *World) CastRay(origin, dir vmath.Vec3F, maxDist float64, targets []core.Handle) (engine.RayHit, bool, error) {
	if err := w.check("ray"); err != nil {
		return engine.RayHit{}, false, err
	}

	dir = vmath.V3FNormalize(dir)
	if dir == (vmath.Vec3F{}) {
		return engine.RayHit{}, false, nil
	}

	var best engine.RayHit
	found := false

	for _, h := range targets {
		b, ok := w.bodies[h]
		if !ok || b.kind != engine.BodyEnemy {
			continue
		}
		for _, s := range enemySpheres(b.pos) {
			t, hit := vmath.RaySphere(origin, dir, s.center, s.radius)
			if !hit || t > maxDist {
				continue
			}
			if found && t >= best.Distance {
				continue
			}
			point := vmath.V3FAdd(origin, vmath.V3FScale(dir, t))
			best = engine.RayHit{
				Handle:   h,
				Part:     s.part,
				Point:    point,
				Normal:   vmath.SphereNormal(point, s.center),
				Distance: t,
			}
			found = true
		}
	}
	return best, found, nil
}
