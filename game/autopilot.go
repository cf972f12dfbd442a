package game

import (
	"math"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Autopilot produces input that aims at the nearest living enemy's head and fires
// It reloads on an empty magazine and otherwise stands still
func (g *Game) Autopilot() Input {
	var in Input
	if g.state.Phase != engine.PhasePlaying {
		return in
	}

	pos, err := g.physics.Position(g.pool.Player())
	if err != nil {
		return in
	}
	eye := vmath.V3FAdd(pos, vmath.Vec3F{Y: parameter.PlayerEyeHeight})

	best := math.Inf(1)
	var target vmath.Vec3F
	found := false
	for _, h := range g.pool.LivingEnemies() {
		ground, err := g.physics.Position(h)
		if err != nil {
			continue
		}
		head := vmath.V3FAdd(ground, vmath.Vec3F{Y: parameter.EnemyHeadCenterY})
		if d := vmath.V3FDist(eye, head); d < best {
			best, target, found = d, head, true
		}
	}

	if g.weapon.RoundsInMagazine == 0 {
		in.Reload = true
	}
	if !found {
		return in
	}

	in.Yaw, in.Pitch = AimAt(eye, target)
	in.Fire = g.weapon.RoundsInMagazine > 0
	return in
}

// AimAt returns the yaw and pitch whose view direction points from eye to target
func AimAt(eye, target vmath.Vec3F) (yaw, pitch float64) {
	d := vmath.V3FSub(target, eye)
	yaw = math.Atan2(-d.X, -d.Z)
	pitch = math.Atan2(d.Y, math.Hypot(d.X, d.Z))
	return yaw, pitch
}
