package engine

import (
	"github.com/lixenwraith/arena-fighter/vmath"
)

// ActorKind tags the variant stored in an Actor
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
	ActorParticle
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	case ActorParticle:
		return "particle"
	}
	return "unknown"
}

// EnemyKind selects enemy behavior
type EnemyKind int

const (
	EnemyMelee  EnemyKind = iota // Closes distance, contact damage only
	EnemyRanged                  // Holds range, fires hitscan at the player
)

func (k EnemyKind) String() string {
	if k == EnemyRanged {
		return "ranged"
	}
	return "melee"
}

// ParticleKind selects particle presentation
type ParticleKind int

const (
	ParticleBlood ParticleKind = iota
)

// EnemyData is the gameplay record of an enemy; its body lives in the physics collaborator
type EnemyData struct {
	Kind     EnemyKind
	Health   int
	HeadPart SubPart
}

// ParticleData is a short-lived visual effect, simulated entirely in the pool
type ParticleData struct {
	Kind         ParticleKind
	Position     vmath.Vec3F
	Velocity     vmath.Vec3F
	AgeRemaining float64 // seconds
}

// IsDead reports whether the particle has expired
func (p *ParticleData) IsDead() bool {
	return p.AgeRemaining <= 0
}

// Actor is one arena entry; Enemy and Particle are valid only for their Kind
type Actor struct {
	Kind     ActorKind
	Alive    bool
	Enemy    EnemyData
	Particle ParticleData
}
