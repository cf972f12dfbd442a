package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// EntityPool owns actor membership for the player, enemies and particles
// It is the only component that inserts or removes actors
type EntityPool struct {
	actors  *Arena[Actor]
	physics Physics
	player  core.Handle
	tx      *poolTx

	enemies   int
	particles int
}

// NewEntityPool creates an empty pool bound to a physics collaborator
func NewEntityPool(physics Physics) *EntityPool {
	return &EntityPool{
		actors:  NewArena[Actor](64),
		physics: physics,
	}
}

// SpawnPlayer releases any existing player and places a new one
func (p *EntityPool) SpawnPlayer(pos vmath.Vec3F) (core.Handle, error) {
	if !p.player.IsNil() {
		if err := p.release(p.player); err != nil {
			log.Printf("[Pool] %v", err)
		}
		p.player = core.NilHandle
	}

	h := p.actors.Insert(Actor{Kind: ActorPlayer, Alive: true})
	if err := p.physics.Place(h, BodyPlayer, pos); err != nil {
		p.actors.Remove(h)
		return core.NilHandle, fmt.Errorf("place player: %w", err)
	}
	p.player = h
	return h, nil
}

// Player returns the current player handle, or NilHandle
func (p *EntityPool) Player() core.Handle {
	return p.player
}

// SpawnEnemy inserts an enemy at full health and places its body
func (p *EntityPool) SpawnEnemy(kind EnemyKind, pos vmath.Vec3F) (core.Handle, error) {
	h := p.actors.Insert(Actor{
		Kind:  ActorEnemy,
		Alive: true,
		Enemy: EnemyData{
			Kind:     kind,
			Health:   parameter.EnemyMaxHealth,
			HeadPart: SubPartHead,
		},
	})
	if err := p.physics.Place(h, BodyEnemy, pos); err != nil {
		p.actors.Remove(h)
		return core.NilHandle, fmt.Errorf("place enemy: %w", err)
	}
	p.enemies++
	p.journal(poolOp{Type: opSpawn, Handle: h})
	return h, nil
}

// Enemy returns the live enemy record for h
func (p *EntityPool) Enemy(h core.Handle) (*EnemyData, bool) {
	a, ok := p.actors.Get(h)
	if !ok || a.Kind != ActorEnemy || !a.Alive {
		return nil, false
	}
	return &a.Enemy, true
}

// RemoveEnemy releases the enemy and its body; h is invalid afterwards
// Membership is released even if the collaborator fails, so no stale handle survives
// Inside a transaction the enemy stops resolving at once and is released on Commit
func (p *EntityPool) RemoveEnemy(h core.Handle) error {
	a, ok := p.actors.Get(h)
	if !ok || a.Kind != ActorEnemy || !a.Alive {
		return nil
	}
	if p.tx != nil {
		a.Alive = false
		p.enemies--
		p.journal(poolOp{Type: opRemove, Handle: h})
		return nil
	}
	return p.release(h)
}

// release drops h from the arena and the physics body, if any
// Counts only include alive actors, so a pending removal is not counted twice
func (p *EntityPool) release(h core.Handle) error {
	a, ok := p.actors.Get(h)
	if !ok {
		return nil
	}
	kind := a.Kind
	if a.Alive {
		switch kind {
		case ActorEnemy:
			p.enemies--
		case ActorParticle:
			p.particles--
		}
	}
	a.Alive = false
	p.actors.Remove(h)

	if kind == ActorParticle {
		return nil
	}

	if err := p.physics.RemoveBody(h); err != nil {
		return fmt.Errorf("remove %s body %s: %w", kind, h, err)
	}
	return nil
}

// LivingEnemies returns enemy handles in arena index order
// The order is stable until the next insert or removal
func (p *EntityPool) LivingEnemies() []core.Handle {
	out := make([]core.Handle, 0, p.enemies)
	p.actors.Each(func(h core.Handle, a *Actor) bool {
		if a.Kind == ActorEnemy && a.Alive {
			out = append(out, h)
		}
		return true
	})
	return out
}

// EnemyCount returns the number of living enemies
func (p *EntityPool) EnemyCount() int {
	return p.enemies
}

// SpawnParticle inserts a particle moving along normal
func (p *EntityPool) SpawnParticle(kind ParticleKind, pos, normal vmath.Vec3F) core.Handle {
	h := p.actors.Insert(Actor{
		Kind:  ActorParticle,
		Alive: true,
		Particle: ParticleData{
			Kind:         kind,
			Position:     pos,
			Velocity:     vmath.V3FScale(normal, parameter.BloodParticleSpeed),
			AgeRemaining: parameter.BloodParticleLifetime,
		},
	})
	p.particles++
	p.journal(poolOp{Type: opSpawn, Handle: h})
	return h
}

// Particle returns the live particle record for h
func (p *EntityPool) Particle(h core.Handle) (*ParticleData, bool) {
	a, ok := p.actors.Get(h)
	if !ok || a.Kind != ActorParticle {
		return nil, false
	}
	return &a.Particle, true
}

// ParticleCount returns the number of live particles
func (p *EntityPool) ParticleCount() int {
	return p.particles
}

// AdvanceParticles ages and moves every particle, pruning the ones that expire
// Inside a transaction the aging is applied on Commit
func (p *EntityPool) AdvanceParticles(dt float64) {
	if dt <= 0 {
		return
	}
	if p.tx != nil {
		p.tx.age += dt
		return
	}
	p.advanceParticles(dt)
}

func (p *EntityPool) advanceParticles(dt float64) {
	if p.particles == 0 {
		return
	}
	removed := p.actors.RemoveWhere(func(a *Actor) bool {
		if a.Kind != ActorParticle {
			return false
		}
		pd := &a.Particle
		if pd.IsDead() {
			return true
		}
		pd.AgeRemaining -= dt
		pd.Velocity.Y -= parameter.Gravity * dt
		pd.Position = vmath.V3FAdd(pd.Position, vmath.V3FScale(pd.Velocity, dt))
		if pd.Position.Y < 0 {
			pd.Position.Y = 0
			pd.Velocity = vmath.Vec3F{}
		}
		return pd.IsDead()
	})
	p.particles -= len(removed)
}

// EachParticle visits live particles in index order
func (p *EntityPool) EachParticle(fn func(h core.Handle, pd *ParticleData)) {
	p.actors.Each(func(h core.Handle, a *Actor) bool {
		if a.Kind == ActorParticle {
			fn(h, &a.Particle)
		}
		return true
	})
}

// ClearTransient bulk-releases every enemy and particle, keeping the player
// Collaborator failures are logged; membership is always cleared
// An open transaction is committed first
func (p *EntityPool) ClearTransient() {
	p.Commit()
	for _, h := range p.LivingEnemies() {
		if err := p.release(h); err != nil {
			log.Printf("[Pool] %v", err)
		}
	}
	removed := p.actors.RemoveWhere(func(a *Actor) bool { return a.Kind == ActorParticle })
	p.particles -= len(removed)
}

// Clear bulk-releases every actor including the player
func (p *EntityPool) Clear() {
	p.ClearTransient()
	if !p.player.IsNil() {
		if err := p.release(p.player); err != nil {
			log.Printf("[Pool] %v", err)
		}
		p.player = core.NilHandle
	}
}

// Len returns the total number of live actors
func (p *EntityPool) Len() int {
	return p.actors.Len()
}
