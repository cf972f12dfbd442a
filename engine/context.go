package engine

import (
	"time"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Damager is the single funnel for player damage
type Damager interface {
	TakeDamage(amount int)
}

// Context is the explicit session passed to every system
// Nothing in the simulation reaches for process-wide state
type Context struct {
	State   *MatchState
	Pool    *EntityPool
	Weapon  *Weapon
	Physics Physics
	Events  *event.EventQueue
	Rand    *vmath.FastRand
	Config  *config.Config
	Damage  Damager
}

// Now returns simulated match time for cooldown checks
func (c *Context) Now() time.Duration {
	return time.Duration(c.State.Elapsed * float64(time.Second))
}

// EmitSound queues a combat sound for the end-of-tick audio drain
func (c *Context) EmitSound(s core.SoundEvent) {
	c.Events.Push(event.NewSoundRequest(s))
}

// Emit queues an arbitrary game event
func (c *Context) Emit(t event.EventType, payload any) {
	c.Events.Push(event.GameEvent{Type: t, Payload: payload})
}

// PlayerPosition returns the player body position
func (c *Context) PlayerPosition() (vmath.Vec3F, error) {
	return c.Physics.Position(c.Pool.Player())
}
