package engine

import (
	"log"

	"github.com/lixenwraith/arena-fighter/core"
)

// poolOpType is the kind of journaled pool mutation
type poolOpType int

const (
	opSpawn  poolOpType = iota // Actor inserted; rollback releases it
	opRemove                   // Enemy hidden; commit releases it, rollback revives it
	opDamage                   // Enemy health lowered; rollback restores Health
)

// poolOp records one mutation made while a transaction is open
type poolOp struct {
	Type   poolOpType
	Handle core.Handle
	Health int // Health before the first opDamage on Handle
}

// poolTx journals pool mutations for one tick
type poolTx struct {
	ops     []poolOp
	damaged map[core.Handle]bool
	age     float64 // Particle aging deferred to commit
}

// Begin opens a transaction; mutations until Commit or Rollback are journaled
// Removals stay pending: the enemy leaves LivingEnemies at once but keeps its slot and body
func (p *EntityPool) Begin() {
	if p.tx != nil {
		p.Commit()
	}
	p.tx = &poolTx{damaged: make(map[core.Handle]bool)}
}

// InTx reports whether a transaction is open
func (p *EntityPool) InTx() bool {
	return p.tx != nil
}

// Commit applies pending removals and particle aging, then closes the transaction
func (p *EntityPool) Commit() {
	tx := p.tx
	if tx == nil {
		return
	}
	p.tx = nil

	for _, op := range tx.ops {
		if op.Type != opRemove {
			continue
		}
		if err := p.release(op.Handle); err != nil {
			log.Printf("[Pool] %v", err)
		}
	}
	if tx.age > 0 {
		p.advanceParticles(tx.age)
	}
}

// Rollback undoes every journaled mutation in reverse order and closes the transaction
func (p *EntityPool) Rollback() {
	tx := p.tx
	if tx == nil {
		return
	}
	p.tx = nil

	for i := len(tx.ops) - 1; i >= 0; i-- {
		op := tx.ops[i]
		switch op.Type {
		case opSpawn:
			if err := p.release(op.Handle); err != nil {
				log.Printf("[Pool] rollback: %v", err)
			}
		case opRemove:
			if a, ok := p.actors.Get(op.Handle); ok && !a.Alive {
				a.Alive = true
				p.enemies++
			}
		case opDamage:
			if a, ok := p.actors.Get(op.Handle); ok {
				a.Enemy.Health = op.Health
			}
		}
	}
}

func (p *EntityPool) journal(op poolOp) {
	if p.tx != nil {
		p.tx.ops = append(p.tx.ops, op)
	}
}

// DamageEnemy lowers a living enemy's health, clamped at zero, and returns what is left
func (p *EntityPool) DamageEnemy(h core.Handle, amount int) (int, bool) {
	e, ok := p.Enemy(h)
	if !ok {
		return 0, false
	}
	if p.tx != nil && !p.tx.damaged[h] {
		p.tx.damaged[h] = true
		p.journal(poolOp{Type: opDamage, Handle: h, Health: e.Health})
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	return e.Health, true
}
