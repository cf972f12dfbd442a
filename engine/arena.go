package engine

import "github.com/lixenwraith/arena-fighter/core"

// slot holds one arena cell; gen is bumped on every release
type slot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// Arena is a generic slot container addressed by generation-checked handles
// A released handle never resolves again, even after its index is reused
// Iteration is in slot index order, which is stable between mutations
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// NewArena creates an arena with preallocated capacity
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Insert stores val and returns its handle
func (a *Arena[T]) Insert(val T) core.Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 { // Zero generation is reserved for the nil handle
		s.gen = 1
	}
	s.alive = true
	s.val = val
	a.count++
	return core.NewHandle(idx, s.gen)
}

// Get returns a pointer to the live value for h
// The pointer is invalidated by Remove or Clear
func (a *Arena[T]) Get(h core.Handle) (*T, bool) {
	if h.IsNil() {
		return nil, false
	}
	idx := h.Index()
	if int(idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx]
	if !s.alive || s.gen != h.Generation() {
		return nil, false
	}
	return &s.val, true
}

// Contains reports whether h refers to a live value
func (a *Arena[T]) Contains(h core.Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove releases h; returns false if it was already stale
func (a *Arena[T]) Remove(h core.Handle) bool {
	if !a.Contains(h) {
		return false
	}
	a.release(h.Index())
	return true
}

func (a *Arena[T]) release(idx uint32) {
	var zero T
	s := &a.slots[idx]
	s.alive = false
	s.val = zero
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, idx)
	a.count--
}

// Len returns the number of live values
func (a *Arena[T]) Len() int {
	return a.count
}

// Each visits live values in index order until fn returns false
// fn must not insert or remove
func (a *Arena[T]) Each(fn func(h core.Handle, val *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if !fn(core.NewHandle(uint32(i), s.gen), &s.val) {
			return
		}
	}
}

// RemoveWhere releases every live value matching pred and returns the released handles
func (a *Arena[T]) RemoveWhere(pred func(val *T) bool) []core.Handle {
	var removed []core.Handle
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive || !pred(&s.val) {
			continue
		}
		removed = append(removed, core.NewHandle(uint32(i), s.gen))
		a.release(uint32(i))
	}
	return removed
}

// Clear releases every live value
func (a *Arena[T]) Clear() {
	a.RemoveWhere(func(*T) bool { return true })
}
