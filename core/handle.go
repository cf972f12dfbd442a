package core

import "fmt"

// Handle is an opaque, generation-checked reference to an actor
// Low 32 bits: slot index, high 32 bits: slot generation (never 0 for a live handle)
// A handle is invalidated when its slot is released; the next occupant gets a new generation
type Handle uint64

// NilHandle never refers to a live actor
const NilHandle Handle = 0

// NewHandle packs a slot index and generation
func NewHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (h Handle) Index() uint32 {
	return uint32(h)
}

// Generation returns the slot generation
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// IsNil reports whether h is the zero handle
func (h Handle) IsNil() bool {
	return h.Generation() == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d@%d)", h.Index(), h.Generation())
}
