package parameter

import "time"

// Game Loop
const (
	// FrameUpdateInterval is the simulation/render tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall so a single tick cannot skip a whole wave
	MaxFrameDelta = 0.1
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
