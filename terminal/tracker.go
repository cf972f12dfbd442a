package terminal

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// InputTracker turns discrete terminal key events into held control state
// A key counts as held while its last press or auto-repeat is within the hold window
type InputTracker struct {
	clock engine.Clock
	hold  time.Duration

	lastSeen [intentCount]time.Time
	pending  [intentCount]bool // one-shot intents awaiting Sample

	mouseFire bool
	yaw       float64
	pitch     float64
}

func NewInputTracker(clock engine.Clock) *InputTracker {
	return &InputTracker{
		clock: clock,
		hold:  parameter.InputHoldWindow,
	}
}

// Press records a gameplay intent
func (t *InputTracker) Press(in Intent) {
	switch in {
	case IntentTurnLeft:
		t.yaw = wrapAngle(t.yaw + parameter.InputTurnStep)
	case IntentTurnRight:
		t.yaw = wrapAngle(t.yaw - parameter.InputTurnStep)
	case IntentLookUp:
		t.pitch = vmath.Clamp(t.pitch+parameter.InputPitchStep, -parameter.PlayerPitchLimit, parameter.PlayerPitchLimit)
	case IntentLookDown:
		t.pitch = vmath.Clamp(t.pitch-parameter.InputPitchStep, -parameter.PlayerPitchLimit, parameter.PlayerPitchLimit)
	case IntentJump, IntentReload:
		t.pending[in] = true
	case IntentNone:
	default:
		if in < intentCount {
			t.lastSeen[in] = t.clock.Now()
		}
	}
}

// Mouse tracks the primary button as a fire trigger
func (t *InputTracker) Mouse(ev *tcell.EventMouse) {
	t.mouseFire = ev.Buttons()&tcell.Button1 != 0
}

func (t *InputTracker) held(in Intent, now time.Time) bool {
	seen := t.lastSeen[in]
	return !seen.IsZero() && now.Sub(seen) <= t.hold
}

// Sample returns the control state for this frame and consumes one-shot intents
func (t *InputTracker) Sample() game.Input {
	now := t.clock.Now()
	in := game.Input{
		Forward: t.held(IntentForward, now),
		Back:    t.held(IntentBackward, now),
		Left:    t.held(IntentStrafeLeft, now),
		Right:   t.held(IntentStrafeRight, now),
		Fire:    t.mouseFire || t.held(IntentFire, now),
		Jump:    t.pending[IntentJump],
		Reload:  t.pending[IntentReload],
		Yaw:     t.yaw,
		Pitch:   t.pitch,
	}
	t.pending[IntentJump] = false
	t.pending[IntentReload] = false
	return in
}

// Reset clears held keys and view angles for a new match
func (t *InputTracker) Reset() {
	*t = InputTracker{clock: t.clock, hold: t.hold}
}

func (t *InputTracker) Yaw() float64 { return t.yaw }

func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
