package terminal

import "github.com/gdamore/tcell/v2"

// Intent is the semantic meaning of a key, resolved by context
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit     // Ctrl+C
	IntentBack     // q: leave the current screen
	IntentConfirm  // Enter
	IntentSettings // Esc: toggle the settings overlay
	IntentScores   // h: toggle the high score view

	// Movement
	IntentForward
	IntentBackward
	IntentStrafeLeft
	IntentStrafeRight
	IntentJump

	// View; arrows also navigate the settings overlay
	IntentTurnLeft
	IntentTurnRight
	IntentLookUp
	IntentLookDown

	// Weapon
	IntentFire
	IntentReload

	intentCount
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyEscape: IntentSettings,
			tcell.KeyLeft:   IntentTurnLeft,
			tcell.KeyRight:  IntentTurnRight,
			tcell.KeyUp:     IntentLookUp,
			tcell.KeyDown:   IntentLookDown,
		},
		Runes: map[rune]Intent{
			'q': IntentBack,
			'h': IntentScores,
			'w': IntentForward,
			's': IntentBackward,
			'a': IntentStrafeLeft,
			'd': IntentStrafeRight,
			' ': IntentJump,
			'f': IntentFire,
			'r': IntentReload,
		},
	}
}

// Lookup resolves a key event to its intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
