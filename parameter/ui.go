package parameter

import "time"

// Layout & Margins
const (
	// TopMargin is the HUD line above the arena view
	TopMargin = 1

	// BottomMargin is the help line below the arena view
	BottomMargin = 1
)

// Arena view
const (
	// ViewMetersPerRow is the top-down map scale; columns are half a row wide
	ViewMetersPerRow = 1.0

	// ViewColumnsPerRow compensates for terminal cell aspect ratio
	ViewColumnsPerRow = 2
)

// Input
const (
	// InputHoldWindow keeps a key held after its last press or repeat
	// Terminals report no key release, so held state decays instead
	InputHoldWindow = 150 * time.Millisecond

	// InputTurnStep is yaw change per arrow key press (radians)
	InputTurnStep = 0.08

	// InputPitchStep is pitch change per arrow key press (radians)
	InputPitchStep = 0.05
)

// Overlay Configuration
const (
	// OverlayWidthPercent is the percentage of screen width the overlay covers
	OverlayWidthPercent = 0.6

	// OverlayPaddingX is the horizontal padding inside the overlay
	OverlayPaddingX = 2

	// SettingsVolumeStep is the volume change per adjustment
	SettingsVolumeStep = 0.1

	// SettingsDurationStep is the match duration change per adjustment (seconds)
	SettingsDurationStep = 30

	// SettingsMinDuration is the shortest selectable match (seconds)
	SettingsMinDuration = 30
)
