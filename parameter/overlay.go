package parameter

// Final Overlay
const (
	// OverlayShowThreshold is the smoothed progress that reveals the overlay while descending
	OverlayShowThreshold = MaxProgress - 0.001

	// OverlayHideThreshold is the smoothed progress that hides the overlay while ascending
	// Must stay below OverlayShowThreshold; the gap is the hysteresis dead zone
	OverlayHideThreshold = MaxProgress - 0.02

	// OverlaySmoothFactor is the per-frame easing of the overlay reveal
	OverlaySmoothFactor = 0.06

	// OverlayInteractiveAbove is the reveal progress above which the overlay accepts pointer input
	OverlayInteractiveAbove = 0.5
)
