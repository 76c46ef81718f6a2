package parameter

// Desktop Wheel
const (
	// VirtualScrollLength is the virtual page length in px that wheel deltas accumulate against
	VirtualScrollLength = 10000

	// WheelStepPx is the delta reported per wheel notch by frontends without native deltas
	WheelStepPx = 100
)

// Mobile Drag
const (
	// DragDamping scales the viewport-normalized drag before it is added to progress
	DragDamping = 0.35

	// SwipeThresholdPx is the release displacement that commits to a neighbouring section
	SwipeThresholdPx = 50
)

// Terminal Cell Geometry
// Terminal frontends report cells; these convert to the px units used by the adapters
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)
