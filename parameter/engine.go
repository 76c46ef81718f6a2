package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the input pump and the frame loop
	EventChannelSize = 256
)
