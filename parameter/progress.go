package parameter

// Progress Axis
// A single progress value in [0, MaxProgress] drives the whole experience
const (
	// MaxProgress is the ceiling for progress targets
	// Kept below 1 so the final overlay is reached by a saturating approach
	MaxProgress = 0.78

	// ProgressSmoothFactor is the fraction of the remaining distance covered per frame
	ProgressSmoothFactor = 0.15

	// SettleEpsilon is the distance under which eased values snap to their target
	SettleEpsilon = 0.001
)

// Phase Cut Points
// Each value is the progress at which that phase begins; intro starts at 0
const (
	PhaseFoundationStart = 0.18
	PhaseNetworkStart    = 0.35
	PhaseEcosystemStart  = 0.58
)
