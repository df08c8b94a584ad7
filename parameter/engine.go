package parameter

// Frame loop constants
const (
	// TargetFPSDefault is the frame cadence when not configured
	// There is no delta-time normalization; raising this speeds everything up
	TargetFPSDefault = 30

	// HUDRows is the number of terminal rows reserved below the viewport
	HUDRows = 1

	// InputChannelSize bounds the buffered input event channel; events past
	// the bound are dropped rather than blocking the reader
	InputChannelSize = 64
)
