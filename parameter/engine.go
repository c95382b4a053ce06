package parameter

import "time"

// Simulation & Host Loop Timing
const (
	// TickRate is the fixed simulation rate (steps per second)
	TickRate = 30

	// StepSeconds is the fixed simulation step (1/30 s)
	StepSeconds = 1.0 / TickRate

	// StepInterval is StepSeconds as a duration for host tickers
	StepInterval = time.Second / TickRate

	// FrameUpdateInterval is the presentation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpSteps caps steps per frame so a stalled host does not spiral
	MaxCatchUpSteps = 8
)
