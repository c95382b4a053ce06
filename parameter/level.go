package parameter

// Night planning
const (
	// MultiplierFloor is the lowest value any stacked multiplier may reach
	MultiplierFloor = 0.05

	// DefaultPerkCap is the maximum number of perk stacks per run
	DefaultPerkCap = 6

	// DefaultOffersPerNight is the number of perk choices drawn per night
	DefaultOffersPerNight = 3

	// DefaultInterWaveDelay is the sequential-mode pause between waves (seconds)
	DefaultInterWaveDelay = 5.0
)
