package parameter

// Navigation - Grid Pathfinding
const (
	// NavDefaultCellSize is the grid cell edge length in world units
	NavDefaultCellSize = 20.0

	// NavRepathDistance triggers a re-plan when the chased target drifts this far from the cached path end
	NavRepathDistance = 40.0
)
