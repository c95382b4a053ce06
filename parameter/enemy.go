package parameter

// Wave Spawning
const (
	// SpawnJitter is the maximum positional offset (±) around a spawn anchor
	SpawnJitter = 20.0

	// SpawnDefaultPadding is the distance spawn points sit outside the battlefield bounds
	SpawnDefaultPadding = 40.0

	// SpawnDefaultMinDistance is the minimum distance between resolved spawn points
	SpawnDefaultMinDistance = 60.0

	// SpawnPlacementRetries is jittered attempts per point before the candidate scan fallback
	SpawnPlacementRetries = 12

	// SpawnFallbackCandidates is the number of evenly spaced candidates scanned by the fallback
	SpawnFallbackCandidates = 16

	// SpawnEdgeMinT and SpawnEdgeMaxT keep points off the corners
	SpawnEdgeMinT = 0.05
	SpawnEdgeMaxT = 0.95
)

// Enemy defaults (used when a level omits an archetype field)
const (
	EnemyDefaultHP       = 60.0
	EnemyDefaultAttack   = 8.0
	EnemyDefaultRange    = 18.0
	EnemyDefaultSpeed    = 40.0
	EnemyDefaultCooldown = 1.0
	EnemyDefaultRadius   = 8.0
)
