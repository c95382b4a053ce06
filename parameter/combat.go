package parameter

// Target Acquisition
const (
	// AttackEngageBonus is added to attack range when an attack order looks for a replacement target
	AttackEngageBonus = 40.0

	// AttackMoveEngageRadius is the opportunistic engage radius while attack-moving
	AttackMoveEngageRadius = 200.0

	// ArrivalRadius is the distance at which a move destination counts as reached
	ArrivalRadius = 4.0
)

// Type Matrix (infantry > cavalry > archer > infantry)
const (
	// TypeAdvantageMultiplier is damage dealt by the favored side of a pairing
	TypeAdvantageMultiplier = 1.2

	// TypeDisadvantageMultiplier is damage dealt by the countered side of a pairing
	TypeDisadvantageMultiplier = 0.85
)

// Projectiles
const (
	// ProjectileSpeed is archer projectile travel speed (units/sec)
	ProjectileSpeed = 240.0

	// ProjectileHitRadius is the distance to the target's current position that resolves a hit
	ProjectileHitRadius = 6.0
)

// Effect lifetimes (seconds)
const (
	EffectHitDuration   = 0.15
	EffectSlashDuration = 0.2
	EffectAreaDuration  = 0.5
	EffectHealDuration  = 0.6
)

// Boss & Elite scaling
const (
	// BossWaveMultiplier scales hp and attack of every unit spawned by a boss wave
	BossWaveMultiplier = 1.5

	// EliteHPMultiplier scales hp of elite variants
	EliteHPMultiplier = 1.6

	// EliteAttackMultiplier scales attack of elite variants
	EliteAttackMultiplier = 1.3

	// EliteRadiusBonus widens elite collision radius
	EliteRadiusBonus = 2.0
)
