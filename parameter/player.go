package parameter

// Hero loadout defaults
const (
	HeroDefaultHP       = 400.0
	HeroDefaultAttack   = 25.0
	HeroDefaultRange    = 24.0
	HeroDefaultSpeed    = 70.0
	HeroDefaultCooldown = 0.8
	HeroDefaultRadius   = 10.0

	// HeroAreaDamage is flat damage of the Q ability to every enemy in radius
	HeroAreaDamage = 60.0

	// HeroAreaRadius is the Q ability radius around the hero
	HeroAreaRadius = 90.0

	// HeroAreaCooldown is the Q ability cooldown (seconds)
	HeroAreaCooldown = 8.0

	// HeroHealAmount is flat hp restored by the E ability
	HeroHealAmount = 120.0

	// HeroHealCooldown is the E ability cooldown (seconds)
	HeroHealCooldown = 12.0
)

// Headquarters
const (
	HQDefaultHP     = 1500.0
	HQDefaultRadius = 30.0
)

// Player troop base stats per squad member; hp and attack scale with squad size
const (
	InfantryHP       = 40.0
	InfantryAttack   = 6.0
	InfantryRange    = 16.0
	InfantrySpeed    = 45.0
	InfantryCooldown = 1.0

	ArcherHP       = 25.0
	ArcherAttack   = 5.0
	ArcherRange    = 140.0
	ArcherSpeed    = 42.0
	ArcherCooldown = 1.4

	CavalryHP       = 55.0
	CavalryAttack   = 8.0
	CavalryRange    = 18.0
	CavalrySpeed    = 80.0
	CavalryCooldown = 1.2

	TroopRadius = 9.0
)
