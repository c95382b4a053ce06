package sim

import (
	"github.com/lixenwraith/nightwatch/navigation"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/spawn"
	"github.com/lixenwraith/nightwatch/vmath"
)

// WaveMode selects how waves are released
type WaveMode uint8

const (
	// WaveSequential releases the next wave once the field is clear and the delay elapsed
	WaveSequential WaveMode = iota
	// WaveTimed releases each wave at its SpawnTimeSec, waves ordered by time
	WaveTimed
)

// CombatDefinition is the resolved per-day battle configuration
type CombatDefinition struct {
	Seed     uint32
	DayIndex int

	Map   BattleMap
	Hero  HeroLoadout
	Waves []CombatWave

	WaveMode          WaveMode
	InterWaveDelaySec float64

	EnemyHPMultiplier      float64
	EnemyAttackMultiplier  float64
	EnemySpeedMultiplier   float64
	RangedDamageMultiplier float64

	HQBaseHP    float64
	PlayerStats TroopStats
}

// BattleMap is battlefield geometry and anchors
type BattleMap struct {
	Width      float64
	Height     float64
	CellSize   float64
	Obstacles  []vmath.Rect
	HQ         vmath.Vec2
	EnemySpawn vmath.Vec2
	HeroSpawn  vmath.Vec2
}

// Grid rasterizes the map for pathfinding
func (m BattleMap) Grid() *navigation.Grid {
	return navigation.BuildGrid(m.Width, m.Height, m.CellSize, m.Obstacles)
}

// UnitStats is a base combat profile
type UnitStats struct {
	HP       float64
	Attack   float64
	Range    float64
	Speed    float64
	Cooldown float64
	Radius   float64
}

// HeroLoadout is the hero profile and ability tuning
type HeroLoadout struct {
	UnitStats

	AreaDamage   float64
	AreaRadius   float64
	AreaCooldown float64
	HealAmount   float64
	HealCooldown float64
}

// TroopStats holds per-member player troop stats
type TroopStats struct {
	Infantry UnitStats
	Archer   UnitStats
	Cavalry  UnitStats
}

// For returns per-member stats of a player troop class, falling back to built-in defaults
func (t TroopStats) For(k Kind) UnitStats {
	var s UnitStats
	switch k {
	case KindArcher:
		s = t.Archer
		if s.HP <= 0 {
			s = UnitStats{parameter.ArcherHP, parameter.ArcherAttack, parameter.ArcherRange, parameter.ArcherSpeed, parameter.ArcherCooldown, parameter.TroopRadius}
		}
	case KindCavalry:
		s = t.Cavalry
		if s.HP <= 0 {
			s = UnitStats{parameter.CavalryHP, parameter.CavalryAttack, parameter.CavalryRange, parameter.CavalrySpeed, parameter.CavalryCooldown, parameter.TroopRadius}
		}
	default:
		s = t.Infantry
		if s.HP <= 0 {
			s = UnitStats{parameter.InfantryHP, parameter.InfantryAttack, parameter.InfantryRange, parameter.InfantrySpeed, parameter.InfantryCooldown, parameter.TroopRadius}
		}
	}
	if s.Radius <= 0 {
		s.Radius = parameter.TroopRadius
	}
	return s
}

// CombatWave is one wave ready for spawning
type CombatWave struct {
	ID           string
	SpawnTimeSec float64
	IsBoss       bool
	Groups       []CombatUnitGroup

	// Anchors are resolved spawn transforms; empty falls back to the map enemy spawn
	Anchors []spawn.Transform
}

// CombatUnitGroup spawns Squads independent entities of one profile
type CombatUnitGroup struct {
	EnemyType string
	Kind      Kind
	Tier      Tier
	Stats     UnitStats
	Squads    int
	SquadSize int
	Elite     bool
	Traits    []string
}

// RosterSquad is a player squad entering battle
type RosterSquad struct {
	ID   string
	Kind Kind
	Size int
	Pos  vmath.Vec2
}

// Roster is the player side handed to NewState
type Roster struct {
	Squads []RosterSquad

	// HeroPos and HeroHP carry over from the build phase when set
	HeroPos *vmath.Vec2
	HeroHP  *float64
}

func positiveOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
