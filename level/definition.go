package level

import (
	"github.com/lixenwraith/nightwatch/spawn"
	"github.com/lixenwraith/nightwatch/vmath"
)

// Definition is a fully authored level: battlefield, days of waves, and the tuning tables they reference
type Definition struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`

	Map  MapDefinition `toml:"map" yaml:"map"`
	Hero HeroLoadout   `toml:"hero" yaml:"hero"`
	Days []Day         `toml:"days" yaml:"days"`

	HQBaseHP float64 `toml:"hq_base_hp" yaml:"hq_base_hp"`

	Enemies        map[string]Archetype `toml:"enemies" yaml:"enemies"`
	Traits         []Trait              `toml:"traits" yaml:"traits"`
	Perks          []Perk               `toml:"perks" yaml:"perks"`
	NightModifiers []NightModifier      `toml:"night_modifiers" yaml:"night_modifiers"`

	PerkCap        int `toml:"perk_cap" yaml:"perk_cap"`
	OffersPerNight int `toml:"offers_per_night" yaml:"offers_per_night"`

	Debug Debug `toml:"debug" yaml:"debug"`
}

// MapDefinition is battlefield geometry and anchor points
type MapDefinition struct {
	Width      float64      `toml:"width" yaml:"width"`
	Height     float64      `toml:"height" yaml:"height"`
	CellSize   float64      `toml:"cell_size" yaml:"cell_size"`
	Obstacles  []vmath.Rect `toml:"obstacles" yaml:"obstacles"`
	HQ         vmath.Vec2   `toml:"hq" yaml:"hq"`
	EnemySpawn vmath.Vec2   `toml:"enemy_spawn" yaml:"enemy_spawn"`
	HeroSpawn  vmath.Vec2   `toml:"hero_spawn" yaml:"hero_spawn"`
}

// Bounds returns the battlefield rectangle used by the spawn resolver
func (m MapDefinition) Bounds() spawn.Bounds {
	return spawn.BoundsOf(m.Width, m.Height)
}

// HeroLoadout is the hero's combat profile and ability tuning
type HeroLoadout struct {
	HP       float64 `toml:"hp" yaml:"hp"`
	Attack   float64 `toml:"attack" yaml:"attack"`
	Range    float64 `toml:"range" yaml:"range"`
	Speed    float64 `toml:"speed" yaml:"speed"`
	Cooldown float64 `toml:"cooldown" yaml:"cooldown"`
	Radius   float64 `toml:"radius" yaml:"radius"`

	AreaDamage   float64 `toml:"area_damage" yaml:"area_damage"`
	AreaRadius   float64 `toml:"area_radius" yaml:"area_radius"`
	AreaCooldown float64 `toml:"area_cooldown" yaml:"area_cooldown"`
	HealAmount   float64 `toml:"heal_amount" yaml:"heal_amount"`
	HealCooldown float64 `toml:"heal_cooldown" yaml:"heal_cooldown"`

	// HPPerLevel and AttackPerLevel add to base stats per hero level above 1
	HPPerLevel     float64 `toml:"hp_per_level" yaml:"hp_per_level"`
	AttackPerLevel float64 `toml:"attack_per_level" yaml:"attack_per_level"`
}

// WaveMode selects how waves are released
type WaveMode string

const (
	WaveModeSequential WaveMode = "sequential"
	WaveModeTimed      WaveMode = "timed"
)

// Day is one day/night cycle of the level
type Day struct {
	Index             int      `toml:"index" yaml:"index"`
	WaveMode          WaveMode `toml:"wave_mode" yaml:"wave_mode"`
	InterWaveDelaySec float64  `toml:"inter_wave_delay" yaml:"inter_wave_delay"`

	EnemyHPMultiplier     float64 `toml:"enemy_hp_multiplier" yaml:"enemy_hp_multiplier"`
	EnemyAttackMultiplier float64 `toml:"enemy_attack_multiplier" yaml:"enemy_attack_multiplier"`

	// NightModifier names the modifier active this night; empty for none
	NightModifier string `toml:"night_modifier" yaml:"night_modifier"`

	Waves []Wave `toml:"waves" yaml:"waves"`
}

// Wave is a declarative wave; Groups take precedence over legacy Units
type Wave struct {
	ID           string  `toml:"id" yaml:"id"`
	SpawnTimeSec float64 `toml:"spawn_time" yaml:"spawn_time"`
	IsBoss       bool    `toml:"boss" yaml:"boss"`

	Units  []LegacyUnit `toml:"units" yaml:"units"`
	Groups []UnitGroup  `toml:"groups" yaml:"groups"`

	Traits      []string `toml:"traits" yaml:"traits"`
	EliteChance float64  `toml:"elite_chance" yaml:"elite_chance"`

	SpawnEdges         []spawn.EdgeSpec `toml:"spawn_edges" yaml:"spawn_edges"`
	SpawnPointsPerEdge spawn.Count      `toml:"spawn_points_per_edge" yaml:"spawn_points_per_edge"`
	SpawnPadding       float64          `toml:"spawn_padding" yaml:"spawn_padding"`
	SpawnMinDistance   float64          `toml:"spawn_min_distance" yaml:"spawn_min_distance"`

	// SpawnPoint is the legacy single-point configuration
	SpawnPoint *vmath.Vec2 `toml:"spawn_point" yaml:"spawn_point"`
}

// LegacyUnit is the pre-group wave entry
type LegacyUnit struct {
	Type  string `toml:"type" yaml:"type"`
	Count int    `toml:"count" yaml:"count"`
}

// UnitGroup is one enemy type block inside a wave
type UnitGroup struct {
	Type        string   `toml:"type" yaml:"type"`
	Count       int      `toml:"count" yaml:"count"`
	SquadSize   int      `toml:"squad_size" yaml:"squad_size"`
	Traits      []string `toml:"traits" yaml:"traits"`
	EliteChance *float64 `toml:"elite_chance" yaml:"elite_chance"`
}

// Kind names the troop class an archetype fights as
type Kind string

const (
	KindInfantry Kind = "infantry"
	KindArcher   Kind = "archer"
	KindCavalry  Kind = "cavalry"
	KindElite    Kind = "elite"
)

// Tier marks bosses
type Tier string

const (
	TierNone     Tier = ""
	TierMiniBoss Tier = "miniBoss"
	TierBoss     Tier = "boss"
)

// Archetype is an enemy type's base stats
type Archetype struct {
	Kind     Kind    `toml:"kind" yaml:"kind"`
	Tier     Tier    `toml:"tier" yaml:"tier"`
	HP       float64 `toml:"hp" yaml:"hp"`
	Attack   float64 `toml:"attack" yaml:"attack"`
	Range    float64 `toml:"range" yaml:"range"`
	Speed    float64 `toml:"speed" yaml:"speed"`
	Cooldown float64 `toml:"cooldown" yaml:"cooldown"`
	Radius   float64 `toml:"radius" yaml:"radius"`
}

// Trait is a named stat modifier rolled onto enemies
type Trait struct {
	ID               string  `toml:"id" yaml:"id"`
	Name             string  `toml:"name" yaml:"name"`
	HPMultiplier     float64 `toml:"hp_multiplier" yaml:"hp_multiplier"`
	AttackMultiplier float64 `toml:"attack_multiplier" yaml:"attack_multiplier"`
	SpeedMultiplier  float64 `toml:"speed_multiplier" yaml:"speed_multiplier"`
}

// Stat keys perks may modify
const (
	StatTowerRange   = "tower_range"
	StatTowerDamage  = "tower_damage"
	StatGoldReward   = "gold_reward"
	StatUpgradeCost  = "upgrade_cost"
	StatRangedDamage = "ranged_damage"
	StatWallHP       = "wall_hp"
	StatEnemyCount   = "enemy_count"
	StatEnemySpeed   = "enemy_speed"
	StatEnemyHP      = "enemy_hp"
	StatNightGold    = "night_gold"
)

// Perk is a stackable run modifier
type Perk struct {
	ID        string       `toml:"id" yaml:"id"`
	Name      string       `toml:"name" yaml:"name"`
	MaxStacks int          `toml:"max_stacks" yaml:"max_stacks"`
	Stackable bool         `toml:"stackable" yaml:"stackable"`
	Effects   []PerkEffect `toml:"effects" yaml:"effects"`
}

// PerkEffect is one stat delta applied per stack; night_gold is flat, others multiplicative
type PerkEffect struct {
	Stat  string  `toml:"stat" yaml:"stat"`
	Delta float64 `toml:"delta" yaml:"delta"`
}

// NightModifier adjusts one night; multipliers are deltas around 1
type NightModifier struct {
	ID               string  `toml:"id" yaml:"id"`
	Name             string  `toml:"name" yaml:"name"`
	EnemyCount       float64 `toml:"enemy_count" yaml:"enemy_count"`
	EnemySpeed       float64 `toml:"enemy_speed" yaml:"enemy_speed"`
	EnemyHP          float64 `toml:"enemy_hp" yaml:"enemy_hp"`
	TowersDisabled   bool    `toml:"towers_disabled" yaml:"towers_disabled"`
	ExtraSpawnBorder bool    `toml:"extra_spawn_border" yaml:"extra_spawn_border"`
}

// Debug holds authoring overrides honored by the planner
type Debug struct {
	ForceElite          *bool  `toml:"force_elite" yaml:"force_elite"`
	ForcedTrait         string `toml:"forced_trait" yaml:"forced_trait"`
	ForcedPerk          string `toml:"forced_perk" yaml:"forced_perk"`
	ForcedNightModifier string `toml:"forced_night_modifier" yaml:"forced_night_modifier"`
}

// TraitByID returns the trait definition, false if unknown
func (d *Definition) TraitByID(id string) (Trait, bool) {
	for _, t := range d.Traits {
		if t.ID == id {
			return t, true
		}
	}
	return Trait{}, false
}

// PerkByID returns the perk definition, false if unknown
func (d *Definition) PerkByID(id string) (Perk, bool) {
	for _, p := range d.Perks {
		if p.ID == id {
			return p, true
		}
	}
	return Perk{}, false
}

// NightModifierByID returns the modifier, false if unknown
func (d *Definition) NightModifierByID(id string) (NightModifier, bool) {
	for _, m := range d.NightModifiers {
		if m.ID == id {
			return m, true
		}
	}
	return NightModifier{}, false
}

// Archetype returns the enemy archetype for a type id, defaults for unknown ids
func (d *Definition) Archetype(enemyType string) Archetype {
	if a, ok := d.Enemies[enemyType]; ok {
		return a
	}
	return defaultArchetype()
}
