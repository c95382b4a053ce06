package level

import "github.com/lixenwraith/nightwatch/vmath"

// Run is the economy layer's snapshot of run progress handed to the core
type Run struct {
	Seed            uint32 `toml:"seed" yaml:"seed"`
	DayIndex        int    `toml:"day" yaml:"day"`
	StrongholdLevel int    `toml:"stronghold_level" yaml:"stronghold_level"`

	// Perks maps perk id to acquired stack count
	Perks map[string]int `toml:"perks" yaml:"perks"`

	// ActiveNightModifier overrides the day's configured modifier when set
	ActiveNightModifier string `toml:"night_modifier" yaml:"night_modifier"`

	Squads []SquadState `toml:"squads" yaml:"squads"`
	Hero   HeroState    `toml:"hero" yaml:"hero"`
}

// SquadState is one player squad from the roster
type SquadState struct {
	ID       string     `toml:"id" yaml:"id"`
	Kind     Kind       `toml:"kind" yaml:"kind"`
	Size     int        `toml:"size" yaml:"size"`
	Position vmath.Vec2 `toml:"position" yaml:"position"`
}

// HeroState carries hero progression and optional build-phase carry-over
type HeroState struct {
	Level    int         `toml:"level" yaml:"level"`
	Position *vmath.Vec2 `toml:"position" yaml:"position"`
	HP       *float64    `toml:"hp" yaml:"hp"`
}

// PerkStacks returns the total number of perk stacks taken this run
func (r Run) PerkStacks() int {
	total := 0
	for _, n := range r.Perks {
		if n > 0 {
			total += n
		}
	}
	return total
}
