package night

import (
	"math"
	"sort"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/parameter"
)

// BuffSnapshot is the net effect of owned perks and the active night modifier
type BuffSnapshot struct {
	TowerRange   float64 `msgpack:"tower_range"`
	TowerDamage  float64 `msgpack:"tower_damage"`
	GoldReward   float64 `msgpack:"gold_reward"`
	UpgradeCost  float64 `msgpack:"upgrade_cost"`
	RangedDamage float64 `msgpack:"ranged_damage"`
	WallHP       float64 `msgpack:"wall_hp"`
	EnemyCount   float64 `msgpack:"enemy_count"`
	EnemySpeed   float64 `msgpack:"enemy_speed"`
	EnemyHP      float64 `msgpack:"enemy_hp"`

	// BonusGold is flat end-of-night gold
	BonusGold float64 `msgpack:"bonus_gold"`

	TowersDisabled   bool `msgpack:"towers_disabled"`
	ExtraSpawnBorder bool `msgpack:"extra_spawn_border"`

	NightModifier string `msgpack:"night_modifier,omitempty"`
}

func neutralBuffs() BuffSnapshot {
	return BuffSnapshot{
		TowerRange:   1,
		TowerDamage:  1,
		GoldReward:   1,
		UpgradeCost:  1,
		RangedDamage: 1,
		WallHP:       1,
		EnemyCount:   1,
		EnemySpeed:   1,
		EnemyHP:      1,
	}
}

func (b *BuffSnapshot) multiplier(stat string) *float64 {
	switch stat {
	case level.StatTowerRange:
		return &b.TowerRange
	case level.StatTowerDamage:
		return &b.TowerDamage
	case level.StatGoldReward:
		return &b.GoldReward
	case level.StatUpgradeCost:
		return &b.UpgradeCost
	case level.StatRangedDamage:
		return &b.RangedDamage
	case level.StatWallHP:
		return &b.WallHP
	case level.StatEnemyCount:
		return &b.EnemyCount
	case level.StatEnemySpeed:
		return &b.EnemySpeed
	case level.StatEnemyHP:
		return &b.EnemyHP
	}
	return nil
}

// stack composes current × (1+delta)^stacks, floored
func stack(current, delta float64, stacks int) float64 {
	v := float64(current * math.Pow(1+delta, float64(stacks)))
	if v != v || v < parameter.MultiplierFloor {
		return parameter.MultiplierFloor
	}
	return v
}

// Buffs folds owned perks and the active night modifier into one snapshot
// Perks are applied in sorted id order so the product is independent of map iteration
func Buffs(def *level.Definition, run level.Run) BuffSnapshot {
	b := neutralBuffs()

	ids := make([]string, 0, len(run.Perks))
	for id, n := range run.Perks {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	stronghold := float64(max(run.StrongholdLevel, 1))
	for _, id := range ids {
		perk, ok := def.PerkByID(id)
		if !ok {
			continue
		}
		n := run.Perks[id]
		for _, fx := range perk.Effects {
			if fx.Stat == level.StatNightGold {
				b.BonusGold += float64(fx.Delta*float64(n)) * stronghold
				continue
			}
			if m := b.multiplier(fx.Stat); m != nil {
				*m = stack(*m, fx.Delta, n)
			}
		}
	}

	if mod, ok := activeModifier(def, run); ok {
		b.NightModifier = mod.ID
		b.EnemyCount = stack(b.EnemyCount, mod.EnemyCount, 1)
		b.EnemySpeed = stack(b.EnemySpeed, mod.EnemySpeed, 1)
		b.EnemyHP = stack(b.EnemyHP, mod.EnemyHP, 1)
		b.TowersDisabled = b.TowersDisabled || mod.TowersDisabled
		b.ExtraSpawnBorder = b.ExtraSpawnBorder || mod.ExtraSpawnBorder
	}
	return b
}

// activeModifier resolves debug override, then run override, then the day's configured modifier
func activeModifier(def *level.Definition, run level.Run) (level.NightModifier, bool) {
	id := def.Debug.ForcedNightModifier
	if id == "" {
		id = run.ActiveNightModifier
	}
	if id == "" {
		if day, err := def.Day(run.DayIndex); err == nil {
			id = day.NightModifier
		}
	}
	if id == "" {
		return level.NightModifier{}, false
	}
	return def.NightModifierByID(id)
}
