package night

import (
	"slices"
	"sort"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/sim"
)

// CombatDefinition resolves a plan into simulation input for the run's day
// Archetype, trait and stronghold scaling are folded into per-group stats here; day and
// buff multipliers travel on the definition and are applied at spawn.
func CombatDefinition(def *level.Definition, run level.Run, plan Plan) (*sim.CombatDefinition, error) {
	day, err := def.Day(run.DayIndex)
	if err != nil {
		return nil, err
	}

	h := def.Hero
	lvl := float64(max(run.Hero.Level, 1) - 1)
	hero := sim.HeroLoadout{
		UnitStats: sim.UnitStats{
			HP:       h.HP + float64(h.HPPerLevel*lvl),
			Attack:   h.Attack + float64(h.AttackPerLevel*lvl),
			Range:    h.Range,
			Speed:    h.Speed,
			Cooldown: h.Cooldown,
			Radius:   h.Radius,
		},
		AreaDamage:   h.AreaDamage,
		AreaRadius:   h.AreaRadius,
		AreaCooldown: h.AreaCooldown,
		HealAmount:   h.HealAmount,
		HealCooldown: h.HealCooldown,
	}

	cd := &sim.CombatDefinition{
		Seed:     run.Seed,
		DayIndex: run.DayIndex,
		Map: sim.BattleMap{
			Width:      def.Map.Width,
			Height:     def.Map.Height,
			CellSize:   def.Map.CellSize,
			Obstacles:  slices.Clone(def.Map.Obstacles),
			HQ:         def.Map.HQ,
			EnemySpawn: def.Map.EnemySpawn,
			HeroSpawn:  def.Map.HeroSpawn,
		},
		Hero:                   hero,
		WaveMode:               sim.WaveSequential,
		InterWaveDelaySec:      day.InterWaveDelaySec,
		EnemyHPMultiplier:      float64(day.EnemyHPMultiplier * plan.Buffs.EnemyHP),
		EnemyAttackMultiplier:  day.EnemyAttackMultiplier,
		EnemySpeedMultiplier:   plan.Buffs.EnemySpeed,
		RangedDamageMultiplier: plan.Buffs.RangedDamage,
		HQBaseHP:               def.HQBaseHP,
	}
	if day.WaveMode == level.WaveModeTimed {
		cd.WaveMode = sim.WaveTimed
	}

	for _, pw := range plan.Waves {
		cd.Waves = append(cd.Waves, sim.CombatWave{
			ID:           pw.ID,
			SpawnTimeSec: pw.SpawnTimeSec,
			IsBoss:       pw.IsBoss,
			Groups:       groupSpawns(def, pw.Spawns),
			Anchors:      slices.Clone(pw.Transforms),
		})
	}
	if cd.WaveMode == sim.WaveTimed {
		sort.SliceStable(cd.Waves, func(i, j int) bool {
			return cd.Waves[i].SpawnTimeSec < cd.Waves[j].SpawnTimeSec
		})
	}
	return cd, nil
}

// groupSpawns collapses runs of identical planned spawns into unit groups
func groupSpawns(def *level.Definition, spawns []PlannedSpawn) []sim.CombatUnitGroup {
	var groups []sim.CombatUnitGroup
	for _, ps := range spawns {
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if last.EnemyType == ps.EnemyType && last.Elite == ps.Elite &&
				last.SquadSize == ps.SquadSize && slices.Equal(last.Traits, ps.Traits) {
				last.Squads++
				continue
			}
		}

		a := def.Archetype(ps.EnemyType)
		kind, _ := sim.ParseKind(string(a.Kind))
		stats := sim.UnitStats{
			HP:       a.HP,
			Attack:   a.Attack,
			Range:    a.Range,
			Speed:    a.Speed,
			Cooldown: a.Cooldown,
			Radius:   a.Radius,
		}
		for _, id := range ps.Traits {
			if t, ok := def.TraitByID(id); ok {
				stats.HP = float64(stats.HP * positive(t.HPMultiplier))
				stats.Attack = float64(stats.Attack * positive(t.AttackMultiplier))
				stats.Speed = float64(stats.Speed * positive(t.SpeedMultiplier))
			}
		}

		groups = append(groups, sim.CombatUnitGroup{
			EnemyType: ps.EnemyType,
			Kind:      kind,
			Tier:      sim.ParseTier(string(a.Tier)),
			Stats:     stats,
			Squads:    1,
			SquadSize: ps.SquadSize,
			Elite:     ps.Elite,
			Traits:    append([]string(nil), ps.Traits...),
		})
	}
	return groups
}

// Roster converts the run's squads and hero carry-over
func Roster(run level.Run) sim.Roster {
	r := sim.Roster{
		HeroPos: run.Hero.Position,
		HeroHP:  run.Hero.HP,
	}
	for _, sq := range run.Squads {
		kind, _ := sim.ParseKind(string(sq.Kind))
		r.Squads = append(r.Squads, sim.RosterSquad{
			ID:   sq.ID,
			Kind: kind,
			Size: sq.Size,
			Pos:  sq.Position,
		})
	}
	return r
}

func positive(v float64) float64 {
	if v > 0 {
		return v
	}
	return 1
}
