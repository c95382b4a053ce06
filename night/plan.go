package night

import (
	"math"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
	"github.com/lixenwraith/nightwatch/spawn"
	"github.com/lixenwraith/nightwatch/vmath"
)

// PlannedSpawn is one enemy the wave will release
type PlannedSpawn struct {
	EnemyType  string   `msgpack:"type"`
	GroupIndex int      `msgpack:"group"`
	SpawnIndex int      `msgpack:"index"`
	SquadSize  int      `msgpack:"squad_size,omitempty"`
	Traits     []string `msgpack:"traits,omitempty"`
	Elite      bool     `msgpack:"elite"`

	// EliteRoll is the raw draw kept for auditing
	EliteRoll float64 `msgpack:"elite_roll"`
}

// PlanWave is a fully expanded wave
type PlanWave struct {
	Index        int     `msgpack:"index"`
	ID           string  `msgpack:"id"`
	SpawnTimeSec float64 `msgpack:"spawn_time"`
	IsBoss       bool    `msgpack:"boss"`

	Spawns     []PlannedSpawn    `msgpack:"spawns"`
	Edges      []spawn.Edge      `msgpack:"edges"`
	Transforms []spawn.Transform `msgpack:"transforms"`

	// SpawnPoint is set when the wave uses the legacy single-point configuration
	SpawnPoint *vmath.Vec2 `msgpack:"spawn_point,omitempty"`
}

// Intel is the preview summary of a night
type Intel struct {
	EnemyTypes   []string `msgpack:"enemy_types"`
	Traits       []string `msgpack:"traits"`
	EliteWarning bool     `msgpack:"elite_warning"`
	TotalSpawns  int      `msgpack:"total_spawns"`
}

// Plan is the replayable battle script of one night
type Plan struct {
	Seed     uint32       `msgpack:"seed"`
	DayIndex int          `msgpack:"day"`
	Buffs    BuffSnapshot `msgpack:"buffs"`
	Waves    []PlanWave   `msgpack:"waves"`
	Intel    Intel        `msgpack:"intel"`
}

// BuildPlan expands declarative waves into concrete spawns
// Every random draw derives from the run seed and stable indices only
func BuildPlan(def *level.Definition, run level.Run, waves []level.Wave) Plan {
	buffs := Buffs(def, run)
	plan := Plan{
		Seed:     run.Seed,
		DayIndex: run.DayIndex,
		Buffs:    buffs,
		Waves:    make([]PlanWave, 0, len(waves)),
	}
	countMul := vmath.ClampMin(buffs.EnemyCount, parameter.MultiplierFloor)

	seenType := make(map[string]bool)
	seenTrait := make(map[string]bool)

	for wi, w := range waves {
		pw := PlanWave{
			Index:        wi,
			ID:           w.ID,
			SpawnTimeSec: w.SpawnTimeSec,
			IsBoss:       w.IsBoss,
		}

		for gi, g := range normalizeGroups(w) {
			count := max(int(math.Round(float64(max(g.Count, 0))*countMul)), 1)
			traits := mergeTraits(def, w.Traits, g.Traits)
			chance := w.EliteChance
			if g.EliteChance != nil {
				chance = *g.EliteChance
			}

			for si := 0; si < count; si++ {
				roll := rng.New(rng.DeriveSeed(run.Seed, "eliteRoll", run.DayIndex, wi, gi, g.Type, si)).NextFloat()
				elite := roll < chance
				if def.Debug.ForceElite != nil {
					elite = *def.Debug.ForceElite
				}
				pw.Spawns = append(pw.Spawns, PlannedSpawn{
					EnemyType:  g.Type,
					GroupIndex: gi,
					SpawnIndex: si,
					SquadSize:  g.SquadSize,
					Traits:     append([]string(nil), traits...),
					Elite:      elite,
					EliteRoll:  roll,
				})

				if elite {
					plan.Intel.EliteWarning = true
				}
				if !seenType[g.Type] {
					seenType[g.Type] = true
					plan.Intel.EnemyTypes = append(plan.Intel.EnemyTypes, g.Type)
				}
				for _, t := range traits {
					if !seenTrait[t] {
						seenTrait[t] = true
						plan.Intel.Traits = append(plan.Intel.Traits, t)
					}
				}
			}
		}
		plan.Intel.TotalSpawns += len(pw.Spawns)

		resolveWaveEdges(def, run, wi, w, buffs, &pw)
		plan.Waves = append(plan.Waves, pw)
	}
	return plan
}

// normalizeGroups prefers explicit groups over legacy unit lists
func normalizeGroups(w level.Wave) []level.UnitGroup {
	if len(w.Groups) > 0 {
		return w.Groups
	}
	groups := make([]level.UnitGroup, 0, len(w.Units))
	for _, u := range w.Units {
		groups = append(groups, level.UnitGroup{Type: u.Type, Count: u.Count})
	}
	return groups
}

// mergeTraits picks group traits over wave traits, drops unknown ids and duplicates,
// and puts a debug-forced trait first
func mergeTraits(def *level.Definition, waveTraits, groupTraits []string) []string {
	src := waveTraits
	if len(groupTraits) > 0 {
		src = groupTraits
	}
	var out []string
	seen := make(map[string]bool)
	if forced := def.Debug.ForcedTrait; forced != "" {
		if _, ok := def.TraitByID(forced); ok {
			out = append(out, forced)
			seen[forced] = true
		}
	}
	for _, id := range src {
		if seen[id] {
			continue
		}
		if _, ok := def.TraitByID(id); !ok {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// resolveWaveEdges fills edges and transforms, injecting an extra border when buffed
// Waves with no edge configuration fall back to a single legacy spawn point
func resolveWaveEdges(def *level.Definition, run level.Run, wi int, w level.Wave, buffs BuffSnapshot, pw *PlanWave) {
	bounds := def.Map.Bounds()
	padding := w.SpawnPadding
	if padding <= 0 {
		padding = parameter.SpawnDefaultPadding
	}
	minDist := w.SpawnMinDistance
	if minDist <= 0 {
		minDist = parameter.SpawnDefaultMinDistance
	}
	perEdge := w.SpawnPointsPerEdge
	if !perEdge.IsRange() && perEdge.Fixed <= 0 {
		perEdge = spawn.FixedCount(1)
	}

	specs := append([]spawn.EdgeSpec(nil), w.SpawnEdges...)
	used := make(map[spawn.Edge]bool, 4)
	for _, s := range specs {
		if e, ok := spawn.NormalizeEdge(s.Edge); ok {
			used[e] = true
		}
	}

	var legacy *spawn.Transform
	if len(used) == 0 {
		p := def.Map.EnemySpawn
		if w.SpawnPoint != nil {
			p = *w.SpawnPoint
		}
		pt := p
		pw.SpawnPoint = &pt
		e := spawn.InferEdge(p, bounds)
		used[e] = true
		legacy = &spawn.Transform{Pos: p, Forward: e.Forward(), Edge: e, Weight: 1}
		specs = nil
	}

	if buffs.ExtraSpawnBorder {
		var free []spawn.Edge
		for _, e := range spawn.AllEdges {
			if !used[e] {
				free = append(free, e)
			}
		}
		r := rng.New(rng.DeriveSeed(run.Seed, "extraSpawnEdge", run.DayIndex, wi))
		if e, ok := rng.Pick(r, free); ok {
			specs = append(specs, spawn.EdgeSpec{Edge: string(e)})
		}
	}

	if legacy != nil {
		pw.Transforms = append(pw.Transforms, *legacy)
	}
	if len(specs) > 0 {
		seed := rng.DeriveSeed(run.Seed, "spawnEdges", run.DayIndex, wi)
		pw.Transforms = append(pw.Transforms, spawn.ResolveTransforms(specs, perEdge, bounds, padding, minDist, seed)...)
	}

	seen := make(map[spawn.Edge]bool, 4)
	for _, t := range pw.Transforms {
		if !seen[t.Edge] {
			seen[t.Edge] = true
			pw.Edges = append(pw.Edges, t.Edge)
		}
	}
}
