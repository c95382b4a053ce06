package sim

import (
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
	"github.com/lixenwraith/nightwatch/spawn"
	"github.com/lixenwraith/nightwatch/vmath"
)

// spawnDueWaves releases waves according to the definition's wave mode
func (s *State) spawnDueWaves() {
	waves := s.Def.Waves
	switch s.Def.WaveMode {
	case WaveTimed:
		for s.WaveIndex < len(waves) && waves[s.WaveIndex].SpawnTimeSec <= s.Time {
			s.spawnWave(s.WaveIndex)
			s.WaveIndex++
		}

	case WaveSequential:
		if s.WaveIndex >= len(waves) {
			return
		}
		if s.WaveIndex == 0 {
			s.spawnWave(0)
			s.WaveIndex++
			return
		}
		if s.LiveEnemies() > 0 {
			s.NextWaveAt = -1
			return
		}
		if s.NextWaveAt < 0 {
			s.NextWaveAt = s.Time + vmath.ClampMin(s.Def.InterWaveDelaySec, 0)
		}
		if s.Time >= s.NextWaveAt {
			s.spawnWave(s.WaveIndex)
			s.WaveIndex++
			s.NextWaveAt = -1
		}
	}
}

// spawnWave creates one entity per squad of every group in wave wi
// Positions are jittered around the wave anchors with a stream derived from (seed, day, wave)
func (s *State) spawnWave(wi int) {
	def := s.Def
	w := def.Waves[wi]
	r := rng.New(rng.DeriveSeed(def.Seed, "waveJitter", def.DayIndex, wi))

	anchors := w.Anchors
	if len(anchors) == 0 {
		anchors = []spawn.Transform{{Pos: def.Map.EnemySpawn, Weight: 1}}
	}
	weighted := hasUnevenWeights(anchors)

	hpMul := positiveOr(def.EnemyHPMultiplier, 1)
	atkMul := positiveOr(def.EnemyAttackMultiplier, 1)
	speedMul := positiveOr(def.EnemySpeedMultiplier, 1)
	if w.IsBoss {
		hpMul = float64(hpMul * parameter.BossWaveMultiplier)
		atkMul = float64(atkMul * parameter.BossWaveMultiplier)
	}

	slot := 0
	for _, g := range w.Groups {
		for n := 0; n < g.Squads; n++ {
			var anchor spawn.Transform
			if weighted {
				anchor = weightedAnchor(anchors, r)
			} else {
				anchor = anchors[slot%len(anchors)]
			}
			slot++

			jx := float64((r.NextFloat()*2 - 1) * parameter.SpawnJitter)
			jy := float64((r.NextFloat()*2 - 1) * parameter.SpawnJitter)

			size := max(g.SquadSize, 1)
			hp := float64(g.Stats.HP*hpMul) * float64(size)
			atk := float64(g.Stats.Attack*atkMul) * float64(size)
			kind := g.Kind
			radius := positiveOr(g.Stats.Radius, parameter.EnemyDefaultRadius)
			if g.Elite {
				kind = KindElite
				hp = float64(hp * parameter.EliteHPMultiplier)
				atk = float64(atk * parameter.EliteAttackMultiplier)
				radius += parameter.EliteRadiusBonus
			}

			s.addEntity(Entity{
				Team:      TeamEnemy,
				Kind:      kind,
				Tier:      g.Tier,
				Pos:       anchor.Pos.Add(vmath.V(jx, jy)),
				Radius:    radius,
				HP:        hp,
				MaxHP:     hp,
				Attack:    atk,
				Range:     positiveOr(g.Stats.Range, parameter.EnemyDefaultRange),
				Speed:     float64(positiveOr(g.Stats.Speed, parameter.EnemyDefaultSpeed) * speedMul),
				Cooldown:  positiveOr(g.Stats.Cooldown, parameter.EnemyDefaultCooldown),
				Order:     AttackMove(def.Map.HQ),
				SquadSize: size,
				EnemyType: g.EnemyType,
				Traits:    append([]string(nil), g.Traits...),
			})
		}
	}
}

// assignIdleEnemies re-issues attack-move toward the HQ to enemies left without work
func (s *State) assignIdleEnemies() {
	hq := s.HQ()
	if hq == nil {
		return
	}
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Team == TeamEnemy && e.Alive() && e.Order.Kind == OrderStop && e.Target == 0 {
			e.Order = AttackMove(hq.Pos)
			e.Path = nil
		}
	}
}

func hasUnevenWeights(anchors []spawn.Transform) bool {
	for _, a := range anchors[1:] {
		if a.Weight != anchors[0].Weight {
			return true
		}
	}
	return false
}

func weightedAnchor(anchors []spawn.Transform, r *rng.Rand) spawn.Transform {
	total := 0.0
	for _, a := range anchors {
		total += positiveOr(a.Weight, 1)
	}
	roll := float64(r.NextFloat() * total)
	for _, a := range anchors {
		roll -= positiveOr(a.Weight, 1)
		if roll < 0 {
			return a
		}
	}
	return anchors[len(anchors)-1]
}
