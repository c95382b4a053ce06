package level

import (
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/vmath"
)

func defaultArchetype() Archetype {
	return Archetype{
		Kind:     KindInfantry,
		HP:       parameter.EnemyDefaultHP,
		Attack:   parameter.EnemyDefaultAttack,
		Range:    parameter.EnemyDefaultRange,
		Speed:    parameter.EnemyDefaultSpeed,
		Cooldown: parameter.EnemyDefaultCooldown,
		Radius:   parameter.EnemyDefaultRadius,
	}
}

func orDefault(v *float64, def float64) {
	if !(*v > 0) {
		*v = def
	}
}

// ApplyDefaults fills zero-valued tuning fields in place
func (d *Definition) ApplyDefaults() {
	orDefault(&d.Map.CellSize, parameter.NavDefaultCellSize)
	orDefault(&d.HQBaseHP, parameter.HQDefaultHP)
	if d.Map.HQ == (vmath.Vec2{}) && d.Map.Width > 0 {
		d.Map.HQ.X = d.Map.Width / 2
		d.Map.HQ.Y = d.Map.Height / 2
	}
	if d.Map.HeroSpawn.X == 0 && d.Map.HeroSpawn.Y == 0 {
		d.Map.HeroSpawn = d.Map.HQ
		d.Map.HeroSpawn.Y += parameter.HQDefaultRadius * 2
	}

	h := &d.Hero
	orDefault(&h.HP, parameter.HeroDefaultHP)
	orDefault(&h.Attack, parameter.HeroDefaultAttack)
	orDefault(&h.Range, parameter.HeroDefaultRange)
	orDefault(&h.Speed, parameter.HeroDefaultSpeed)
	orDefault(&h.Cooldown, parameter.HeroDefaultCooldown)
	orDefault(&h.Radius, parameter.HeroDefaultRadius)
	orDefault(&h.AreaDamage, parameter.HeroAreaDamage)
	orDefault(&h.AreaRadius, parameter.HeroAreaRadius)
	orDefault(&h.AreaCooldown, parameter.HeroAreaCooldown)
	orDefault(&h.HealAmount, parameter.HeroHealAmount)
	orDefault(&h.HealCooldown, parameter.HeroHealCooldown)

	def := defaultArchetype()
	for id, a := range d.Enemies {
		if a.Kind == "" {
			a.Kind = def.Kind
		}
		orDefault(&a.HP, def.HP)
		orDefault(&a.Attack, def.Attack)
		orDefault(&a.Range, def.Range)
		orDefault(&a.Speed, def.Speed)
		orDefault(&a.Cooldown, def.Cooldown)
		orDefault(&a.Radius, def.Radius)
		d.Enemies[id] = a
	}

	for i := range d.Traits {
		t := &d.Traits[i]
		orDefault(&t.HPMultiplier, 1)
		orDefault(&t.AttackMultiplier, 1)
		orDefault(&t.SpeedMultiplier, 1)
	}

	if d.PerkCap <= 0 {
		d.PerkCap = parameter.DefaultPerkCap
	}
	if d.OffersPerNight <= 0 {
		d.OffersPerNight = parameter.DefaultOffersPerNight
	}

	for i := range d.Days {
		day := &d.Days[i]
		if day.Index == 0 && i > 0 {
			day.Index = i
		}
		if day.WaveMode != WaveModeTimed {
			day.WaveMode = WaveModeSequential
		}
		if day.InterWaveDelaySec < 0 {
			day.InterWaveDelaySec = 0
		}
		if day.InterWaveDelaySec == 0 && day.WaveMode == WaveModeSequential {
			day.InterWaveDelaySec = parameter.DefaultInterWaveDelay
		}
		orDefault(&day.EnemyHPMultiplier, 1)
		orDefault(&day.EnemyAttackMultiplier, 1)

		for j := range day.Waves {
			w := &day.Waves[j]
			if w.SpawnPadding <= 0 {
				w.SpawnPadding = parameter.SpawnDefaultPadding
			}
			if w.SpawnMinDistance <= 0 {
				w.SpawnMinDistance = parameter.SpawnDefaultMinDistance
			}
			if !w.SpawnPointsPerEdge.IsRange() && w.SpawnPointsPerEdge.Fixed <= 0 {
				w.SpawnPointsPerEdge.Fixed = 1
			}
		}
	}
}
