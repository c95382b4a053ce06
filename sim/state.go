package sim

import (
	"slices"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/vmath"
)

// Stats is running battle bookkeeping
type Stats struct {
	Elapsed    float64
	Kills      int
	Losses     int
	LostSquads []string
}

// Abilities holds absolute sim times at which each hero ability is ready again
type Abilities struct {
	Q float64
	E float64
}

// State is one immutable-by-convention battle snapshot
// Entities are kept in ascending ID order
type State struct {
	Time   float64
	Status Status

	Entities    []Entity
	Projectiles []Projectile
	Effects     []Effect

	Def   *CombatDefinition
	Stats Stats

	// WaveIndex counts waves already spawned
	WaveIndex int
	// NextWaveAt is the sequential release time, -1 when not scheduled
	NextWaveAt float64

	BossDefeated bool

	HeroID    EntityID
	HQID      EntityID
	Abilities Abilities

	NextEntityID     EntityID
	NextProjectileID int
}

// NewState builds the opening snapshot of one attempt
func NewState(def *CombatDefinition, roster Roster) *State {
	s := &State{
		Def:              def,
		NextWaveAt:       -1,
		NextEntityID:     1,
		NextProjectileID: 1,
	}

	hqHP := positiveOr(def.HQBaseHP, parameter.HQDefaultHP)
	s.HQID = s.addEntity(Entity{
		Team:   TeamPlayer,
		Kind:   KindHeadquarters,
		Pos:    def.Map.HQ,
		Radius: parameter.HQDefaultRadius,
		HP:     hqHP,
		MaxHP:  hqHP,
		Order:  Stop(),
	})

	h := def.Hero
	heroPos := def.Map.HeroSpawn
	if roster.HeroPos != nil {
		heroPos = *roster.HeroPos
	}
	maxHP := positiveOr(h.HP, parameter.HeroDefaultHP)
	hp := maxHP
	if roster.HeroHP != nil && *roster.HeroHP > 0 {
		hp = min(*roster.HeroHP, maxHP)
	}
	s.HeroID = s.addEntity(Entity{
		Team:     TeamPlayer,
		Kind:     KindHero,
		Pos:      heroPos,
		Radius:   positiveOr(h.Radius, parameter.HeroDefaultRadius),
		HP:       hp,
		MaxHP:    maxHP,
		Attack:   positiveOr(h.Attack, parameter.HeroDefaultAttack),
		Range:    positiveOr(h.Range, parameter.HeroDefaultRange),
		Speed:    positiveOr(h.Speed, parameter.HeroDefaultSpeed),
		Cooldown: positiveOr(h.Cooldown, parameter.HeroDefaultCooldown),
		Order:    Stop(),
	})

	for _, sq := range roster.Squads {
		size := max(sq.Size, 1)
		base := def.PlayerStats.For(sq.Kind)
		hp := base.HP * float64(size)
		s.addEntity(Entity{
			Team:      TeamPlayer,
			Kind:      sq.Kind,
			Pos:       sq.Pos,
			Radius:    base.Radius,
			HP:        hp,
			MaxHP:     hp,
			Attack:    base.Attack * float64(size),
			Range:     base.Range,
			Speed:     base.Speed,
			Cooldown:  base.Cooldown,
			Order:     Stop(),
			SquadID:   sq.ID,
			SquadSize: size,
		})
	}
	return s
}

// addEntity assigns the next id, clamps hp to max and appends
func (s *State) addEntity(e Entity) EntityID {
	e.ID = s.NextEntityID
	s.NextEntityID++
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
	s.Entities = append(s.Entities, e)
	return e.ID
}

// Clone returns a deep copy sharing no mutable substructure with s
// Def is shared; it is never mutated after construction
func (s *State) Clone() *State {
	c := *s
	c.Entities = make([]Entity, len(s.Entities))
	for i := range s.Entities {
		c.Entities[i] = s.Entities[i].clone()
	}
	c.Projectiles = slices.Clone(s.Projectiles)
	c.Effects = slices.Clone(s.Effects)
	c.Stats.LostSquads = slices.Clone(s.Stats.LostSquads)
	return &c
}

func (e Entity) clone() Entity {
	e.Path = slices.Clone(e.Path)
	e.Buffs = slices.Clone(e.Buffs)
	e.Traits = slices.Clone(e.Traits)
	return e
}

// Entity returns a pointer into the live set, nil if absent
func (s *State) Entity(id EntityID) *Entity {
	i, ok := slices.BinarySearchFunc(s.Entities, id, func(e Entity, id EntityID) int {
		return int(e.ID) - int(id)
	})
	if !ok {
		return nil
	}
	return &s.Entities[i]
}

// Hero returns the hero entity, nil once dead and culled
func (s *State) Hero() *Entity {
	return s.Entity(s.HeroID)
}

// HQ returns the headquarters entity, nil once destroyed
func (s *State) HQ() *Entity {
	return s.Entity(s.HQID)
}

// LiveEnemies counts enemy entities with hp > 0
func (s *State) LiveEnemies() int {
	n := 0
	for i := range s.Entities {
		if s.Entities[i].Team == TeamEnemy && s.Entities[i].Alive() {
			n++
		}
	}
	return n
}

// PlayerUnits returns ids of living player squads and the hero, excluding the HQ
func (s *State) PlayerUnits() []EntityID {
	var ids []EntityID
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Team == TeamPlayer && e.Kind != KindHeadquarters && e.Alive() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// WavesRemaining is the number of waves not yet spawned
func (s *State) WavesRemaining() int {
	return max(len(s.Def.Waves)-s.WaveIndex, 0)
}

func (s *State) emit(kind EffectKind, pos vmath.Vec2, radius, duration float64) {
	s.Effects = append(s.Effects, Effect{
		Kind:      kind,
		Pos:       pos,
		Radius:    radius,
		SpawnedAt: s.Time,
		ExpiresAt: s.Time + duration,
	})
}
