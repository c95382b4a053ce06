package sim

import "github.com/lixenwraith/nightwatch/vmath"

// EntityID is a stable entity handle; 0 means none
type EntityID int

// Team is the side an entity fights for
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	}
	return "unknown"
}

// Kind is the troop class of an entity
type Kind uint8

const (
	KindInfantry Kind = iota
	KindArcher
	KindCavalry
	KindHero
	KindElite
	KindHeadquarters
)

func (k Kind) String() string {
	switch k {
	case KindInfantry:
		return "infantry"
	case KindArcher:
		return "archer"
	case KindCavalry:
		return "cavalry"
	case KindHero:
		return "hero"
	case KindElite:
		return "elite"
	case KindHeadquarters:
		return "headquarters"
	}
	return "unknown"
}

// ParseKind maps a troop class name to its Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "infantry", "":
		return KindInfantry, true
	case "archer":
		return KindArcher, true
	case "cavalry":
		return KindCavalry, true
	case "hero":
		return KindHero, true
	case "elite":
		return KindElite, true
	case "headquarters", "hq":
		return KindHeadquarters, true
	}
	return KindInfantry, false
}

// Tier marks boss units
type Tier uint8

const (
	TierNone Tier = iota
	TierMiniBoss
	TierBoss
)

// ParseTier maps an authored tier name
func ParseTier(s string) Tier {
	switch s {
	case "miniBoss":
		return TierMiniBoss
	case "boss":
		return TierBoss
	}
	return TierNone
}

// OrderKind discriminates Order
type OrderKind uint8

const (
	OrderStop OrderKind = iota
	OrderMove
	OrderAttack
	OrderAttackMove
)

func (k OrderKind) String() string {
	switch k {
	case OrderStop:
		return "stop"
	case OrderMove:
		return "move"
	case OrderAttack:
		return "attack"
	case OrderAttackMove:
		return "attackMove"
	}
	return "unknown"
}

// Order is the single active command of an entity
// Point is the destination for move/attackMove and the last known target position for attack
type Order struct {
	Kind   OrderKind
	Point  vmath.Vec2
	Target EntityID
}

// Stop returns a stop order
func Stop() Order { return Order{Kind: OrderStop} }

// MoveTo returns a move order to p
func MoveTo(p vmath.Vec2) Order { return Order{Kind: OrderMove, Point: p} }

// AttackTarget returns an attack order against id last seen at p
func AttackTarget(id EntityID, p vmath.Vec2) Order {
	return Order{Kind: OrderAttack, Point: p, Target: id}
}

// AttackMove returns an attack-move order to p
func AttackMove(p vmath.Vec2) Order { return Order{Kind: OrderAttackMove, Point: p} }

// BuffStat selects the stat a buff scales
type BuffStat uint8

const (
	BuffAttack BuffStat = iota
	BuffSpeed
)

// Buff is a time-stamped stat multiplier, dropped once sim time reaches ExpiresAt
type Buff struct {
	Stat       BuffStat
	Multiplier float64
	ExpiresAt  float64
}

// Entity is one simulated actor
type Entity struct {
	ID     EntityID
	Team   Team
	Kind   Kind
	Tier   Tier
	Pos    vmath.Vec2
	Radius float64

	HP    float64
	MaxHP float64

	Attack       float64
	Range        float64
	Speed        float64
	Cooldown     float64
	CooldownLeft float64

	Order  Order
	Target EntityID

	// Path is the cached waypoint list, PathGoal the position it was planned toward
	Path     []vmath.Vec2
	PathGoal vmath.Vec2

	SquadID   string
	SquadSize int

	Buffs []Buff

	EnemyType string
	Traits    []string
}

// Alive reports hp > 0
func (e *Entity) Alive() bool {
	return e.HP > 0
}

// EffectiveAttack is attack with active attack buffs applied
func (e *Entity) EffectiveAttack() float64 {
	return e.Attack * e.buffMultiplier(BuffAttack)
}

// EffectiveSpeed is speed with active speed buffs applied
func (e *Entity) EffectiveSpeed() float64 {
	return e.Speed * e.buffMultiplier(BuffSpeed)
}

func (e *Entity) buffMultiplier(stat BuffStat) float64 {
	m := 1.0
	for _, b := range e.Buffs {
		if b.Stat == stat && b.Multiplier > 0 {
			m *= b.Multiplier
		}
	}
	return m
}

// Projectile is an in-flight archer shot homing on its target
type Projectile struct {
	ID     int
	Pos    vmath.Vec2
	Target EntityID
	Speed  float64
	Damage float64
	Team   Team
}

// EffectKind is the presentation class of a combat effect
type EffectKind uint8

const (
	EffectHit EffectKind = iota
	EffectSlash
	EffectArea
	EffectHeal
)

func (k EffectKind) String() string {
	switch k {
	case EffectHit:
		return "hit"
	case EffectSlash:
		return "slash"
	case EffectArea:
		return "area"
	case EffectHeal:
		return "heal"
	}
	return "unknown"
}

// Effect is a descriptive event with no gameplay consequence
type Effect struct {
	Kind      EffectKind
	Pos       vmath.Vec2
	Radius    float64
	SpawnedAt float64
	ExpiresAt float64
}

// Status is the battle outcome state
type Status uint8

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "win"
	case StatusLost:
		return "lose"
	}
	return "unknown"
}

// Mode selects whether waves and win/lose evaluation run
type Mode uint8

const (
	ModeBuild Mode = iota
	ModeCombat
)

// Ability is a hero ability slot
type Ability uint8

const (
	AbilityQ Ability = iota
	AbilityE
)

func (a Ability) String() string {
	switch a {
	case AbilityQ:
		return "q"
	case AbilityE:
		return "e"
	}
	return "unknown"
}
