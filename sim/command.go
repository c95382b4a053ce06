package sim

import "github.com/lixenwraith/nightwatch/parameter"

// IssueOrder replaces the order of every listed living player unit
// The HQ and enemy entities are ignored. Returns s itself when nothing changed.
func IssueOrder(s *State, ids []EntityID, order Order) *State {
	if s == nil || s.Status != StatusRunning {
		return s
	}
	var next *State
	for _, id := range ids {
		cur := s.Entity(id)
		if cur == nil || !cur.Alive() || cur.Team != TeamPlayer || cur.Kind == KindHeadquarters {
			continue
		}
		if next == nil {
			next = s.Clone()
		}
		e := next.Entity(id)
		e.Order = order
		e.Path = nil
		e.Target = 0
		if order.Kind == OrderAttack {
			e.Target = order.Target
			if t := next.Entity(order.Target); t != nil {
				e.Order.Point = t.Pos
			}
		}
	}
	if next == nil {
		return s
	}
	return next
}

// CastAbility triggers a hero ability when it is off cooldown
// No-op when the hero is dead, the battle ended, or sim time is before the stored expiry
func CastAbility(s *State, a Ability) *State {
	if s == nil || s.Status != StatusRunning {
		return s
	}
	hero := s.Hero()
	if hero == nil || !hero.Alive() {
		return s
	}
	loadout := s.Def.Hero

	switch a {
	case AbilityQ:
		if s.Time < s.Abilities.Q {
			return s
		}
		next := s.Clone()
		h := next.Hero()
		radius := positiveOr(loadout.AreaRadius, 0)
		for i := range next.Entities {
			e := &next.Entities[i]
			if e.Team != TeamEnemy || !e.Alive() {
				continue
			}
			if e.Pos.Dist(h.Pos) <= radius {
				e.HP -= loadout.AreaDamage
			}
		}
		next.emit(EffectArea, h.Pos, radius, parameter.EffectAreaDuration)
		next.Abilities.Q = next.Time + loadout.AreaCooldown
		return next

	case AbilityE:
		if s.Time < s.Abilities.E {
			return s
		}
		next := s.Clone()
		h := next.Hero()
		h.HP = min(h.HP+loadout.HealAmount, h.MaxHP)
		next.emit(EffectHeal, h.Pos, h.Radius, parameter.EffectHealDuration)
		next.Abilities.E = next.Time + loadout.HealCooldown
		return next
	}
	return s
}

// AddBuff attaches a timed stat multiplier to a living entity
func AddBuff(s *State, id EntityID, b Buff) *State {
	if s == nil {
		return s
	}
	cur := s.Entity(id)
	if cur == nil || !cur.Alive() || !(b.Multiplier > 0) || b.ExpiresAt <= s.Time {
		return s
	}
	next := s.Clone()
	e := next.Entity(id)
	e.Buffs = append(e.Buffs, b)
	return next
}
