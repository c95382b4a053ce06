package sim

import (
	"github.com/lixenwraith/nightwatch/parameter"
)

// TypeMultiplier is the damage factor of attacker kind against defender kind
// Infantry beats cavalry, cavalry beats archers, archers beat infantry
func TypeMultiplier(attacker, defender Kind) float64 {
	switch {
	case attacker == KindInfantry && defender == KindCavalry,
		attacker == KindCavalry && defender == KindArcher,
		attacker == KindArcher && defender == KindInfantry:
		return parameter.TypeAdvantageMultiplier
	case attacker == KindCavalry && defender == KindInfantry,
		attacker == KindArcher && defender == KindCavalry,
		attacker == KindInfantry && defender == KindArcher:
		return parameter.TypeDisadvantageMultiplier
	}
	return 1
}

// tryAttack fires at t when in range and off cooldown
// Archers launch a homing projectile; every other kind deals damage immediately
func (s *State) tryAttack(e, t *Entity) bool {
	if e.CooldownLeft > 0 || e.Attack <= 0 || !t.Alive() {
		return false
	}
	if e.Pos.Dist(t.Pos) > e.Range {
		return false
	}

	dmg := float64(e.EffectiveAttack() * TypeMultiplier(e.Kind, t.Kind))
	e.CooldownLeft = e.Cooldown

	if e.Kind == KindArcher {
		if e.Team == TeamPlayer && s.Def.RangedDamageMultiplier > 0 {
			dmg = float64(dmg * s.Def.RangedDamageMultiplier)
		}
		s.Projectiles = append(s.Projectiles, Projectile{
			ID:     s.NextProjectileID,
			Pos:    e.Pos,
			Target: t.ID,
			Speed:  parameter.ProjectileSpeed,
			Damage: dmg,
			Team:   e.Team,
		})
		s.NextProjectileID++
		return true
	}

	t.HP -= dmg
	if e.Kind == KindHero || e.Kind == KindCavalry {
		s.emit(EffectSlash, t.Pos, t.Radius, parameter.EffectSlashDuration)
	} else {
		s.emit(EffectHit, t.Pos, t.Radius, parameter.EffectHitDuration)
	}
	return true
}

// advanceProjectiles homes every projectile on its target's current position
// Projectiles whose target is gone are discarded
func (s *State) advanceProjectiles(dt float64) {
	live := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		t := s.Entity(p.Target)
		if t == nil || !t.Alive() {
			continue
		}
		p.Pos, _ = p.Pos.MoveToward(t.Pos, float64(p.Speed*dt))
		if p.Pos.Dist(t.Pos) <= parameter.ProjectileHitRadius {
			t.HP -= p.Damage
			s.emit(EffectHit, t.Pos, t.Radius, parameter.EffectHitDuration)
			continue
		}
		live = append(live, p)
	}
	if len(live) == 0 {
		live = nil
	}
	s.Projectiles = live
}
