package sim

import (
	"math"

	"github.com/lixenwraith/nightwatch/navigation"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/vmath"
)

// Step advances the battle by dt seconds and returns the next snapshot
// The input state is never mutated. Terminal states are returned as an unchanged copy.
func Step(s *State, dt float64, grid *navigation.Grid, mode Mode) *State {
	if s == nil {
		return nil
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	next := s.Clone()
	if next.Status != StatusRunning {
		return next
	}

	// (a) time
	next.Time += dt
	next.Stats.Elapsed = next.Time
	next.expireEffects()

	// (c) waves and default enemy orders
	if mode == ModeCombat {
		next.spawnDueWaves()
		next.assignIdleEnemies()
	}

	// (d) entities
	for i := range next.Entities {
		e := &next.Entities[i]
		if !e.Alive() {
			continue
		}
		e.CooldownLeft = vmath.ClampMin(e.CooldownLeft-dt, 0)
		e.expireBuffs(next.Time)
		next.execute(e, dt, grid)
	}

	// (e) projectiles
	next.advanceProjectiles(dt)

	// (f) casualties
	next.cull()

	// (g) outcome
	if mode == ModeCombat {
		next.evaluateOutcome()
	}
	return next
}

func (s *State) expireEffects() {
	live := s.Effects[:0]
	for _, fx := range s.Effects {
		if fx.ExpiresAt > s.Time {
			live = append(live, fx)
		}
	}
	s.Effects = live
}

func (e *Entity) expireBuffs(now float64) {
	if len(e.Buffs) == 0 {
		return
	}
	live := e.Buffs[:0]
	for _, b := range e.Buffs {
		if b.ExpiresAt > now {
			live = append(live, b)
		}
	}
	if len(live) == 0 {
		live = nil
	}
	e.Buffs = live
}

// execute runs one entity's order state machine
func (s *State) execute(e *Entity, dt float64, grid *navigation.Grid) {
	switch e.Order.Kind {
	case OrderStop:
		e.Path = nil
		t := s.liveTarget(e)
		if t == nil || e.Pos.Dist(t.Pos) > e.Range {
			e.Target = 0
			t = s.nearestHostile(e, e.Range)
			if t != nil {
				e.Target = t.ID
			}
		}
		if t != nil {
			s.tryAttack(e, t)
		}

	case OrderMove:
		if t := s.nearestHostile(e, e.Range); t != nil {
			s.tryAttack(e, t)
		}
		if s.advance(e, e.Order.Point, dt, grid) {
			e.Order = Stop()
			e.Path = nil
		}

	case OrderAttack:
		t := s.liveTarget(e)
		if t == nil && e.Order.Target != 0 {
			if ot := s.Entity(e.Order.Target); ot != nil && ot.Alive() && ot.Team != e.Team {
				t = ot
				e.Target = t.ID
			}
		}
		if t == nil {
			e.Target = 0
			e.Order.Target = 0
			if t = s.nearestHostile(e, e.Range+parameter.AttackEngageBonus); t != nil {
				e.Target = t.ID
				e.Order.Target = t.ID
				e.Path = nil
			}
		}
		if t == nil {
			if s.advance(e, e.Order.Point, dt, grid) {
				e.Order = Stop()
				e.Path = nil
			}
			return
		}
		e.Order.Point = t.Pos
		s.engage(e, t, dt, grid)

	case OrderAttackMove:
		t := s.liveTarget(e)
		if t == nil {
			if e.Target != 0 {
				e.Path = nil
			}
			e.Target = 0
			if t = s.nearestHostile(e, parameter.AttackMoveEngageRadius); t != nil {
				e.Target = t.ID
				e.Path = nil
			}
		}
		if t == nil {
			if s.advance(e, e.Order.Point, dt, grid) {
				e.Order = Stop()
				e.Path = nil
			}
			return
		}
		s.engage(e, t, dt, grid)
	}
}

// engage fires when in range, otherwise chases the target's current position
func (s *State) engage(e, t *Entity, dt float64, grid *navigation.Grid) {
	if e.Pos.Dist(t.Pos) <= e.Range {
		s.tryAttack(e, t)
		return
	}
	s.advance(e, t.Pos, dt, grid)
}

// liveTarget resolves the entity's current target, nil if gone or dead
func (s *State) liveTarget(e *Entity) *Entity {
	if e.Target == 0 {
		return nil
	}
	t := s.Entity(e.Target)
	if t == nil || !t.Alive() || t.Team == e.Team {
		return nil
	}
	return t
}

// nearestHostile returns the closest living opposing entity within radius of e's center
// Ties keep the lowest id
func (s *State) nearestHostile(e *Entity, radius float64) *Entity {
	if e.Attack <= 0 {
		return nil
	}
	var best *Entity
	bestDist := math.Inf(1)
	for i := range s.Entities {
		o := &s.Entities[i]
		if o.Team == e.Team || !o.Alive() {
			continue
		}
		d := e.Pos.Dist(o.Pos)
		if d <= radius && d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// advance moves e along its cached path toward goal, replanning when the path is empty or
// the goal drifted beyond the repath distance. Returns true once within arrival radius of goal.
func (s *State) advance(e *Entity, goal vmath.Vec2, dt float64, grid *navigation.Grid) bool {
	if e.Pos.Dist(goal) <= parameter.ArrivalRadius {
		return true
	}
	speed := e.EffectiveSpeed()
	if speed <= 0 || dt <= 0 {
		return false
	}
	if len(e.Path) == 0 || e.PathGoal.Dist(goal) > parameter.NavRepathDistance {
		e.Path = planPath(grid, e.Pos, goal)
		e.PathGoal = goal
	}

	budget := float64(speed * dt)
	for budget > 0 && len(e.Path) > 0 {
		wp := e.Path[0]
		d := e.Pos.Dist(wp)
		pos, reached := e.Pos.MoveToward(wp, budget)
		e.Pos = pos
		if !reached {
			break
		}
		budget -= d
		e.Path = e.Path[1:]
	}
	if len(e.Path) == 0 {
		e.Path = nil
	}
	return e.Pos.Dist(goal) <= parameter.ArrivalRadius
}

// planPath turns a grid route into walkable waypoints ending at the exact goal
// The start cell center is dropped since the walker already stands in that cell.
// Unroutable goals degrade to a straight line.
func planPath(grid *navigation.Grid, from, goal vmath.Vec2) []vmath.Vec2 {
	if grid == nil {
		return []vmath.Vec2{goal}
	}
	cells, found := navigation.FindPath(grid, from, goal)
	if !found {
		return []vmath.Vec2{goal}
	}
	path := make([]vmath.Vec2, 0, len(cells))
	if len(cells) > 1 {
		path = append(path, cells[1:]...)
	}
	if gx, gy := grid.CellOf(goal); !grid.IsBlocked(gx, gy) {
		path = append(path, goal)
	}
	if len(path) == 0 {
		path = append(path, cells[len(cells)-1])
	}
	return path
}

// cull removes entities with hp <= 0 and tallies kills and losses
func (s *State) cull() {
	live := s.Entities[:0]
	for _, e := range s.Entities {
		if e.Alive() {
			live = append(live, e)
			continue
		}
		switch e.Team {
		case TeamEnemy:
			s.Stats.Kills += max(e.SquadSize, 1)
			if e.Tier == TierBoss {
				s.BossDefeated = true
			}
		case TeamPlayer:
			if e.Kind == KindHeadquarters {
				continue
			}
			s.Stats.Losses++
			if e.SquadID != "" && !containsString(s.Stats.LostSquads, e.SquadID) {
				s.Stats.LostSquads = append(s.Stats.LostSquads, e.SquadID)
			}
		}
	}
	s.Entities = live
}

func (s *State) evaluateOutcome() {
	if s.HQ() == nil {
		s.Status = StatusLost
		return
	}
	if s.WavesRemaining() == 0 && s.LiveEnemies() == 0 {
		s.Status = StatusWon
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
