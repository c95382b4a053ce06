package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nightwatch/sim"
	"github.com/lixenwraith/nightwatch/vmath"
)

// action is a host command decoded from a key press
type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionReset
	actionMute
	actionAbilityQ
	actionAbilityE
	actionMove
	actionAttackMove
	actionAttack
	actionStop
	actionCursorUp
	actionCursorDown
	actionCursorLeft
	actionCursorRight
)

func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionCursorUp
	case tcell.KeyDown:
		return actionCursorDown
	case tcell.KeyLeft:
		return actionCursorLeft
	case tcell.KeyRight:
		return actionCursorRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return actionPause
		case 'r':
			return actionReset
		case 'M':
			return actionMute
		case 'q':
			return actionAbilityQ
		case 'e':
			return actionAbilityE
		case 'm':
			return actionMove
		case 'a':
			return actionAttackMove
		case 't':
			return actionAttack
		case 's':
			return actionStop
		}
	}
	return actionNone
}

// commander is the subset of the runner the input layer drives
type commander interface {
	Snapshot() *sim.State
	IssueOrder(ids []sim.EntityID, order sim.Order) bool
	CastAbility(a sim.Ability) bool
	TogglePause() bool
	Reset()
}

// cursor is the command cursor in screen cells
type cursor struct {
	x, y int
}

func (c *cursor) move(a action, vp viewport) {
	switch a {
	case actionCursorUp:
		c.y--
	case actionCursorDown:
		c.y++
	case actionCursorLeft:
		c.x--
	case actionCursorRight:
		c.x++
	}
	c.x, c.y = vp.clamp(c.x, c.y)
}

// command applies a squad or ability action against the runner, returning whether it took effect
func command(r commander, a action, target vmath.Vec2) bool {
	switch a {
	case actionAbilityQ:
		return r.CastAbility(sim.AbilityQ)
	case actionAbilityE:
		return r.CastAbility(sim.AbilityE)
	}

	s := r.Snapshot()
	ids := s.PlayerUnits()
	switch a {
	case actionMove:
		return r.IssueOrder(ids, sim.MoveTo(target))
	case actionAttackMove:
		return r.IssueOrder(ids, sim.AttackMove(target))
	case actionStop:
		return r.IssueOrder(ids, sim.Stop())
	case actionAttack:
		if e := nearestEnemy(s, target); e != nil {
			return r.IssueOrder(ids, sim.AttackTarget(e.ID, e.Pos))
		}
	}
	return false
}

// nearestEnemy returns the live enemy closest to p, lowest id on ties
func nearestEnemy(s *sim.State, p vmath.Vec2) *sim.Entity {
	var best *sim.Entity
	bestD := 0.0
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Team != sim.TeamEnemy || !e.Alive() {
			continue
		}
		if d := e.Pos.DistSq(p); best == nil || d < bestD {
			best, bestD = e, d
		}
	}
	return best
}
