package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nightwatch/sim"
	"github.com/lixenwraith/nightwatch/vmath"
)

// hudRows is reserved below the battlefield for status lines
const hudRows = 2

var (
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHero     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHQ       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEffect   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHeal     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// viewport maps battlefield units onto terminal cells
type viewport struct {
	cols, rows    int
	width, height float64
}

func newViewport(screenW, screenH int, m sim.BattleMap) viewport {
	return viewport{
		cols:   max(screenW, 1),
		rows:   max(screenH-hudRows, 1),
		width:  m.Width,
		height: m.Height,
	}
}

// cell returns the screen cell containing p, and false when p is off the map
func (v viewport) cell(p vmath.Vec2) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= v.width || p.Y >= v.height {
		return 0, 0, false
	}
	x := int(p.X / v.width * float64(v.cols))
	y := int(p.Y / v.height * float64(v.rows))
	return x, y, true
}

// world returns the battlefield point at the center of a screen cell
func (v viewport) world(x, y int) vmath.Vec2 {
	return vmath.V(
		(float64(x)+0.5)*v.width/float64(v.cols),
		(float64(y)+0.5)*v.height/float64(v.rows),
	)
}

// clamp keeps a cursor inside the battlefield area
func (v viewport) clamp(x, y int) (int, int) {
	return min(max(x, 0), v.cols-1), min(max(y, 0), v.rows-1)
}

func glyph(e *sim.Entity) (rune, tcell.Style) {
	if e.Team == sim.TeamPlayer {
		switch e.Kind {
		case sim.KindHeadquarters:
			return 'H', styleHQ
		case sim.KindHero:
			return '@', styleHero
		case sim.KindArcher:
			return 'a', stylePlayer
		case sim.KindCavalry:
			return 'c', stylePlayer
		}
		return 'i', stylePlayer
	}

	style := styleEnemy
	if e.Tier != sim.TierNone {
		style = styleBoss
	}
	switch {
	case e.Tier == sim.TierBoss:
		return 'B', style
	case e.Kind == sim.KindArcher:
		return 'A', style
	case e.Kind == sim.KindCavalry:
		return 'C', style
	case e.Kind == sim.KindElite:
		return 'E', style
	}
	return 'I', style
}

func effectGlyph(k sim.EffectKind) (rune, tcell.Style) {
	switch k {
	case sim.EffectSlash:
		return '/', styleEffect
	case sim.EffectArea:
		return 'o', styleEffect
	case sim.EffectHeal:
		return '+', styleHeal
	}
	return '.', styleEffect
}

// draw renders one snapshot; cx, cy is the command cursor
func draw(screen tcell.Screen, s *sim.State, cx, cy int, paused, muted bool) {
	w, h := screen.Size()
	vp := newViewport(w, h, s.Def.Map)
	screen.Clear()

	step := max(s.Def.Map.CellSize, 1)
	for _, r := range s.Def.Map.Obstacles {
		for y := r.Y; y < r.Y+r.H; y += step {
			for x := r.X; x < r.X+r.W; x += step {
				if ox, oy, ok := vp.cell(vmath.V(x, y)); ok {
					screen.SetContent(ox, oy, '#', nil, styleObstacle)
				}
			}
		}
	}

	for _, fx := range s.Effects {
		if x, y, ok := vp.cell(fx.Pos); ok {
			ch, st := effectGlyph(fx.Kind)
			screen.SetContent(x, y, ch, nil, st)
		}
	}

	for i := range s.Entities {
		e := &s.Entities[i]
		if !e.Alive() {
			continue
		}
		if x, y, ok := vp.cell(e.Pos); ok {
			ch, st := glyph(e)
			screen.SetContent(x, y, ch, nil, st)
		}
	}

	for _, p := range s.Projectiles {
		if x, y, ok := vp.cell(p.Pos); ok {
			screen.SetContent(x, y, '*', nil, styleShot)
		}
	}

	ch, _, _, _ := screen.GetContent(cx, cy)
	if ch == 0 {
		ch = ' '
	}
	screen.SetContent(cx, cy, ch, nil, styleCursor)

	drawText(screen, 0, vp.rows, hudLine(s, paused, muted), tcell.StyleDefault)
	drawText(screen, 0, vp.rows+1, "arrows cursor  m move  a attack-move  t attack  s stop  q/e abilities  space pause  r reset  esc quit", styleHUD)
	screen.Show()
}

func hudLine(s *sim.State, paused, muted bool) string {
	heroHP, hqHP := 0.0, 0.0
	if h := s.Hero(); h != nil {
		heroHP = h.HP
	}
	if hq := s.HQ(); hq != nil {
		hqHP = hq.HP
	}
	var prefix string
	if paused {
		prefix += "[paused] "
	}
	if muted {
		prefix += "[muted] "
	}
	return prefix + fmt.Sprintf("day %d  t=%5.1fs  %s  wave %d/%d  enemies %d  kills %d  losses %d  hero %.0f  hq %.0f  Q %s  E %s",
		s.Def.DayIndex, s.Time, s.Status, s.WaveIndex, len(s.Def.Waves), s.LiveEnemies(),
		s.Stats.Kills, s.Stats.Losses, heroHP, hqHP,
		cooldown(s.Abilities.Q, s.Time), cooldown(s.Abilities.E, s.Time))
}

func cooldown(readyAt, now float64) string {
	if readyAt <= now {
		return "ready"
	}
	return fmt.Sprintf("%.1fs", readyAt-now)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
