package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/night"
	"github.com/lixenwraith/nightwatch/sim"
	"github.com/lixenwraith/nightwatch/vmath"
)

func sampleState(t *testing.T) *sim.State {
	t.Helper()
	def, err := level.Load("../../asset/levels/outpost.toml")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	n, err := night.Prepare(def, level.Run{
		Seed:   4,
		Squads: []level.SquadState{{ID: "g1", Kind: level.KindArcher, Size: 2, Position: vmath.V(560, 380)}},
	})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return sim.NewState(n.Combat, n.Roster)
}

func TestViewportRoundTrip(t *testing.T) {
	vp := newViewport(120, 42, sim.BattleMap{Width: 1200, Height: 800})
	if vp.rows != 40 {
		t.Fatalf("rows = %d, want 40 after hud", vp.rows)
	}

	for _, c := range [][2]int{{0, 0}, {60, 20}, {119, 39}} {
		x, y, ok := vp.cell(vp.world(c[0], c[1]))
		if !ok || x != c[0] || y != c[1] {
			t.Errorf("cell(world(%v)) = %d,%d,%v", c, x, y, ok)
		}
	}

	if _, _, ok := vp.cell(vmath.V(600, -40)); ok {
		t.Error("off-map point should not map to a cell")
	}

	if x, y := vp.clamp(-3, 99); x != 0 || y != 39 {
		t.Errorf("clamp = %d,%d", x, y)
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want action
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionCursorUp},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionAbilityQ},
		{tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), actionAbilityE},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), actionAttackMove},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), actionMove},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), actionStop},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionReset},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone},
	}
	for _, c := range cases {
		if got := keyAction(c.ev); got != c.want {
			t.Errorf("%s: got %d, want %d", c.ev.Name(), got, c.want)
		}
	}
}

// fakeRunner records commands against a fixed snapshot
type fakeRunner struct {
	state     *sim.State
	orders    []sim.Order
	orderIDs  [][]sim.EntityID
	abilities []sim.Ability
}

func (f *fakeRunner) Snapshot() *sim.State { return f.state }
func (f *fakeRunner) TogglePause() bool    { return false }
func (f *fakeRunner) Reset()               {}

func (f *fakeRunner) IssueOrder(ids []sim.EntityID, o sim.Order) bool {
	f.orders = append(f.orders, o)
	f.orderIDs = append(f.orderIDs, ids)
	return true
}

func (f *fakeRunner) CastAbility(a sim.Ability) bool {
	f.abilities = append(f.abilities, a)
	return true
}

func TestCommandDispatch(t *testing.T) {
	f := &fakeRunner{state: sampleState(t)}
	target := vmath.V(300, 200)

	command(f, actionAttackMove, target)
	command(f, actionMove, target)
	command(f, actionStop, target)
	command(f, actionAbilityE, target)

	want := []sim.Order{sim.AttackMove(target), sim.MoveTo(target), sim.Stop()}
	if len(f.orders) != len(want) {
		t.Fatalf("orders = %v", f.orders)
	}
	for i := range want {
		if f.orders[i] != want[i] {
			t.Errorf("order %d = %+v, want %+v", i, f.orders[i], want[i])
		}
	}
	for _, ids := range f.orderIDs {
		for _, id := range ids {
			if f.state.Entity(id).Kind == sim.KindHeadquarters {
				t.Error("HQ must not receive orders")
			}
		}
	}
	if len(f.abilities) != 1 || f.abilities[0] != sim.AbilityE {
		t.Errorf("abilities = %v", f.abilities)
	}

	// No enemies on the field yet
	if command(f, actionAttack, target) {
		t.Error("attack with no enemies should not issue an order")
	}
}

func TestNearestEnemy(t *testing.T) {
	s := &sim.State{Entities: []sim.Entity{
		{ID: 1, Team: sim.TeamPlayer, HP: 10, Pos: vmath.V(0, 0)},
		{ID: 2, Team: sim.TeamEnemy, HP: 10, Pos: vmath.V(100, 0)},
		{ID: 3, Team: sim.TeamEnemy, HP: 0, Pos: vmath.V(5, 0)},
		{ID: 4, Team: sim.TeamEnemy, HP: 10, Pos: vmath.V(-100, 0)},
	}}
	if e := nearestEnemy(s, vmath.V(0, 0)); e == nil || e.ID != 2 {
		t.Errorf("nearest = %+v, want id 2 on tie", e)
	}
}

func TestDrawMarksEntities(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(120, 42)

	s := sampleState(t)
	draw(screen, s, 0, 0, true, false)

	vp := newViewport(120, 42, s.Def.Map)
	for _, mark := range []struct {
		pos  vmath.Vec2
		want rune
	}{
		{s.HQ().Pos, 'H'},
		{s.Hero().Pos, '@'},
	} {
		x, y, _ := vp.cell(mark.pos)
		if ch, _, _, _ := screen.GetContent(x, y); ch != mark.want {
			t.Errorf("cell %d,%d = %q, want %q", x, y, ch, mark.want)
		}
	}

	var hud []rune
	for x := 0; x < 120; x++ {
		ch, _, _, _ := screen.GetContent(x, vp.rows)
		hud = append(hud, ch)
	}
	if line := string(hud); !strings.HasPrefix(line, "[paused]") {
		t.Errorf("hud missing pause marker: %q", line)
	}
}

func TestCooldownLabel(t *testing.T) {
	if got := cooldown(1, 2); got != "ready" {
		t.Errorf("got %q", got)
	}
	if got := cooldown(5.5, 2); got != "3.5s" {
		t.Errorf("got %q", got)
	}
}
