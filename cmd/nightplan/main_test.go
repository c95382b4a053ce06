package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/nightwatch/engine"
	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/logger"
	"github.com/lixenwraith/nightwatch/night"
	"github.com/lixenwraith/nightwatch/replay"
	"github.com/lixenwraith/nightwatch/sim"
	"github.com/lixenwraith/nightwatch/vmath"
)

func prepare(t *testing.T, r level.Run) *night.Night {
	t.Helper()
	def, err := level.Load("../../asset/levels/outpost.toml")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	n, err := night.Prepare(def, r)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return n
}

func TestSummaryListsWavesAndOffers(t *testing.T) {
	n := prepare(t, level.Run{Seed: 12, DayIndex: 1})

	var out bytes.Buffer
	if err := summary(&out, n); err != nil {
		t.Fatal(err)
	}
	text := out.String()

	for _, want := range []string{"seed 12  day 1", "night modifier: blood_moon", "WAVE", "perk offers:"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
	for _, w := range n.Plan.Waves {
		if !strings.Contains(text, w.ID) {
			t.Errorf("summary missing wave %s", w.ID)
		}
	}
}

func record(t *testing.T, n *night.Night, path string) {
	t.Helper()
	runner := engine.NewRunner(engine.Config{
		Def:    n.Combat,
		Roster: n.Roster,
		Mode:   sim.ModeCombat,
		Logger: logger.Nop(),
	})
	for i := 0; i < 45; i++ {
		runner.StepOnce()
	}
	runner.IssueOrder(runner.Snapshot().PlayerUnits(), sim.AttackMove(vmath.V(600, 100)))
	runner.CastAbility(sim.AbilityQ)
	for i := 0; i < 90; i++ {
		runner.StepOnce()
	}

	var buf bytes.Buffer
	if err := replay.Encode(&buf, runner.Recording()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyIsStable(t *testing.T) {
	r := level.Run{
		Seed:   31,
		Squads: []level.SquadState{{ID: "g1", Kind: level.KindInfantry, Size: 2, Position: vmath.V(580, 380)}},
	}
	n := prepare(t, r)
	path := filepath.Join(t.TempDir(), "battle.replay")
	record(t, n, path)

	var a, b bytes.Buffer
	if err := verify(&a, n, path); err != nil {
		t.Fatal(err)
	}
	if err := verify(&b, prepare(t, r), path); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("verification differs:\n%s\n%s", a.String(), b.String())
	}
	if !strings.Contains(a.String(), "steps 135  commands 2") {
		t.Errorf("unexpected header line:\n%s", a.String())
	}
}

func TestVerifyRejectsOtherBattle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.replay")
	record(t, prepare(t, level.Run{Seed: 31}), path)

	err := verify(&bytes.Buffer{}, prepare(t, level.Run{Seed: 32}), path)
	if !errors.Is(err, replay.ErrSeedMismatch) {
		t.Errorf("got %v, want seed mismatch", err)
	}
}
