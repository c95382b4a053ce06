// nightplan previews a night's waves and perk offers, and verifies recorded battles
package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/logger"
	"github.com/lixenwraith/nightwatch/night"
	"github.com/lixenwraith/nightwatch/replay"
	"github.com/lixenwraith/nightwatch/sim"
)

var (
	levelFlag  = flag.String("level", "asset/levels/outpost.toml", "Level definition (.toml or .yaml)")
	runFlag    = flag.String("run", "", "Run snapshot file; empty plans a fresh run")
	dayFlag    = flag.Int("day", -1, "Day index; overrides the run file when set")
	seedFlag   = flag.Uint("seed", 0, "Run seed; overrides the run file when non-zero")
	yamlFlag   = flag.Bool("yaml", false, "Dump the full plan as YAML instead of the summary")
	verifyFlag = flag.String("verify", "", "Replay a recorded command log against the plan and print the outcome")
)

func main() {
	flag.Parse()
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "nightplan: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	closer, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		return err
	}
	defer closer.Close()

	def, err := level.Load(*levelFlag)
	if err != nil {
		return err
	}
	r := level.Run{Seed: 1}
	if *runFlag != "" {
		loaded, err := level.LoadRun(*runFlag)
		if err != nil {
			return err
		}
		r = *loaded
	}
	if *dayFlag >= 0 {
		r.DayIndex = *dayFlag
	}
	if *seedFlag != 0 {
		r.Seed = uint32(*seedFlag)
	}

	n, err := night.Prepare(def, r)
	if err != nil {
		return err
	}

	if *verifyFlag != "" {
		return verify(w, n, *verifyFlag)
	}
	if *yamlFlag {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n.Plan); err != nil {
			return errors.Wrap(err, "encode plan")
		}
		return enc.Close()
	}
	return summary(w, n)
}

// summary prints intel, per-wave composition and perk offers
func summary(w io.Writer, n *night.Night) error {
	p := n.Plan
	fmt.Fprintf(w, "seed %d  day %d  battle %s\n", p.Seed, p.DayIndex, sim.BattleID(p.Seed, p.DayIndex))
	fmt.Fprintf(w, "enemies: %s\n", strings.Join(p.Intel.EnemyTypes, ", "))
	if len(p.Intel.Traits) > 0 {
		fmt.Fprintf(w, "traits: %s\n", strings.Join(p.Intel.Traits, ", "))
	}
	if p.Intel.EliteWarning {
		fmt.Fprintln(w, "warning: elites expected")
	}
	if p.Buffs.NightModifier != "" {
		fmt.Fprintf(w, "night modifier: %s\n", p.Buffs.NightModifier)
	}
	fmt.Fprintf(w, "total spawns: %d\n\n", p.Intel.TotalSpawns)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAVE\tTIME\tBOSS\tEDGES\tSPAWNS\tELITES")
	for _, wave := range p.Waves {
		elites := 0
		for _, s := range wave.Spawns {
			if s.Elite {
				elites++
			}
		}
		edges := make([]string, 0, len(wave.Edges))
		for _, e := range wave.Edges {
			edges = append(edges, string(e))
		}
		if wave.SpawnPoint != nil {
			edges = append(edges, fmt.Sprintf("(%.0f,%.0f)", wave.SpawnPoint.X, wave.SpawnPoint.Y))
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%t\t%s\t%d\t%d\n",
			wave.ID, wave.SpawnTimeSec, wave.IsBoss, strings.Join(edges, " "), len(wave.Spawns), elites)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(n.Offers) == 0 {
		fmt.Fprintln(w, "\nperk offers: none (cap reached)")
	} else {
		fmt.Fprintf(w, "\nperk offers: %s\n", strings.Join(n.Offers, ", "))
	}
	return nil
}

// verify replays a command log and prints the outcome with a state fingerprint
func verify(w io.Writer, n *night.Night, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open recording")
	}
	defer f.Close()

	log, err := replay.Decode(f)
	if err != nil {
		return err
	}
	if want := sim.BattleID(n.Combat.Seed, n.Combat.DayIndex); log.Header.BattleID != want {
		return errors.Wrapf(replay.ErrSeedMismatch, "battle %s, plan %s", log.Header.BattleID, want)
	}

	final, err := replay.Play(n.Combat, n.Roster, log)
	if err != nil {
		return err
	}
	digest, err := replay.Digest(final)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "battle %s  steps %d  commands %d\n", log.Header.BattleID, log.Header.Steps, len(log.Commands))
	fmt.Fprintf(w, "status %s  t=%.2fs  kills %d  losses %d\n", final.Status, final.Time, final.Stats.Kills, final.Stats.Losses)
	if res, done := sim.Result(final); done {
		fmt.Fprintf(w, "victory %t  boss %t  hq %.0f%%  lost %s\n",
			res.Victory, res.BossDefeated, res.HQHPPercent, strings.Join(res.Stats.LostSquads, ","))
	}
	fmt.Fprintf(w, "digest %x\n", sha256.Sum256(digest))
	return nil
}
