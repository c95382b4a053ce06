package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/nightwatch/audio"
	"github.com/lixenwraith/nightwatch/engine"
	"github.com/lixenwraith/nightwatch/level"
	"github.com/lixenwraith/nightwatch/logger"
	"github.com/lixenwraith/nightwatch/night"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/replay"
	"github.com/lixenwraith/nightwatch/sim"
)

var (
	levelFlag  = flag.String("level", "asset/levels/outpost.toml", "Level definition (.toml or .yaml)")
	runFlag    = flag.String("run", "", "Run snapshot file; empty starts a fresh run")
	dayFlag    = flag.Int("day", -1, "Day index; overrides the run file when set")
	seedFlag   = flag.Uint("seed", 0, "Run seed; overrides the run file when non-zero")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
	recordFlag = flag.String("record", "", "Write the command log of the last attempt to this file on exit")
	logFlag    = flag.String("log", "nightwatch.log", "Log file; the terminal is owned by the viewer")
)

// errQuit ends the session without reporting an error
var errQuit = errors.New("quit")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nightwatch: %v\n", err)
		os.Exit(1)
	}
}

func loadRun() (*level.Definition, level.Run, error) {
	def, err := level.Load(*levelFlag)
	if err != nil {
		return nil, level.Run{}, err
	}
	r := level.Run{Seed: 1}
	if *runFlag != "" {
		loaded, err := level.LoadRun(*runFlag)
		if err != nil {
			return nil, level.Run{}, err
		}
		r = *loaded
	}
	if *dayFlag >= 0 {
		r.DayIndex = *dayFlag
	}
	if *seedFlag != 0 {
		r.Seed = uint32(*seedFlag)
	}
	return def, r, nil
}

func run() error {
	cfg := logger.ConfigFromEnv()
	if cfg.File == "" {
		cfg.File = *logFlag
	}
	closer, err := logger.Init(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	def, r, err := loadRun()
	if err != nil {
		return err
	}
	n, err := night.Prepare(def, r)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"level":  *levelFlag,
		"seed":   r.Seed,
		"day":    r.DayIndex,
		"waves":  len(n.Plan.Waves),
		"spawns": n.Plan.Intel.TotalSpawns,
	}).Info("night prepared")

	runner := engine.NewRunner(engine.Config{
		Def:    n.Combat,
		Roster: n.Roster,
		Mode:   sim.ModeCombat,
	})
	runner.OnResult(func(res sim.CombatResult) {
		logger.Log.WithFields(logrus.Fields{
			"battle":  res.BattleID,
			"victory": res.Victory,
			"kills":   res.Stats.Kills,
			"losses":  res.Stats.Losses,
			"boss":    res.BossDefeated,
			"hq_pct":  res.HQHPPercent,
		}).Info("battle resolved")
	})

	var cues *audio.Bank
	if !*muteFlag {
		out, err := audio.OpenSpeaker(parameter.DefaultMasterVolume)
		if err != nil {
			logger.Log.WithError(err).Warn("audio unavailable, continuing without cues")
		} else {
			defer out.Close()
			cues = out.Bank
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer func() {
		// Crash path: restore the terminal, then print the trace
		if rec := recover(); rec != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nnightwatch crashed: %v\n%s\n", rec, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return runner.Run(ctx, engine.SystemTime{}, parameter.FrameUpdateInterval)
	})
	g.Go(func() error {
		return ui(ctx, screen, events, runner, cues)
	})
	if cues != nil {
		g.Go(func() error {
			return feedCues(ctx, runner, cues)
		})
	}

	err = g.Wait()
	close(quit)
	screen.Fini()
	logger.Log.WithFields(runner.Registry().Fields()).Info("session ended")

	if *recordFlag != "" {
		if rerr := writeRecording(*recordFlag, runner.Recording()); rerr != nil {
			return rerr
		}
	}
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// ui pumps input and redraws at the frame rate until the player quits
func ui(ctx context.Context, screen tcell.Screen, events <-chan tcell.Event, runner *engine.Runner, cues *audio.Bank) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	w, h := screen.Size()
	vp := newViewport(w, h, runner.Snapshot().Def.Map)
	cur := cursor{}
	cur.x, cur.y, _ = vp.cell(runner.Snapshot().Def.Map.HQ)
	muted := cues == nil

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return errQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				w, h = screen.Size()
				vp = newViewport(w, h, runner.Snapshot().Def.Map)
				cur.x, cur.y = vp.clamp(cur.x, cur.y)

			case *tcell.EventKey:
				a := keyAction(ev)
				switch a {
				case actionNone:
				case actionQuit:
					return errQuit
				case actionPause:
					runner.TogglePause()
				case actionReset:
					runner.Reset()
					if cues != nil {
						cues.Reset()
					}
				case actionMute:
					if cues != nil {
						muted = !muted
						cues.SetMuted(muted)
					}
				case actionCursorUp, actionCursorDown, actionCursorLeft, actionCursorRight:
					cur.move(a, vp)
				default:
					if !command(runner, a, vp.world(cur.x, cur.y)) {
						logger.Log.WithField("action", a).Debug("command had no effect")
					}
				}
			}

		case <-ticker.C:
			draw(screen, runner.Snapshot(), cur.x, cur.y, runner.Paused(), muted)
		}
	}
}

// feedCues forwards newly spawned effects to the audio bank once per frame
func feedCues(ctx context.Context, runner *engine.Runner, cues *audio.Bank) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cues.Observe(runner.Snapshot().Effects)
		}
	}
}

func writeRecording(path string, log replay.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create recording")
	}
	if err := replay.Encode(f, log); err != nil {
		f.Close()
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"path":     path,
		"commands": len(log.Commands),
		"steps":    log.Header.Steps,
	}).Info("recording written")
	return f.Close()
}
