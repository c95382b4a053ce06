package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/nightwatch/logger"
	"github.com/lixenwraith/nightwatch/navigation"
	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/replay"
	"github.com/lixenwraith/nightwatch/sim"
	"github.com/lixenwraith/nightwatch/status"
)

// Config wires a Runner
type Config struct {
	Def    *sim.CombatDefinition
	Roster sim.Roster
	Mode   sim.Mode

	// Registry receives per-step metrics; nil allocates a private one
	Registry *status.Registry
	// Logger defaults to the process logger
	Logger logrus.FieldLogger
}

// Runner owns the authoritative battle state and steps it at a fixed rate
// Commands and stepping are serialized; readers use Snapshot without locking
type Runner struct {
	mu sync.Mutex

	def    *sim.CombatDefinition
	roster sim.Roster
	grid   *navigation.Grid
	mode   sim.Mode

	state    *sim.State
	steps    int64
	acc      time.Duration
	commands []replay.Command
	reported bool

	paused   atomic.Bool
	snapshot atomic.Pointer[sim.State]

	onResult func(sim.CombatResult)

	registry *status.Registry
	log      logrus.FieldLogger
	metrics  runnerMetrics
}

type runnerMetrics struct {
	time     *status.Float
	kills    *atomic.Int64
	losses   *atomic.Int64
	wave     *atomic.Int64
	enemies  *atomic.Int64
	steps    *atomic.Int64
	paused   *atomic.Bool
	status   *status.Text
	heroHP   *status.Float
	hqHP     *status.Float
	attempts *atomic.Int64
}

// NewRunner builds the opening state of the first attempt
func NewRunner(cfg Config) *Runner {
	reg := cfg.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}

	r := &Runner{
		def:      cfg.Def,
		roster:   cfg.Roster,
		grid:     cfg.Def.Map.Grid(),
		mode:     cfg.Mode,
		registry: reg,
		log: log.WithFields(logrus.Fields{
			"seed": cfg.Def.Seed,
			"day":  cfg.Def.DayIndex,
		}),
		metrics: runnerMetrics{
			time:     reg.Floats.Get("sim.time"),
			kills:    reg.Ints.Get("sim.kills"),
			losses:   reg.Ints.Get("sim.losses"),
			wave:     reg.Ints.Get("sim.wave"),
			enemies:  reg.Ints.Get("sim.enemies"),
			steps:    reg.Ints.Get("engine.steps"),
			paused:   reg.Bools.Get("engine.paused"),
			status:   reg.Texts.Get("sim.status"),
			heroHP:   reg.Floats.Get("sim.hero_hp"),
			hqHP:     reg.Floats.Get("sim.hq_hp"),
			attempts: reg.Ints.Get("engine.attempts"),
		},
	}
	r.resetLocked()
	return r
}

// Registry exposes the metrics sink
func (r *Runner) Registry() *status.Registry {
	return r.registry
}

// Snapshot returns the last completed state; callers must not mutate it
func (r *Runner) Snapshot() *sim.State {
	return r.snapshot.Load()
}

// Grid returns the pathfinding grid of the battlefield
func (r *Runner) Grid() *navigation.Grid {
	return r.grid
}

// OnResult registers a callback fired once per attempt when the battle resolves
// The callback runs under the runner lock and must not call back into the Runner
func (r *Runner) OnResult(fn func(sim.CombatResult)) {
	r.mu.Lock()
	r.onResult = fn
	r.mu.Unlock()
}

// Pause stops stepping; accumulated frame time is discarded on resume
func (r *Runner) Pause() {
	if r.paused.CompareAndSwap(false, true) {
		r.metrics.paused.Store(true)
		r.log.Debug("paused")
	}
}

func (r *Runner) Resume() {
	if r.paused.CompareAndSwap(true, false) {
		r.mu.Lock()
		r.acc = 0
		r.mu.Unlock()
		r.metrics.paused.Store(false)
		r.log.Debug("resumed")
	}
}

// TogglePause flips the pause state and returns the new value
func (r *Runner) TogglePause() bool {
	if r.paused.Load() {
		r.Resume()
		return false
	}
	r.Pause()
	return true
}

func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// Reset discards the current attempt and starts over from the definition
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
	r.log.Info("attempt reset")
}

func (r *Runner) resetLocked() {
	r.state = sim.NewState(r.def, r.roster)
	r.steps = 0
	r.acc = 0
	r.commands = nil
	r.reported = false
	r.metrics.attempts.Add(1)
	r.publishLocked()
}

// Advance feeds frame time into the accumulator and runs the due fixed steps
// Returns the number of steps taken; at most MaxCatchUpSteps per call
func (r *Runner) Advance(frame time.Duration) int {
	if r.paused.Load() || frame <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.acc += frame
	n := 0
	for r.acc >= parameter.StepInterval && n < parameter.MaxCatchUpSteps {
		if r.state.Status != sim.StatusRunning {
			r.acc = 0
			break
		}
		r.state = sim.Step(r.state, parameter.StepSeconds, r.grid, r.mode)
		r.steps++
		r.acc -= parameter.StepInterval
		n++
	}
	if r.acc >= parameter.StepInterval {
		r.log.WithField("dropped", r.acc).Debug("catch-up cap reached")
		r.acc %= parameter.StepInterval
	}
	if n > 0 {
		r.publishLocked()
	}
	return n
}

// StepOnce advances exactly one fixed step regardless of pause state
func (r *Runner) StepOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Status != sim.StatusRunning {
		return
	}
	r.state = sim.Step(r.state, parameter.StepSeconds, r.grid, r.mode)
	r.steps++
	r.publishLocked()
}

// IssueOrder applies an order to player units and records it; false when nothing changed
func (r *Runner) IssueOrder(ids []sim.EntityID, order sim.Order) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := sim.IssueOrder(r.state, ids, order)
	if next == r.state {
		return false
	}
	r.state = next
	r.commands = append(r.commands, replay.Command{
		Step:  r.steps,
		Kind:  replay.CommandOrder,
		IDs:   append([]sim.EntityID(nil), ids...),
		Order: order,
	})
	r.publishLocked()
	return true
}

// CastAbility triggers a hero ability and records it; false when on cooldown or unavailable
func (r *Runner) CastAbility(a sim.Ability) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := sim.CastAbility(r.state, a)
	if next == r.state {
		return false
	}
	r.state = next
	r.commands = append(r.commands, replay.Command{
		Step:    r.steps,
		Kind:    replay.CommandAbility,
		Ability: a,
	})
	r.log.WithField("ability", a.String()).Debug("ability cast")
	r.publishLocked()
	return true
}

// Recording returns the command log of the current attempt
func (r *Runner) Recording() replay.Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := make([]replay.Command, len(r.commands))
	for i, c := range r.commands {
		c.IDs = append([]sim.EntityID(nil), c.IDs...)
		cmds[i] = c
	}
	return replay.Log{
		Header: replay.Header{
			BattleID: sim.BattleID(r.def.Seed, r.def.DayIndex),
			Seed:     r.def.Seed,
			Day:      r.def.DayIndex,
			Mode:     r.mode,
			Steps:    r.steps,
		},
		Commands: cmds,
	}
}

// Run drives Advance from a ticker until ctx is done
func (r *Runner) Run(ctx context.Context, clock TimeProvider, interval time.Duration) error {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := clock.Now()
			r.Advance(now.Sub(last))
			last = now
		}
	}
}

// publishLocked swaps the snapshot, updates metrics and fires the result callback once
func (r *Runner) publishLocked() {
	s := r.state
	r.snapshot.Store(s)

	m := r.metrics
	m.time.Store(s.Time)
	m.kills.Store(int64(s.Stats.Kills))
	m.losses.Store(int64(s.Stats.Losses))
	m.wave.Store(int64(s.WaveIndex))
	m.enemies.Store(int64(s.LiveEnemies()))
	m.steps.Store(r.steps)
	m.status.Store(s.Status.String())
	if h := s.Hero(); h != nil {
		m.heroHP.Store(h.HP)
	} else {
		m.heroHP.Store(0)
	}
	if hq := s.HQ(); hq != nil {
		m.hqHP.Store(hq.HP)
	} else {
		m.hqHP.Store(0)
	}

	if r.reported {
		return
	}
	res, done := sim.Result(s)
	if !done {
		return
	}
	r.reported = true
	r.log.WithFields(logrus.Fields{
		"status":  s.Status.String(),
		"kills":   res.Stats.Kills,
		"losses":  res.Stats.Losses,
		"lost":    len(res.Stats.LostSquads),
		"boss":    res.BossDefeated,
		"hq_pct":  res.HQHPPercent,
		"battle":  res.BattleID.String(),
		"elapsed": s.Time,
	}).Info("battle resolved")
	if r.onResult != nil {
		r.onResult(res)
	}
}
