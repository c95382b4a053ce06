package audio

import (
	"sort"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/sim"
)

// Bank turns newly spawned combat effects into queued cues on a mixer.
// Each effect kind plays at most once per Observe call.
type Bank struct {
	mu     sync.Locker
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master float64
	muted  bool

	// lastSeen is the sim time of the newest effect already cued
	lastSeen float64
	// cuedAtLast holds kinds already cued at lastSeen; abilities emit between steps at the same time
	cuedAtLast map[sim.EffectKind]bool
}

// NewBank creates a bank rendering at rate with the given linear master gain (1 is unity).
// locker guards the mixer against the playback goroutine; nil uses a private mutex.
func NewBank(rate beep.SampleRate, master float64, locker sync.Locker) *Bank {
	if locker == nil {
		locker = &sync.Mutex{}
	}
	return &Bank{
		mu:       locker,
		rate:     rate,
		mixer:    &beep.Mixer{},
		master:   max(master, 0),
		lastSeen: -1,
	}
}

// Streamer is the mix output to hand to a speaker
func (b *Bank) Streamer() beep.Streamer {
	return b.mixer
}

// SetMuted toggles cue output; muting drops already queued cues
func (b *Bank) SetMuted(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
	if muted {
		b.mixer.Clear()
	}
}

// Muted reports whether cues are suppressed
func (b *Bank) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Pending is the number of cues still playing
func (b *Bank) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Len()
}

// Reset forgets the cue watermark so a restarted battle cues from time zero
func (b *Bank) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastSeen = -1
	b.cuedAtLast = nil
	b.mixer.Clear()
}

// Observe queues cues for effects spawned since the previous call and
// returns the kinds queued, in kind order
func (b *Bank) Observe(spawned []sim.Effect) []sim.EffectKind {
	b.mu.Lock()
	defer b.mu.Unlock()

	newest := b.lastSeen
	seen := make(map[sim.EffectKind]bool)
	for _, fx := range spawned {
		if fx.SpawnedAt < b.lastSeen || (fx.SpawnedAt == b.lastSeen && b.cuedAtLast[fx.Kind]) {
			continue
		}
		seen[fx.Kind] = true
		if fx.SpawnedAt > newest {
			newest = fx.SpawnedAt
		}
	}

	atNewest := make(map[sim.EffectKind]bool)
	if newest == b.lastSeen {
		for k := range b.cuedAtLast {
			atNewest[k] = true
		}
	}
	for _, fx := range spawned {
		if fx.SpawnedAt == newest {
			atNewest[fx.Kind] = true
		}
	}
	b.lastSeen = newest
	b.cuedAtLast = atNewest

	kinds := make([]sim.EffectKind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	if len(kinds) > parameter.MaxCuesPerFrame {
		kinds = kinds[:parameter.MaxCuesPerFrame]
	}

	if b.muted {
		return kinds
	}
	for _, k := range kinds {
		if s := Cue(k, b.rate); s != nil {
			b.mixer.Add(&effects.Gain{Streamer: s, Gain: b.master - 1})
		}
	}
	return kinds
}
