package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
	"github.com/lixenwraith/nightwatch/sim"
)

// cueShapes holds the segment list rendered for each effect kind
var cueShapes = map[sim.EffectKind][]parameter.CueSegment{
	sim.EffectHit:   parameter.HitCue,
	sim.EffectSlash: parameter.SlashCue,
	sim.EffectArea:  parameter.AreaCue,
	sim.EffectHeal:  parameter.HealCue,
}

// Cue renders the sound for one combat effect kind at unity gain.
// Noise layers draw from a stream fixed per (kind, segment), so a cue sounds the same every time.
// Unknown kinds return nil.
func Cue(kind sim.EffectKind, rate beep.SampleRate) beep.Streamer {
	segs := cueShapes[kind]
	if len(segs) == 0 {
		return nil
	}
	voices := make([]beep.Streamer, len(segs))
	for i, seg := range segs {
		voices[i] = newVoice(seg, rate, rng.DeriveSeed(0, "cueNoise", kind.String(), i))
	}
	if len(voices) == 1 {
		return voices[0]
	}
	return beep.Seq(voices...)
}
