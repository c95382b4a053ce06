package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/rng"
)

// voice renders one cue segment as the gain-weighted sum of its layers
// shaped by a linear attack/release envelope. Output is mono on both channels.
type voice struct {
	layers  []parameter.CueLayer
	phase   []float64
	advance []float64 // phase step per sample, per layer
	noise   *rng.Rand

	pos, total      int
	attack, release int
	releaseStartsAt int
}

func newVoice(seg parameter.CueSegment, rate beep.SampleRate, seed uint32) *voice {
	total := rate.N(seg.Length)
	att, rel := rate.N(seg.Attack), rate.N(seg.Release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	v := &voice{
		layers:          seg.Layers,
		phase:           make([]float64, len(seg.Layers)),
		advance:         make([]float64, len(seg.Layers)),
		noise:           rng.New(seed),
		total:           total,
		attack:          att,
		release:         rel,
		releaseStartsAt: total - rel,
	}
	for i, l := range seg.Layers {
		v.advance[i] = l.Freq / float64(rate)
	}
	return v
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.pos >= v.total {
		return 0, false
	}
	n := min(len(samples), v.total-v.pos)
	for i := 0; i < n; i++ {
		s := v.level() * v.next()
		samples[i] = [2]float64{s, s}
		v.pos++
	}
	return n, true
}

func (v *voice) Err() error { return nil }

// level is the envelope gain at the current sample
func (v *voice) level() float64 {
	switch {
	case v.pos < v.attack:
		return float64(v.pos) / float64(v.attack)
	case v.release > 0 && v.pos >= v.releaseStartsAt:
		return float64(v.total-v.pos) / float64(v.release)
	}
	return 1
}

// next sums one sample of every layer and advances their phases
func (v *voice) next() float64 {
	var sum float64
	for i, l := range v.layers {
		sum += l.Gain * v.wave(l.Wave, v.phase[i])
		v.phase[i] = math.Mod(v.phase[i]+v.advance[i], 1)
	}
	return sum
}

func (v *voice) wave(w parameter.CueWave, phase float64) float64 {
	switch w {
	case parameter.WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case parameter.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case parameter.WaveSaw:
		return 2*phase - 1
	case parameter.WaveNoise:
		return v.noise.NextFloat()*2 - 1
	}
	return 0
}
