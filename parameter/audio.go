package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// CueWave selects the tone generator of a cue layer
type CueWave uint8

const (
	WaveSine CueWave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// CueLayer is one tone of a segment; Freq is ignored by noise
// Layer gains of a segment should sum to at most 1.
type CueLayer struct {
	Wave CueWave
	Freq float64
	Gain float64
}

// CueSegment is layered tone under one linear attack/release envelope
type CueSegment struct {
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Layers  []CueLayer
}

// Cue shapes per combat effect kind; segments play back to back
var (
	HitCue = []CueSegment{{
		Length: 60 * time.Millisecond, Attack: 3 * time.Millisecond, Release: 30 * time.Millisecond,
		Layers: []CueLayer{{Wave: WaveSquare, Freq: 180, Gain: 1}},
	}}

	SlashCue = []CueSegment{{
		Length: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond,
		Layers: []CueLayer{{Wave: WaveNoise, Gain: 1}},
	}}

	// AreaCue is a low saw under a noise rumble
	AreaCue = []CueSegment{{
		Length: 350 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 250 * time.Millisecond,
		Layers: []CueLayer{{Wave: WaveSaw, Freq: 90, Gain: 0.7}, {Wave: WaveNoise, Gain: 0.3}},
	}}

	// HealCue rises a fifth, E5 to B5
	HealCue = []CueSegment{
		{
			Length: 140 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 90 * time.Millisecond,
			Layers: []CueLayer{{Wave: WaveSine, Freq: 659.25, Gain: 1}},
		},
		{
			Length: 140 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 90 * time.Millisecond,
			Layers: []CueLayer{{Wave: WaveSine, Freq: 987.77, Gain: 1}},
		},
	}
)

// Cue mixing
const (
	DefaultMasterVolume = 0.6

	// MaxCuesPerFrame caps simultaneous new cues queued in one frame
	MaxCuesPerFrame = 4
)
