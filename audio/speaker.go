package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/nightwatch/parameter"
)

// speakerLock adapts the global speaker lock to sync.Locker
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Output is a bank attached to the system speaker
type Output struct {
	*Bank
}

// OpenSpeaker initializes the speaker and starts playing a fresh bank
func OpenSpeaker(master float64) (*Output, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	bank := NewBank(rate, master, speakerLock{})
	speaker.Play(bank.Streamer())
	return &Output{Bank: bank}, nil
}

// Close stops playback and releases the device
func (o *Output) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
