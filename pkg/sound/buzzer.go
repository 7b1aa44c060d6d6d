// Package sound adds buzzer tones to LED feedback.
package sound

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/feedback"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate    = beep.SampleRate(44100)
	DefaultVolume = 0.25
)

var (
	ToneFail    = Tone{Freq: 220, Duration: 150 * time.Millisecond}
	ToneSuccess = Tone{Freq: 880, Duration: 100 * time.Millisecond}
	ToneVictory = Tone{Freq: 1320, Duration: 300 * time.Millisecond}
)

// Buzzer is a device.LED that forwards to another LED and beeps whenever the
// LED turns on. The tone follows the cue of the running feedback sequence.
// Without a cue it follows the colour.
type Buzzer struct {
	led    device.LED
	play   func(beep.Streamer)
	rate   beep.SampleRate
	volume float64
	lit    bool
	cue    feedback.Kind
}

var (
	_ device.LED    = &Buzzer{}
	_ feedback.Cuer = &Buzzer{}
)

type NewBuzzerOptions struct {
	LED device.LED
	// Play hands a tone to the audio output. Nil uses the speaker, which must
	// have been set up with InitSpeaker.
	Play   func(beep.Streamer)
	Volume float64
}

func NewBuzzer(opts NewBuzzerOptions) *Buzzer {
	play := opts.Play
	if play == nil {
		play = func(s beep.Streamer) { speaker.Play(s) }
	}
	volume := opts.Volume
	if volume == 0 {
		volume = DefaultVolume
	}
	return &Buzzer{
		led:    opts.LED,
		play:   play,
		rate:   SampleRate,
		volume: volume,
	}
}

// InitSpeaker opens the default audio device.
func InitSpeaker() error {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %v", err)
	}
	return nil
}

func (b *Buzzer) Set(c color.RGBA) error {
	if err := b.led.Set(c); err != nil {
		return err
	}
	on := c != device.Off
	if on && !b.lit {
		t, ok := ToneForKind(b.cue)
		if !ok {
			t = ToneFor(c)
		}
		log.Trace("Buzzer: %v Hz for %s", t.Freq, t.Duration)
		b.play(t.streamer(b.rate, b.volume))
	}
	b.lit = on
	return nil
}

// Cue sets the tone for the sequence about to play.
func (b *Buzzer) Cue(k feedback.Kind) {
	b.cue = k
}

// ToneForKind picks the tone for a feedback sequence. It reports false for
// sequences that carry no meaning.
func ToneForKind(k feedback.Kind) (Tone, bool) {
	switch k {
	case feedback.KindFailure:
		return ToneFail, true
	case feedback.KindSuccess:
		return ToneSuccess, true
	case feedback.KindVictory:
		return ToneVictory, true
	}
	return Tone{}, false
}

// ToneFor picks the tone played when the LED lights up in c.
func ToneFor(c color.RGBA) Tone {
	switch c {
	case feedback.Red:
		return ToneFail
	case feedback.Green:
		return ToneSuccess
	}
	return ToneVictory
}
