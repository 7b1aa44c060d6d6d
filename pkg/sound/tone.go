package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// square is a piezo-like square wave of fixed length.
type square struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newSquare(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &square{freq: freq, length: rate.N(d), rate: rate}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// Tone is a single buzzer beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

func (t Tone) streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	s := newSquare(t.Freq, t.Duration, rate)
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
