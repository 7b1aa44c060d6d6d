// Package feedback plays LED animations one frame per control-loop tick.
package feedback

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
)

var (
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Green = color.RGBA{G: 0xff, A: 0xff}
)

// Kind is the game event a sequence signals.
type Kind int

const (
	KindNone Kind = iota
	KindFailure
	KindSuccess
	KindVictory
)

func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindSuccess:
		return "success"
	case KindVictory:
		return "victory"
	}
	return "none"
}

// Sequence is an LED animation. ColorAt reports the colour elapsed into the
// animation and whether the animation has finished.
type Sequence interface {
	ColorAt(elapsed time.Duration) (c color.RGBA, done bool)
	Duration() time.Duration
	Kind() Kind
}

// Cuer is implemented by LEDs that also react to what a sequence means,
// not only to its colours. The player cues them before the first frame.
type Cuer interface {
	Cue(k Kind)
}

type flash struct {
	color color.RGBA
	times int
	delay time.Duration
	kind  Kind
}

// Flash turns the LED on and off times times, each phase lasting delay.
func Flash(c color.RGBA, times int, delay time.Duration) Sequence {
	return flash{color: c, times: times, delay: delay}
}

// Failure is the red flash shown when time runs out.
func Failure(times int, delay time.Duration) Sequence {
	return flash{color: Red, times: times, delay: delay, kind: KindFailure}
}

// Success is the green flash shown when a level is cleared.
func Success(times int, delay time.Duration) Sequence {
	return flash{color: Green, times: times, delay: delay, kind: KindSuccess}
}

func (f flash) Kind() Kind {
	return f.kind
}

func (f flash) Duration() time.Duration {
	return time.Duration(2*f.times) * f.delay
}

func (f flash) ColorAt(elapsed time.Duration) (color.RGBA, bool) {
	if f.delay <= 0 || elapsed >= f.Duration() {
		return device.Off, true
	}
	if (elapsed/f.delay)%2 == 0 {
		return f.color, false
	}
	return device.Off, false
}

type sweep struct {
	duration time.Duration
	step     time.Duration
}

// Sweep cycles through the colour wheel, one wheel position per step, until
// duration has passed. The LED keeps the last colour shown.
func Sweep(duration, step time.Duration) Sequence {
	return sweep{duration: duration, step: step}
}

func (s sweep) Duration() time.Duration {
	return s.duration
}

func (s sweep) Kind() Kind {
	return KindVictory
}

func (s sweep) ColorAt(elapsed time.Duration) (color.RGBA, bool) {
	if s.step <= 0 {
		return Wheel(0), true
	}
	pos := uint8((elapsed / s.step) % 255)
	return Wheel(pos), elapsed >= s.duration
}

// Wheel maps 0-255 onto a red, green, blue, red colour circle.
func Wheel(pos uint8) color.RGBA {
	p := int(pos)
	switch {
	case p < 85:
		return color.RGBA{R: uint8(255 - p*3), G: uint8(p * 3), A: 0xff}
	case p < 170:
		p -= 85
		return color.RGBA{G: uint8(255 - p*3), B: uint8(p * 3), A: 0xff}
	default:
		p -= 170
		return color.RGBA{R: uint8(p * 3), B: uint8(255 - p*3), A: 0xff}
	}
}

// Player drives one sequence at a time on an LED. Starting a sequence while
// another runs replaces it without calling the first one's completion.
type Player struct {
	led device.LED

	current   Sequence
	startedAt time.Time
	onDone    func(now time.Time) error
	shown     color.RGBA
	lit       bool
}

func NewPlayer(led device.LED) *Player {
	return &Player{led: led}
}

// Start begins seq at now. onDone, if set, runs on the tick that finishes it
// and its error is returned from that tick.
func (p *Player) Start(seq Sequence, now time.Time, onDone func(now time.Time) error) error {
	p.current = seq
	p.startedAt = now
	p.onDone = onDone
	if c, ok := p.led.(Cuer); ok {
		c.Cue(seq.Kind())
	}
	return p.show(now)
}

// Busy reports whether a sequence is still running.
func (p *Player) Busy() bool {
	return p.current != nil
}

// Tick advances the running sequence to now.
func (p *Player) Tick(now time.Time) error {
	if p.current == nil {
		return nil
	}
	return p.show(now)
}

func (p *Player) show(now time.Time) error {
	c, done := p.current.ColorAt(now.Sub(p.startedAt))
	if !p.lit || c != p.shown {
		if err := p.led.Set(c); err != nil {
			return fmt.Errorf("failed to set led: %w", err)
		}
		p.shown, p.lit = c, true
	}
	if !done {
		return nil
	}
	onDone := p.onDone
	p.current, p.onDone = nil, nil
	if onDone != nil {
		return onDone(now)
	}
	return nil
}
