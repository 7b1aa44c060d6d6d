// Package input turns raw encoder and button readings into discrete events.
package input

import (
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
)

// Events are the discrete inputs produced by one poll.
type Events struct {
	// ButtonPressed is set on a released-to-pressed edge.
	ButtonPressed bool
	// EncoderStep is set when the encoder moved and the move passed the debounce window.
	EncoderStep bool
}

// Debouncer edge-detects the button and rate-limits encoder movement.
type Debouncer struct {
	source   device.InputSource
	debounce time.Duration

	primed           bool
	lastEncoder      int
	processedEncoder int
	lastDebounce     time.Time
	lastButton       bool
}

func NewDebouncer(source device.InputSource, debounce time.Duration) *Debouncer {
	return &Debouncer{
		source:   source,
		debounce: debounce,
	}
}

// Poll reads the input source once. The first poll only records the current
// levels so a button held at startup does not count as a press.
func (d *Debouncer) Poll(now time.Time) Events {
	encoder := d.source.EncoderPosition()
	button := d.source.ButtonLevel()

	if !d.primed {
		d.primed = true
		d.lastEncoder = encoder
		d.processedEncoder = encoder
		d.lastButton = button
		return Events{}
	}

	var ev Events
	if encoder != d.lastEncoder {
		d.lastEncoder = encoder
		if d.lastDebounce.IsZero() || now.Sub(d.lastDebounce) > d.debounce {
			d.processedEncoder = encoder
			d.lastDebounce = now
			ev.EncoderStep = true
		}
	}

	// active low: a high-to-low transition is a press
	if d.lastButton && !button {
		ev.ButtonPressed = true
	}
	d.lastButton = button

	return ev
}

// ProcessedEncoder is the encoder position at the last accepted step.
func (d *Debouncer) ProcessedEncoder() int {
	return d.processedEncoder
}
