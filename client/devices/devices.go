// Package devices holds the simulator's stand-ins for the handheld's
// hardware. They only store state; the window reads it to draw and the
// input bindings write to it every frame.
package devices

import (
	"image/color"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/scene"
)

const (
	// DefaultMaxTilt is the tilt in degrees at full deflection.
	DefaultMaxTilt = 35
	// DefaultTiltRate is how many degrees the tilt changes per frame.
	DefaultTiltRate = 12
)

// Display keeps the last scene shown.
type Display struct {
	current scene.Scene
	frames  int
}

var _ device.Display = &Display{}

func (d *Display) Show(s scene.Scene) error {
	d.current = s
	d.frames++
	return nil
}

func (d *Display) Scene() scene.Scene {
	return d.current
}

// Frames counts the scenes shown so far.
func (d *Display) Frames() int {
	return d.frames
}

// LED keeps the current LED colour.
type LED struct {
	current color.RGBA
}

var _ device.LED = &LED{}

func NewLED() *LED {
	return &LED{current: device.Off}
}

func (l *LED) Set(c color.RGBA) error {
	l.current = c
	return nil
}

func (l *LED) Color() color.RGBA {
	return l.current
}

// Controls are the encoder and the active-low button.
type Controls struct {
	encoder int
	held    bool
}

var _ device.InputSource = &Controls{}

// Apply records one frame of input.
func (c *Controls) Apply(encoderSteps int, buttonHeld bool) {
	c.encoder += encoderSteps
	c.held = buttonHeld
}

func (c *Controls) EncoderPosition() int {
	return c.encoder
}

func (c *Controls) ButtonLevel() bool {
	return !c.held
}

// Motion eases the simulated tilt towards the requested one, so a tap on a
// key produces a short tilt the way a wrist flick does.
type Motion struct {
	maxTilt float64
	rate    float64

	angleX float64
	angleY float64
}

var _ device.MotionSource = &Motion{}

func NewMotion(maxTilt, rate float64) *Motion {
	if maxTilt <= 0 {
		maxTilt = DefaultMaxTilt
	}
	if rate <= 0 {
		rate = DefaultTiltRate
	}
	return &Motion{maxTilt: maxTilt, rate: rate}
}

// Update moves one frame towards the requested tilt. forward and side are in
// [-1, 1]; forward tips the top edge down, side the left edge.
func (m *Motion) Update(forward, side float64) {
	m.angleX = kinematic.Approach(m.angleX, clamp(forward)*m.maxTilt, m.rate)
	m.angleY = kinematic.Approach(m.angleY, clamp(side)*m.maxTilt, m.rate)
}

// Angles returns the current tilt in degrees.
func (m *Motion) Angles() (angleX, angleY float64) {
	return m.angleX, m.angleY
}

func (m *Motion) Acceleration() kinematic.Vector {
	return kinematic.GravityFromTilt(m.angleX, m.angleY)
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
