// Package device declares the peripherals the game drives. Real hardware and
// the simulators provide implementations.
package device

import (
	"image/color"

	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/scene"
)

// Display shows a scene. The game never reads anything back from it.
type Display interface {
	Show(s scene.Scene) error
}

// InputSource exposes the rotary encoder and the push button.
type InputSource interface {
	// EncoderPosition is the detent counter, updated asynchronously by the encoder.
	EncoderPosition() int
	// ButtonLevel is the raw button line. It is active low: pressed reads false.
	ButtonLevel() bool
}

// MotionSource exposes the accelerometer.
type MotionSource interface {
	Acceleration() kinematic.Vector
}

// LED is the single addressable RGB pixel.
type LED interface {
	Set(c color.RGBA) error
}

// Off is the colour of a dark LED.
var Off = color.RGBA{A: 0xff}
