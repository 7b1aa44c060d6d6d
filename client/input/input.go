package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickDeadZone ignores small stick offsets.
const stickDeadZone = 0.2

// IsButtonPressed reports whether the device button is held down.
// Space, Enter and the gamepad's bottom face button all act as the button.
func IsButtonPressed() bool {
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if ebiten.IsStandardGamepadButtonPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if ebiten.IsGamepadButtonPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

// EncoderSteps returns how many detents the encoder turned this frame:
// E, Tab, the mouse wheel and the right shoulder turn it forward, Q and the
// left shoulder backwards.
func EncoderSteps() int {
	steps := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		steps++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		steps--
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		steps++
	} else if dy < 0 {
		steps--
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(g) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonFrontTopRight) {
			steps++
		}
		if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonFrontTopLeft) {
			steps--
		}
	}
	return steps
}

// Tilt returns the requested tilt as a pair of values in [-1, 1]. Positive
// forward tips the top edge down, positive side tips the left edge down.
func Tilt() (forward, side float64) {
	if IsUpPressed() {
		forward--
	}
	if IsDownPressed() {
		forward++
	}
	if IsLeftPressed() {
		side++
	}
	if IsRightPressed() {
		side--
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(g) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(g, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(g, ebiten.StandardGamepadAxisLeftStickVertical)
		if v > stickDeadZone || v < -stickDeadZone {
			forward = v
		}
		if h > stickDeadZone || h < -stickDeadZone {
			side = -h
		}
	}
	return forward, side
}

func IsRightPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
}

func IsLeftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
}

func IsUpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)
}

func IsDownPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)
}

func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsResetJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
