package kinematic

// This package includes the vector math used to turn a gravity reading into tilt.

import (
	"math"
)

const (
	// Gravity is standard gravity in m/s^2, the magnitude an accelerometer
	// at rest reports.
	Gravity float64 = 9.80665
)

// Vector is a 3-axis reading in the device frame.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// TiltAngles returns the front-back (angleX) and left-right (angleY) tilt of
// the device in degrees, relative to the gravity vector.
func TiltAngles(v Vector) (angleX, angleY float64) {
	angleX = math.Atan2(v.X, math.Sqrt(v.Y*v.Y+v.Z*v.Z)) * 180 / math.Pi
	angleY = math.Atan2(v.Y, math.Sqrt(v.X*v.X+v.Z*v.Z)) * 180 / math.Pi
	return angleX, angleY
}

// GravityFromTilt returns the reading a resting accelerometer reports when
// tilted by the given angles in degrees. It is the inverse of TiltAngles for
// angles whose combined tilt stays below 90 degrees.
func GravityFromTilt(angleX, angleY float64) Vector {
	sx := math.Sin(angleX * math.Pi / 180)
	sy := math.Sin(angleY * math.Pi / 180)
	z2 := 1 - sx*sx - sy*sy
	if z2 < 0 {
		z2 = 0
	}
	return Vector{
		X: Gravity * sx,
		Y: Gravity * sy,
		Z: Gravity * math.Sqrt(z2),
	}
}

// Approach moves current towards target by at most step and returns the result.
func Approach(current, target, step float64) float64 {
	switch {
	case current < target:
		return math.Min(current+step, target)
	case current > target:
		return math.Max(current-step, target)
	}
	return current
}
