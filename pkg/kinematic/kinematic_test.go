package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiltAngles(t *testing.T) {
	tests := []struct {
		name       string
		v          Vector
		wantAngleX float64
		wantAngleY float64
	}{
		{name: "flat", v: Vector{Z: Gravity}, wantAngleX: 0, wantAngleY: 0},
		{name: "x down", v: Vector{X: Gravity}, wantAngleX: 90, wantAngleY: 0},
		{name: "y up", v: Vector{Y: -Gravity}, wantAngleX: 0, wantAngleY: -90},
		{name: "forty five on x", v: Vector{X: 1, Z: 1}, wantAngleX: 45, wantAngleY: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := TiltAngles(tt.v)
			assert.InDelta(t, tt.wantAngleX, gotX, 1e-9)
			assert.InDelta(t, tt.wantAngleY, gotY, 1e-9)
		})
	}
}

func TestGravityFromTilt_roundTrip(t *testing.T) {
	for _, angles := range [][2]float64{{0, 0}, {-25, 0}, {25, 0}, {0, 30}, {15, -20}} {
		x, y := TiltAngles(GravityFromTilt(angles[0], angles[1]))
		assert.InDelta(t, angles[0], x, 1e-9)
		assert.InDelta(t, angles[1], y, 1e-9)
	}
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 5.0, Approach(0, 10, 5))
	assert.Equal(t, 10.0, Approach(8, 10, 5))
	assert.Equal(t, -3.0, Approach(0, -3, 5))
	assert.Equal(t, 2.0, Approach(2, 2, 5))
}
