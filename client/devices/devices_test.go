package devices

import (
	"testing"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/feedback"
	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	d := &Display{}
	require.NoError(t, d.Show(scene.Splash()))
	require.NoError(t, d.Show(scene.GameStart(0)))
	assert.Equal(t, "start", d.Scene().Name)
	assert.Equal(t, 2, d.Frames())
}

func TestLED(t *testing.T) {
	l := NewLED()
	assert.Equal(t, device.Off, l.Color())
	require.NoError(t, l.Set(feedback.Green))
	assert.Equal(t, feedback.Green, l.Color())
}

func TestControls(t *testing.T) {
	c := &Controls{}
	assert.True(t, c.ButtonLevel(), "released reads high")

	c.Apply(1, true)
	c.Apply(-2, true)
	assert.Equal(t, -1, c.EncoderPosition())
	assert.False(t, c.ButtonLevel())

	c.Apply(0, false)
	assert.True(t, c.ButtonLevel())
}

func TestMotion(t *testing.T) {
	m := NewMotion(30, 12)

	m.Update(0, 1)
	_, angleY := m.Angles()
	assert.Equal(t, 12.0, angleY)

	m.Update(0, 5)
	m.Update(0, 5)
	angleX, angleY := m.Angles()
	assert.Equal(t, 0.0, angleX)
	assert.Equal(t, 30.0, angleY, "clamped to the maximum tilt")

	gotX, gotY := kinematic.TiltAngles(m.Acceleration())
	assert.InDelta(t, 0, gotX, 1e-9)
	assert.InDelta(t, 30, gotY, 1e-9)

	m.Update(0, 0)
	m.Update(0, 0)
	m.Update(0, 0)
	_, angleY = m.Angles()
	assert.Equal(t, 0.0, angleY)
}
