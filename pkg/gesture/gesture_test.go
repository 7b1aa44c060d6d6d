package gesture

import (
	"testing"
	"time"

	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestClassifier_heldTiltEmitsUp(t *testing.T) {
	c := New(DefaultConfig())

	_, ok := c.ClassifyAngles(-25, 0, at(0))
	assert.False(t, ok, "first sample only starts the hold timer")

	_, ok = c.ClassifyAngles(-25, 0, at(200))
	assert.False(t, ok)

	d, ok := c.ClassifyAngles(-25, 0, at(350))
	assert.True(t, ok)
	assert.Equal(t, maze.Up, d)
}

func TestClassifier_ClassifyAngles(t *testing.T) {
	tests := []struct {
		name      string
		angleX    float64
		angleY    float64
		want      maze.Direction
		wantFound bool
	}{
		{name: "up", angleX: -30, want: maze.Up, wantFound: true},
		{name: "down", angleX: 30, want: maze.Down, wantFound: true},
		{name: "left", angleY: 30, want: maze.Left, wantFound: true},
		{name: "right", angleY: -30, want: maze.Right, wantFound: true},
		{name: "below threshold", angleX: -19, angleY: 19},
		{name: "exactly threshold", angleX: 20, angleY: -20},
		{name: "down and left prefers left", angleX: 30, angleY: 30, want: maze.Left, wantFound: true},
		{name: "up and right prefers right", angleX: -30, angleY: -30, want: maze.Right, wantFound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			c.ClassifyAngles(tt.angleX, tt.angleY, at(0))
			got, found := c.ClassifyAngles(tt.angleX, tt.angleY, at(300))
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifier_hysteresisReset(t *testing.T) {
	c := New(DefaultConfig())

	c.ClassifyAngles(-25, 0, at(0))
	assert.True(t, c.Holding(maze.Up))

	c.ClassifyAngles(-10, 0, at(200))
	assert.False(t, c.Holding(maze.Up), "a single sample under threshold clears the hold")

	_, ok := c.ClassifyAngles(-25, 0, at(350))
	assert.False(t, ok, "the streak restarts from zero")

	_, ok = c.ClassifyAngles(-25, 0, at(600))
	assert.False(t, ok)

	d, ok := c.ClassifyAngles(-25, 0, at(650))
	assert.True(t, ok)
	assert.Equal(t, maze.Up, d)
}

func TestClassifier_cooldown(t *testing.T) {
	c := New(DefaultConfig())

	c.ClassifyAngles(0, 25, at(0))
	d, ok := c.ClassifyAngles(0, 25, at(300))
	assert.True(t, ok)
	assert.Equal(t, maze.Left, d)
	c.MarkAccepted(at(300))

	_, ok = c.ClassifyAngles(0, 25, at(500))
	assert.False(t, ok, "cooldown suppresses output")
	assert.True(t, c.InCooldown(at(790)))
	_, ok = c.ClassifyAngles(0, 25, at(790))
	assert.False(t, ok)

	d, ok = c.ClassifyAngles(0, 25, at(800))
	assert.True(t, ok, "hold survived the cooldown")
	assert.Equal(t, maze.Left, d)
}

func TestClassifier_cooldownWithoutMarkAccepted(t *testing.T) {
	c := New(DefaultConfig())

	c.ClassifyAngles(30, 0, at(0))
	_, ok := c.ClassifyAngles(30, 0, at(300))
	assert.True(t, ok)

	// The move was rejected by the maze, so the caller never marks it accepted.
	d, ok := c.ClassifyAngles(30, 0, at(350))
	assert.True(t, ok)
	assert.Equal(t, maze.Down, d)
}

func TestClassifier_holdTimersRunDuringCooldown(t *testing.T) {
	c := New(DefaultConfig())
	c.MarkAccepted(at(0))

	c.ClassifyAngles(0, -25, at(100))
	assert.True(t, c.Holding(maze.Right))
	c.ClassifyAngles(0, 0, at(200))
	assert.False(t, c.Holding(maze.Right))
}

func TestClassifier_Reset(t *testing.T) {
	c := New(DefaultConfig())
	c.ClassifyAngles(-25, 0, at(0))
	c.MarkAccepted(at(0))

	c.Reset()

	assert.False(t, c.Holding(maze.Up))
	assert.False(t, c.InCooldown(at(100)))
}

func TestClassifier_Classify(t *testing.T) {
	c := New(DefaultConfig())
	v := kinematic.GravityFromTilt(0, -30)

	c.Classify(v, at(0))
	d, ok := c.Classify(v, at(300))
	assert.True(t, ok)
	assert.Equal(t, maze.Right, d)

	_, ok = c.Classify(kinematic.Vector{Z: kinematic.Gravity}, at(350))
	assert.False(t, ok)
	assert.False(t, c.Holding(maze.Right))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20.0, cfg.AngleThreshold)
	assert.Equal(t, 300*time.Millisecond, cfg.HoldDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.Cooldown)
}
