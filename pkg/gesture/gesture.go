// Package gesture turns accelerometer readings into debounced move commands.
package gesture

import (
	"time"

	"github.com/cbodonnell/mazerun/pkg/game/constants"
	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/maze"
)

type Config struct {
	// AngleThreshold is the tilt in degrees a direction needs to become a candidate.
	AngleThreshold float64
	// HoldDuration is how long a candidate must hold continuously before it is eligible.
	HoldDuration time.Duration
	// Cooldown is the quiet period after an accepted move during which nothing is emitted.
	Cooldown time.Duration
}

func DefaultConfig() Config {
	return Config{
		AngleThreshold: constants.AngleThreshold,
		HoldDuration:   constants.GestureHold,
		Cooldown:       constants.GestureCooldown,
	}
}

// Classifier tracks one hold timer per direction. The cooldown clock is only
// advanced through MarkAccepted, once a move has actually been applied.
type Classifier struct {
	cfg Config

	// holdStart is the zero time when the direction's condition is not holding.
	holdStart    [len(maze.Directions)]time.Time
	lastAccepted time.Time
}

func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify converts a raw reading into a direction, if one is eligible at now.
func (c *Classifier) Classify(v kinematic.Vector, now time.Time) (maze.Direction, bool) {
	angleX, angleY := kinematic.TiltAngles(v)
	return c.ClassifyAngles(angleX, angleY, now)
}

// ClassifyAngles evaluates all four directions in the order up, down, left,
// right and returns the last eligible one. Hold timers are updated even while
// the cooldown suppresses output.
func (c *Classifier) ClassifyAngles(angleX, angleY float64, now time.Time) (maze.Direction, bool) {
	threshold := c.cfg.AngleThreshold
	conditions := [len(maze.Directions)]bool{
		maze.Up:    angleX < -threshold,
		maze.Down:  angleX > threshold,
		maze.Left:  angleY > threshold,
		maze.Right: angleY < -threshold,
	}

	var (
		result maze.Direction
		found  bool
	)
	for _, d := range maze.Directions {
		if !conditions[d] {
			c.holdStart[d] = time.Time{}
			continue
		}
		if c.holdStart[d].IsZero() {
			c.holdStart[d] = now
			continue
		}
		if now.Sub(c.holdStart[d]) >= c.cfg.HoldDuration {
			result, found = d, true
		}
	}

	if c.InCooldown(now) {
		return 0, false
	}
	return result, found
}

// InCooldown reports whether an accepted move happened less than Cooldown ago.
func (c *Classifier) InCooldown(now time.Time) bool {
	return !c.lastAccepted.IsZero() && now.Sub(c.lastAccepted) < c.cfg.Cooldown
}

// MarkAccepted restarts the cooldown. Call it when a classified direction
// produced an actual move.
func (c *Classifier) MarkAccepted(now time.Time) {
	c.lastAccepted = now
}

// Holding reports whether d currently has a running hold timer.
func (c *Classifier) Holding(d maze.Direction) bool {
	return !c.holdStart[d].IsZero()
}

// Reset clears all hold timers and the cooldown.
func (c *Classifier) Reset() {
	c.holdStart = [len(maze.Directions)]time.Time{}
	c.lastAccepted = time.Time{}
}
