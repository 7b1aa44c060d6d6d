package constants

import "time"

const (
	// TickInterval is the control loop period.
	TickInterval time.Duration = 50 * time.Millisecond
	// RenderInterval is the minimum time between play screen refreshes
	// that are not caused by a move.
	RenderInterval time.Duration = 300 * time.Millisecond

	// EncoderDebounce is the minimum time between two accepted encoder steps.
	EncoderDebounce time.Duration = 80 * time.Millisecond

	// AngleThreshold is the tilt in degrees that starts a gesture.
	AngleThreshold float64 = 20
	// GestureHold is how long a tilt must hold before it moves the player.
	GestureHold time.Duration = 300 * time.Millisecond
	// GestureCooldown is the quiet period after an accepted move.
	GestureCooldown time.Duration = 500 * time.Millisecond

	// LevelScore is awarded for each completed level.
	LevelScore int = 10

	// FlashTimes and FlashDelay shape the success and failure flashes.
	FlashTimes int           = 2
	FlashDelay time.Duration = 300 * time.Millisecond
	// SweepDuration and SweepStep shape the victory colour cycle.
	SweepDuration time.Duration = 3 * time.Second
	SweepStep     time.Duration = 10 * time.Millisecond
)
