package tty

import (
	"sync"
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/kinematic"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/cbodonnell/mazerun/pkg/queue"
	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultTiltLatch is how long one arrow key event keeps the device
	// tilted. Terminals report no key release, so a held key is seen as
	// autorepeat and a single press must outlast the gesture hold time.
	DefaultTiltLatch = 400 * time.Millisecond
	// TiltAngle is the simulated tilt in degrees.
	TiltAngle = 30
)

// Keyboard turns terminal key events into encoder, button and tilt
// readings. Events arrive from the terminal's event goroutine through a
// queue; Update applies them on the game loop.
type Keyboard struct {
	events *queue.InMemoryQueue[*tcell.EventKey]
	latch  time.Duration

	mu           sync.Mutex
	encoder      int
	pressPending bool
	tilt         maze.Direction
	tiltUntil    time.Time
	now          time.Time
}

var (
	_ device.InputSource  = &Keyboard{}
	_ device.MotionSource = &Keyboard{}
)

func NewKeyboard(latch time.Duration) *Keyboard {
	if latch <= 0 {
		latch = DefaultTiltLatch
	}
	return &Keyboard{
		events: queue.NewInMemoryQueue[*tcell.EventKey](queue.DefaultBufferSize),
		latch:  latch,
	}
}

// Push queues a key event. It is safe to call from any goroutine.
func (k *Keyboard) Push(ev *tcell.EventKey) {
	if err := k.events.Enqueue(ev); err != nil {
		log.Warn("Dropped key event: %v", err)
	}
}

// Update applies all queued key events as of now.
func (k *Keyboard) Update(now time.Time) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.now = now
	for _, ev := range k.events.ReadAllMessages() {
		switch ev.Key() {
		case tcell.KeyUp:
			k.tiltTowards(maze.Up)
		case tcell.KeyDown:
			k.tiltTowards(maze.Down)
		case tcell.KeyLeft:
			k.tiltTowards(maze.Left)
		case tcell.KeyRight:
			k.tiltTowards(maze.Right)
		case tcell.KeyEnter:
			k.pressPending = true
		case tcell.KeyTab:
			k.encoder++
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				k.pressPending = true
			case 'e', 'E':
				k.encoder++
			case 'q', 'Q':
				k.encoder--
			}
		}
	}
	return nil
}

func (k *Keyboard) tiltTowards(d maze.Direction) {
	k.tilt = d
	k.tiltUntil = k.now.Add(k.latch)
}

func (k *Keyboard) EncoderPosition() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.encoder
}

// ButtonLevel is active low: a pending press reads low once.
func (k *Keyboard) ButtonLevel() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.pressPending {
		k.pressPending = false
		return false
	}
	return true
}

func (k *Keyboard) Acceleration() kinematic.Vector {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.now.Before(k.tiltUntil) {
		return kinematic.GravityFromTilt(0, 0)
	}
	switch k.tilt {
	case maze.Up:
		return kinematic.GravityFromTilt(-TiltAngle, 0)
	case maze.Down:
		return kinematic.GravityFromTilt(TiltAngle, 0)
	case maze.Left:
		return kinematic.GravityFromTilt(0, TiltAngle)
	case maze.Right:
		return kinematic.GravityFromTilt(0, -TiltAngle)
	}
	return kinematic.GravityFromTilt(0, 0)
}

// IsQuit reports whether ev should end the program.
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
