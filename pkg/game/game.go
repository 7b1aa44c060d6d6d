package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/game/constants"
	"github.com/cbodonnell/mazerun/pkg/input"
	"github.com/cbodonnell/mazerun/pkg/log"
)

// GameManager runs the control loop: every tick it polls the inputs once and
// hands the resulting events to the state machine.
type GameManager struct {
	debouncer        *input.Debouncer
	machine          *Machine
	gameLoopInterval time.Duration
	beforeTick       func(now time.Time) error
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Input            device.InputSource
	EncoderDebounce  time.Duration
	Machine          *Machine
	GameLoopInterval time.Duration
	// BeforeTick runs at the start of every tick, before the inputs are
	// polled. Simulated devices use it to apply queued input.
	BeforeTick func(now time.Time) error
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	debounce := opts.EncoderDebounce
	if debounce <= 0 {
		debounce = constants.EncoderDebounce
	}
	interval := opts.GameLoopInterval
	if interval <= 0 {
		interval = constants.TickInterval
	}
	return &GameManager{
		debouncer:        input.NewDebouncer(opts.Input, debounce),
		machine:          opts.Machine,
		gameLoopInterval: interval,
		beforeTick:       opts.BeforeTick,
	}
}

// Start shows the splash screen and runs the game loop until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.Init(time.Now()); err != nil {
		return err
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			if err := gm.Tick(t); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// Init primes the inputs and shows the first screen. Start calls it; loops
// driven from elsewhere call it once before the first Tick.
func (gm *GameManager) Init(now time.Time) error {
	gm.debouncer.Poll(now)
	if err := gm.machine.Start(now); err != nil {
		return fmt.Errorf("failed to start state machine: %w", err)
	}
	return nil
}

// Tick runs one iteration of the game loop.
func (gm *GameManager) Tick(t time.Time) error {
	if gm.beforeTick != nil {
		if err := gm.beforeTick(t); err != nil {
			return fmt.Errorf("failed to update inputs: %w", err)
		}
	}
	ev := gm.debouncer.Poll(t)
	if ev.ButtonPressed {
		log.Debug("Button pressed!")
	}
	return gm.machine.Tick(ev, t)
}

func (gm *GameManager) Machine() *Machine {
	return gm.machine
}

func (gm *GameManager) Interval() time.Duration {
	return gm.gameLoopInterval
}
