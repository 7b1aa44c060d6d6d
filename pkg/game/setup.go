package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/mazerun/pkg/config"
	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/log"
)

// Devices are the collaborators a front end provides.
type Devices struct {
	Display    device.Display
	Input      device.InputSource
	Motion     device.MotionSource
	LED        device.LED
	BeforeTick func(now time.Time) error
}

// NewFromConfig wires a state machine and its control loop for the given
// devices.
func NewFromConfig(cfg config.Config, devices Devices, logger *log.Logger) (*GameManager, error) {
	machine, err := NewMachine(NewMachineOptions{
		Display:          devices.Display,
		Motion:           devices.Motion,
		LED:              devices.LED,
		Logger:           logger,
		Gesture:          cfg.Gesture(),
		RenderInterval:   cfg.RenderInterval,
		BlockingFeedback: cfg.BlockingFeedback,
		FlashTimes:       cfg.FlashTimes,
		FlashDelay:       cfg.FlashDelay,
		SweepDuration:    cfg.SweepDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %v", err)
	}
	return NewGameManager(NewGameManagerOptions{
		Input:            devices.Input,
		EncoderDebounce:  cfg.EncoderDebounce,
		Machine:          machine,
		GameLoopInterval: cfg.TickInterval,
		BeforeTick:       devices.BeforeTick,
	}), nil
}
