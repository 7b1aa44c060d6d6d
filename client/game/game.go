package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/mazerun/client/devices"
	"github.com/cbodonnell/mazerun/client/flow"
	"github.com/cbodonnell/mazerun/client/input"
	"github.com/cbodonnell/mazerun/client/scenes"
	"github.com/cbodonnell/mazerun/client/ui"
	"github.com/cbodonnell/mazerun/pkg/config"
	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/feedback"
	gamepkg "github.com/cbodonnell/mazerun/pkg/game"
	"github.com/cbodonnell/mazerun/pkg/game/types"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
// Every Update is one control loop tick on a simulated clock, so pausing the
// window also pauses the level timers.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// cfg is the device configuration.
	cfg config.Config
	// layout places the device in the window.
	layout scenes.Layout
	// logger is the logger handed to the state machine.
	logger *log.Logger
	// wrapLED decorates the simulated LED, for example with sound.
	wrapLED func(device.LED) device.LED
	// mode is the current simulator mode.
	mode flow.Mode
	// scene is the current scene.
	scene scenes.Scene

	now           time.Time
	display       *devices.Display
	led           *devices.LED
	controls      *devices.Controls
	motion        *devices.Motion
	manager       *gamepkg.GameManager
	device        *scenes.DeviceScene
	last          types.Progress
	resetRequired bool
}

type NewGameOptions struct {
	Debug   bool
	Config  config.Config
	Logger  *log.Logger
	WrapLED func(device.LED) device.LED
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:   opts.Debug,
		cfg:     opts.Config,
		layout:  scenes.Layout{Scale: opts.Config.Scale},
		logger:  opts.Logger,
		wrapLED: opts.WrapLED,
	}

	if err := g.reset(); err != nil {
		return nil, fmt.Errorf("failed to start device: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}
	log.Debug("Scene set to %s", scene.GetName())

	return nil
}

// reset powers the device on again from scratch.
func (g *Game) reset() error {
	g.now = time.Now()
	g.display = &devices.Display{}
	g.led = devices.NewLED()
	g.controls = &devices.Controls{}
	g.motion = devices.NewMotion(devices.DefaultMaxTilt, devices.DefaultTiltRate)

	var led device.LED = g.led
	if g.wrapLED != nil {
		led = g.wrapLED(led)
	}

	manager, err := gamepkg.NewFromConfig(g.cfg, gamepkg.Devices{
		Display: g.display,
		Input:   g.controls,
		Motion:  g.motion,
		LED:     led,
	}, g.logger)
	if err != nil {
		return fmt.Errorf("failed to create game manager: %v", err)
	}
	if err := manager.Init(g.now); err != nil {
		return fmt.Errorf("failed to initialize game manager: %v", err)
	}
	g.manager = manager
	g.last = manager.Machine().Progress()

	deviceScene, err := scenes.NewDeviceScene(scenes.DeviceSceneOptions{
		Layout:    g.layout,
		Display:   g.display,
		LED:       g.led,
		Motion:    g.motion,
		MaxTilt:   devices.DefaultMaxTilt,
		Threshold: g.cfg.AngleThreshold,
		OnPause:   g.togglePause,
		OnReset:   func() { g.resetRequired = true },
	})
	if err != nil {
		return fmt.Errorf("failed to create device scene: %v", err)
	}
	if err := g.SetScene(deviceScene); err != nil {
		return fmt.Errorf("failed to set device scene: %v", err)
	}
	g.device = deviceScene
	g.mode = flow.ModeRunning
	g.resetRequired = false
	log.Info("Device reset")
	return nil
}

func (g *Game) loadError(cause error) error {
	errorScene, err := scenes.NewErrorScene("Device Error", g.layout)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	log.Error("Device stopped: %v", cause)
	g.device = nil
	g.mode = flow.ModeError
	return nil
}

func (g *Game) togglePause() {
	switch g.mode {
	case flow.ModeRunning:
		g.mode = flow.ModePaused
	case flow.ModePaused:
		g.mode = flow.ModeRunning
	default:
		return
	}
	g.device.SetPaused(g.mode == flow.ModePaused)
	log.Debug("Simulator %s", g.mode)
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return err
	}

	if g.mode == flow.ModeRunning {
		if err := g.tick(); err != nil {
			if err := g.loadError(err); err != nil {
				return fmt.Errorf("failed to load error scene: %v", err)
			}
		}
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}
	if input.IsResetJustPressed() || g.resetRequired {
		if err := g.reset(); err != nil {
			return fmt.Errorf("failed to reset device: %v", err)
		}
		return nil
	}

	switch g.mode {
	case flow.ModeRunning, flow.ModePaused:
		if input.IsPauseJustPressed() {
			g.togglePause()
		}
	}
	return nil
}

// tick advances the simulated clock by one tick and runs the control loop.
func (g *Game) tick() error {
	g.controls.Apply(input.EncoderSteps(), input.IsButtonPressed())
	g.motion.Update(input.Tilt())

	g.now = g.now.Add(g.cfg.TickInterval)
	if err := g.manager.Tick(g.now); err != nil {
		return err
	}

	progress := g.manager.Machine().Progress()
	if err := g.announce(g.last, progress); err != nil {
		return err
	}
	g.last = progress
	g.device.SetStatus(g.status(progress))
	return nil
}

func (g *Game) announce(before, after types.Progress) error {
	switch {
	case after.State == types.StateGameOver && before.State != types.StateGameOver:
		return g.device.Announce("Time's up", feedback.Red)
	case after.State == types.StateResult && before.State != types.StateResult:
		return g.device.Announce("Victory", feedback.Green)
	case after.State == types.StateGamePlaying && after.Score > before.Score:
		return g.device.Announce(fmt.Sprintf("+%d", after.Score-before.Score), feedback.Green)
	}
	return nil
}

func (g *Game) status(p types.Progress) ui.Status {
	lvl := g.manager.Machine().Level()
	s := ui.Status{
		Mode:       g.mode.String(),
		State:      p.State.String(),
		Difficulty: p.Difficulty.String(),
		Level:      "-",
		Time:       "-",
		Score:      fmt.Sprintf("%d", p.Score),
		Run:        g.manager.Machine().RunID(),
	}
	if p.State == types.StateGamePlaying && lvl.Loaded() {
		s.Level = fmt.Sprintf("%d", lvl.Index()+1)
		s.Time = fmt.Sprintf("%.1fs", lvl.Remaining().Seconds())
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	if g.display != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Frames: %d", g.display.Frames()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.layout.Width(), g.layout.Height()
}
