package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/feedback"
	"github.com/cbodonnell/mazerun/pkg/game/constants"
	"github.com/cbodonnell/mazerun/pkg/game/types"
	"github.com/cbodonnell/mazerun/pkg/gesture"
	"github.com/cbodonnell/mazerun/pkg/input"
	"github.com/cbodonnell/mazerun/pkg/level"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/cbodonnell/mazerun/pkg/scene"
	"github.com/google/uuid"
)

// Machine is the screen state machine. It owns the game progress and the
// level being played, and reacts to one batch of input events per tick.
type Machine struct {
	display    device.Display
	motion     device.MotionSource
	feedback   *feedback.Player
	classifier *gesture.Classifier
	scenes     *scene.Builder
	level      *level.Engine
	baseLogger *log.Logger
	logger     *log.Logger

	progress types.Progress

	renderInterval   time.Duration
	lastRender       time.Time
	blockingFeedback bool
	flashTimes       int
	flashDelay       time.Duration
	sweepDuration    time.Duration
	sweepStep        time.Duration

	runID uuid.UUID
	shown scene.Scene
}

// NewMachineOptions contains options for creating a new Machine.
type NewMachineOptions struct {
	Display device.Display
	Motion  device.MotionSource
	LED     device.LED
	Logger  *log.Logger

	// Gesture tunes the tilt classifier. The zero value uses the defaults.
	Gesture gesture.Config
	// RenderInterval throttles play screen refreshes. Zero uses the default.
	RenderInterval time.Duration
	// BlockingFeedback suspends input and the level clock while an LED
	// sequence plays, and defers the follow-up transition until it ends.
	BlockingFeedback bool

	FlashTimes    int
	FlashDelay    time.Duration
	SweepDuration time.Duration
	SweepStep     time.Duration
}

func NewMachine(opts NewMachineOptions) (*Machine, error) {
	if opts.Display == nil || opts.Motion == nil || opts.LED == nil {
		return nil, errors.New("display, motion source and led are required")
	}
	if err := maze.ValidateCatalog(); err != nil {
		return nil, fmt.Errorf("invalid maze catalog: %w", err)
	}

	gestureConfig := opts.Gesture
	if gestureConfig == (gesture.Config{}) {
		gestureConfig = gesture.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Machine{
		display:          opts.Display,
		motion:           opts.Motion,
		feedback:         feedback.NewPlayer(opts.LED),
		classifier:       gesture.New(gestureConfig),
		scenes:           scene.NewBuilder(),
		level:            level.New(),
		baseLogger:       logger,
		logger:           logger,
		renderInterval:   orDefault(opts.RenderInterval, constants.RenderInterval),
		blockingFeedback: opts.BlockingFeedback,
		flashTimes:       opts.FlashTimes,
		flashDelay:       orDefault(opts.FlashDelay, constants.FlashDelay),
		sweepDuration:    orDefault(opts.SweepDuration, constants.SweepDuration),
		sweepStep:        orDefault(opts.SweepStep, constants.SweepStep),
	}
	if m.flashTimes <= 0 {
		m.flashTimes = constants.FlashTimes
	}
	return m, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Start shows the splash screen.
func (m *Machine) Start(now time.Time) error {
	m.progress = types.Progress{State: types.StateSplash}
	return m.render(now)
}

// Progress returns a copy of the game progress.
func (m *Machine) Progress() types.Progress {
	return m.progress
}

// Level returns the level engine. Callers must treat it as read-only.
func (m *Machine) Level() *level.Engine {
	return m.level
}

// Scene returns the last scene sent to the display.
func (m *Machine) Scene() scene.Scene {
	return m.shown
}

// RunID identifies the current game. It is empty until the first game starts.
func (m *Machine) RunID() string {
	if m.runID == uuid.Nil {
		return ""
	}
	return m.runID.String()
}

// FeedbackBusy reports whether an LED sequence is playing.
func (m *Machine) FeedbackBusy() bool {
	return m.feedback.Busy()
}

// Tick runs one control loop iteration with the events polled for it.
func (m *Machine) Tick(ev input.Events, now time.Time) error {
	if m.feedback.Busy() {
		if err := m.feedback.Tick(now); err != nil {
			return err
		}
		if m.blockingFeedback {
			return nil
		}
	}

	switch m.progress.State {
	case types.StateSplash:
		return m.tickSplash(ev, now)
	case types.StateDifficultySelect:
		return m.tickDifficultySelect(ev, now)
	case types.StateGameStart:
		return m.tickGameStart(ev, now)
	case types.StateGamePlaying:
		return m.tickGamePlaying(ev, now)
	case types.StateGameOver:
		return m.tickGameOver(ev, now)
	case types.StateResult:
		return m.tickResult(ev, now)
	}
	return fmt.Errorf("unhandled state %s", m.progress.State)
}

func (m *Machine) tickSplash(ev input.Events, now time.Time) error {
	if !ev.ButtonPressed {
		return nil
	}
	m.progress.Difficulty = maze.Easy
	return m.transition(types.StateDifficultySelect, now)
}

func (m *Machine) tickDifficultySelect(ev input.Events, now time.Time) error {
	if ev.EncoderStep {
		m.progress.Difficulty = m.progress.Difficulty.Next()
		m.logger.Info("Difficulty selected: %s", m.progress.Difficulty)
		if err := m.render(now); err != nil {
			return err
		}
	}
	if ev.ButtonPressed {
		return m.transition(types.StateGameStart, now)
	}
	return nil
}

func (m *Machine) tickGameStart(ev input.Events, now time.Time) error {
	if !ev.ButtonPressed {
		return nil
	}
	m.progress.Level = 0
	m.progress.Score = 0
	m.progress.Victory = false
	m.runID = uuid.New()
	m.logger = m.baseLogger.With("run", m.runID.String())
	m.classifier.Reset()
	if err := m.level.Load(m.progress.Difficulty, 0, now); err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}
	return m.transition(types.StateGamePlaying, now)
}

func (m *Machine) tickGamePlaying(ev input.Events, now time.Time) error {
	if m.level.Tick(now) <= 0 {
		m.logger.Info("Game Over - Time's up!")
		m.progress.ResetSelection()
		m.progress.State = types.StateGameOver
		m.logger.Info("State changed: %s -> %s", types.StateGamePlaying, types.StateGameOver)
		return m.playFeedback(feedback.Failure(m.flashTimes, m.flashDelay), now, m.render)
	}

	moved := false
	if d, ok := m.classifier.Classify(m.motion.Acceleration(), now); ok {
		m.logger.Debug("Moving: %s", d)
		if m.level.TryMove(d, now) {
			m.classifier.MarkAccepted(now)
			moved = true
		} else {
			m.logger.Trace("Move %s blocked at %s", d, m.level.Player())
		}
	}

	if ev.ButtonPressed {
		if !m.level.IsComplete() {
			m.logger.Debug("Not at exit position")
		} else {
			return m.completeLevel(now)
		}
	}

	if moved || now.Sub(m.lastRender) > m.renderInterval {
		return m.render(now)
	}
	return nil
}

func (m *Machine) completeLevel(now time.Time) error {
	m.progress.Score += constants.LevelScore
	m.progress.Level++

	if m.progress.Level >= maze.LevelsPerDifficulty {
		m.logger.Info("All levels completed!")
		m.progress.Victory = true
		m.progress.ResetSelection()
		m.progress.State = types.StateResult
		m.logger.Info("State changed: %s -> %s", types.StateGamePlaying, types.StateResult)
		return m.playFeedback(feedback.Sweep(m.sweepDuration, m.sweepStep), now, m.render)
	}

	m.logger.Info("Level %d completed! Moving to level %d", m.progress.Level, m.progress.Level+1)
	return m.playFeedback(feedback.Success(m.flashTimes, m.flashDelay), now, func(now time.Time) error {
		if err := m.level.Load(m.progress.Difficulty, m.progress.Level, now); err != nil {
			return fmt.Errorf("failed to load level: %w", err)
		}
		return m.render(now)
	})
}

func (m *Machine) tickGameOver(ev input.Events, now time.Time) error {
	if ev.EncoderStep {
		m.progress.NextCursor()
		if err := m.render(now); err != nil {
			return err
		}
	}
	if ev.ButtonPressed && m.progress.Cursor == types.OptionRestart {
		return m.transition(types.StateGameStart, now)
	}
	return nil
}

func (m *Machine) tickResult(ev input.Events, now time.Time) error {
	if ev.EncoderStep {
		m.progress.NextCursor()
		if err := m.render(now); err != nil {
			return err
		}
	}
	if !ev.ButtonPressed {
		return nil
	}
	if m.progress.Cursor == types.OptionRestart {
		return m.transition(types.StateGameStart, now)
	}
	m.progress.Reset()
	return m.transition(types.StateSplash, now)
}

func (m *Machine) transition(to types.State, now time.Time) error {
	m.logger.Info("State changed: %s -> %s", m.progress.State, to)
	m.progress.State = to
	return m.render(now)
}

// playFeedback starts seq. With blocking feedback then runs when the
// sequence ends, otherwise right away.
func (m *Machine) playFeedback(seq feedback.Sequence, now time.Time, then func(now time.Time) error) error {
	if !m.blockingFeedback {
		if err := m.feedback.Start(seq, now, nil); err != nil {
			return err
		}
		return then(now)
	}

	return m.feedback.Start(seq, now, then)
}

func (m *Machine) render(now time.Time) error {
	s := m.buildScene()
	if err := m.display.Show(s); err != nil {
		return fmt.Errorf("failed to show %s: %w", s.Name, err)
	}
	m.shown = s
	m.lastRender = now
	return nil
}

func (m *Machine) buildScene() scene.Scene {
	switch m.progress.State {
	case types.StateDifficultySelect:
		return scene.DifficultySelect(m.progress.Difficulty)
	case types.StateGameStart:
		return scene.GameStart(m.progress.Difficulty)
	case types.StateGamePlaying:
		return m.scenes.Play(scene.PlayView{
			Difficulty: m.level.Difficulty(),
			Level:      m.level.Index(),
			Remaining:  m.level.Remaining(),
			Score:      m.progress.Score,
			Maze:       m.level.Maze(),
			Player:     m.level.Player(),
		})
	case types.StateGameOver:
		return scene.Result(false, m.progress.Score, m.progress.Cursor)
	case types.StateResult:
		return scene.Result(m.progress.Victory, m.progress.Score, m.progress.Cursor)
	}
	return scene.Splash()
}
