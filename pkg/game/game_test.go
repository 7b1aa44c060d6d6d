package game

import (
	"context"
	"testing"
	"time"

	mocks "github.com/cbodonnell/mazerun/mocks/github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/config"
	"github.com/cbodonnell/mazerun/pkg/game/types"
	"github.com/cbodonnell/mazerun/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeInput is an active-low button and a raw encoder count.
type fakeInput struct {
	encoder int
	button  bool
}

func (f *fakeInput) EncoderPosition() int { return f.encoder }
func (f *fakeInput) ButtonLevel() bool    { return f.button }

func newTestManager(t *testing.T, in *fakeInput) (*GameManager, *[]scene.Scene) {
	t.Helper()
	var shows []scene.Scene
	display := mocks.NewDisplay(t)
	display.EXPECT().Show(mock.Anything).Run(func(s scene.Scene) {
		shows = append(shows, s)
	}).Return(nil).Maybe()
	led := mocks.NewLED(t)
	led.EXPECT().Set(mock.Anything).Return(nil).Maybe()

	m, err := NewMachine(NewMachineOptions{Display: display, Motion: &fakeMotion{}, LED: led})
	require.NoError(t, err)
	gm := NewGameManager(NewGameManagerOptions{
		Input:            in,
		Machine:          m,
		GameLoopInterval: 5 * time.Millisecond,
	})
	return gm, &shows
}

func TestNewGameManager_defaults(t *testing.T) {
	gm, _ := newTestManager(t, &fakeInput{button: true})
	assert.Equal(t, 5*time.Millisecond, gm.Interval())

	gm = NewGameManager(NewGameManagerOptions{Input: &fakeInput{}, Machine: gm.Machine()})
	assert.Equal(t, 50*time.Millisecond, gm.Interval())
}

func TestGameManager_Tick(t *testing.T) {
	in := &fakeInput{button: true}
	gm, shows := newTestManager(t, in)
	now := t0

	require.NoError(t, gm.Init(now))
	require.Len(t, *shows, 1)

	// press and release
	in.button = false
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, gm.Tick(now))
	assert.Equal(t, types.StateDifficultySelect, gm.Machine().Progress().State)

	in.button = true
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, gm.Tick(now))

	// two encoder changes inside the debounce window count once
	in.encoder = 1
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, gm.Tick(now))
	in.encoder = 2
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, gm.Tick(now))
	in.encoder = 3
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, gm.Tick(now))

	assert.Equal(t, "HARD", gm.Machine().Progress().Difficulty.String())
}

func TestGameManager_heldButtonAtStartup(t *testing.T) {
	in := &fakeInput{button: false}
	gm, _ := newTestManager(t, in)

	require.NoError(t, gm.Init(t0))
	require.NoError(t, gm.Tick(t0.Add(50*time.Millisecond)))
	assert.Equal(t, types.StateSplash, gm.Machine().Progress().State)
}

func TestGameManager_Start(t *testing.T) {
	gm, shows := newTestManager(t, &fakeInput{button: true})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, gm.Start(ctx))

	require.NotEmpty(t, *shows)
	assert.Equal(t, "splash", (*shows)[0].Name)
	assert.Equal(t, types.StateSplash, gm.Machine().Progress().State)
}

func TestGameManager_BeforeTick(t *testing.T) {
	in := &fakeInput{button: true}
	gm, _ := newTestManager(t, in)
	var calls []time.Time
	gm.beforeTick = func(now time.Time) error {
		calls = append(calls, now)
		in.button = false
		return nil
	}

	require.NoError(t, gm.Init(t0))
	require.NoError(t, gm.Tick(t0.Add(50*time.Millisecond)))

	assert.Equal(t, []time.Time{t0.Add(50 * time.Millisecond)}, calls)
	assert.Equal(t, types.StateDifficultySelect, gm.Machine().Progress().State, "input applied before the poll")
}

func TestNewFromConfig(t *testing.T) {
	display := mocks.NewDisplay(t)
	led := mocks.NewLED(t)

	cfg := config.Default()
	cfg.TickInterval = 20 * time.Millisecond
	gm, err := NewFromConfig(cfg, Devices{
		Display: display,
		Input:   &fakeInput{button: true},
		Motion:  &fakeMotion{},
		LED:     led,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, gm.Interval())

	_, err = NewFromConfig(cfg, Devices{}, nil)
	assert.Error(t, err)
}
