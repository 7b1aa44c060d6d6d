package feedback

import (
	"errors"
	"image/color"
	"testing"
	"time"

	mocks "github.com/cbodonnell/mazerun/mocks/github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func TestFlash_ColorAt(t *testing.T) {
	f := Flash(Red, 2, 300*time.Millisecond)
	assert.Equal(t, 1200*time.Millisecond, f.Duration())

	tests := []struct {
		elapsed  time.Duration
		want     color.RGBA
		wantDone bool
	}{
		{elapsed: 0, want: Red},
		{elapsed: 299 * time.Millisecond, want: Red},
		{elapsed: 300 * time.Millisecond, want: device.Off},
		{elapsed: 650 * time.Millisecond, want: Red},
		{elapsed: 900 * time.Millisecond, want: device.Off},
		{elapsed: 1200 * time.Millisecond, want: device.Off, wantDone: true},
	}
	for _, tt := range tests {
		c, done := f.ColorAt(tt.elapsed)
		assert.Equal(t, tt.want, c, "at %s", tt.elapsed)
		assert.Equal(t, tt.wantDone, done, "at %s", tt.elapsed)
	}
}

func TestSweep_ColorAt(t *testing.T) {
	const step = 10 * time.Millisecond
	s := Sweep(3*time.Second, step)
	assert.Equal(t, KindVictory, s.Kind())

	c, done := s.ColorAt(0)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)
	assert.False(t, done)

	c, _ = s.ColorAt(85 * step)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, c)

	c, _ = s.ColorAt(255 * step)
	assert.Equal(t, Wheel(0), c, "the wheel wraps after 255 steps")

	_, done = s.ColorAt(3 * time.Second)
	assert.True(t, done)
}

func TestWheel(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, Wheel(0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, Wheel(85))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, Wheel(170))
	assert.Equal(t, color.RGBA{R: 255 - 3, G: 3, A: 255}, Wheel(1))
}

func TestPlayer_flash(t *testing.T) {
	led := mocks.NewLED(t)
	led.EXPECT().Set(Green).Return(nil).Twice()
	led.EXPECT().Set(device.Off).Return(nil).Twice()

	p := NewPlayer(led)
	var doneAt time.Time
	require.NoError(t, p.Start(Flash(Green, 2, 300*time.Millisecond), ms(0), func(now time.Time) error {
		doneAt = now
		return nil
	}))
	assert.True(t, p.Busy())

	for n := 50; n < 1200; n += 50 {
		require.NoError(t, p.Tick(ms(n)))
		assert.True(t, p.Busy(), "at %dms", n)
	}
	assert.True(t, doneAt.IsZero())

	require.NoError(t, p.Tick(ms(1200)))
	assert.False(t, p.Busy())
	assert.Equal(t, ms(1200), doneAt)

	require.NoError(t, p.Tick(ms(1250)), "idle ticks do nothing")
}

func TestPlayer_ledError(t *testing.T) {
	led := mocks.NewLED(t)
	led.EXPECT().Set(mock.Anything).Return(errors.New("bus fault")).Once()

	p := NewPlayer(led)
	err := p.Start(Flash(Red, 1, time.Second), ms(0), nil)
	assert.ErrorContains(t, err, "bus fault")
}

func TestPlayer_onDoneError(t *testing.T) {
	led := mocks.NewLED(t)
	led.EXPECT().Set(mock.Anything).Return(nil)

	p := NewPlayer(led)
	require.NoError(t, p.Start(Flash(Red, 1, 100*time.Millisecond), ms(0), func(time.Time) error {
		return errors.New("load failed")
	}))
	assert.NoError(t, p.Tick(ms(100)))
	assert.ErrorContains(t, p.Tick(ms(200)), "load failed")
	assert.False(t, p.Busy())
}

func TestFlash_Kind(t *testing.T) {
	assert.Equal(t, KindNone, Flash(Red, 2, time.Second).Kind())
	assert.Equal(t, KindFailure, Failure(2, time.Second).Kind())
	assert.Equal(t, KindSuccess, Success(2, time.Second).Kind())

	c, _ := Failure(2, time.Second).ColorAt(0)
	assert.Equal(t, Red, c)
	c, _ = Success(2, time.Second).ColorAt(0)
	assert.Equal(t, Green, c)
}

type cueLED struct {
	cues   []Kind
	colors []color.RGBA
}

func (l *cueLED) Set(c color.RGBA) error {
	l.colors = append(l.colors, c)
	return nil
}

func (l *cueLED) Cue(k Kind) {
	l.cues = append(l.cues, k)
}

func TestPlayer_cuesLED(t *testing.T) {
	led := &cueLED{}
	p := NewPlayer(led)

	require.NoError(t, p.Start(Sweep(time.Second, 10*time.Millisecond), ms(0), nil))
	require.Equal(t, []Kind{KindVictory}, led.cues)
	assert.Equal(t, []color.RGBA{Red}, led.colors, "the sweep starts on the same red as a failure")

	require.NoError(t, p.Start(Failure(1, 100*time.Millisecond), ms(50), nil))
	assert.Equal(t, []Kind{KindVictory, KindFailure}, led.cues)
}
