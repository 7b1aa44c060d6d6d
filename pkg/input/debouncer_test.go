package input

import (
	"testing"
	"time"

	"github.com/cbodonnell/mazerun/pkg/game/constants"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	encoder int
	button  bool
}

func (f *fakeSource) EncoderPosition() int { return f.encoder }
func (f *fakeSource) ButtonLevel() bool    { return f.button }

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func TestDebouncer_buttonEdge(t *testing.T) {
	src := &fakeSource{button: true}
	d := NewDebouncer(src, constants.EncoderDebounce)

	assert.False(t, d.Poll(ms(0)).ButtonPressed)

	src.button = false
	assert.True(t, d.Poll(ms(50)).ButtonPressed, "falling edge")
	assert.False(t, d.Poll(ms(100)).ButtonPressed, "held")

	src.button = true
	assert.False(t, d.Poll(ms(150)).ButtonPressed, "release")

	src.button = false
	assert.True(t, d.Poll(ms(200)).ButtonPressed)
}

func TestDebouncer_buttonHeldAtStartup(t *testing.T) {
	src := &fakeSource{button: false}
	d := NewDebouncer(src, constants.EncoderDebounce)

	assert.False(t, d.Poll(ms(0)).ButtonPressed)
	assert.False(t, d.Poll(ms(50)).ButtonPressed)
}

func TestDebouncer_encoder(t *testing.T) {
	src := &fakeSource{button: true}
	d := NewDebouncer(src, constants.EncoderDebounce)
	d.Poll(ms(0))

	assert.False(t, d.Poll(ms(50)).EncoderStep, "no movement")

	src.encoder = 1
	assert.True(t, d.Poll(ms(100)).EncoderStep)
	assert.Equal(t, 1, d.ProcessedEncoder())

	src.encoder = 2
	assert.False(t, d.Poll(ms(150)).EncoderStep, "inside debounce window")
	assert.Equal(t, 1, d.ProcessedEncoder())

	assert.False(t, d.Poll(ms(250)).EncoderStep, "no further movement, the bounce is dropped")

	src.encoder = 1
	ev := d.Poll(ms(300))
	assert.True(t, ev.EncoderStep, "reverse rotation still counts as one step")
	assert.Equal(t, 1, d.ProcessedEncoder())
}

func TestDebouncer_encoderWindowIsExclusive(t *testing.T) {
	src := &fakeSource{button: true}
	d := NewDebouncer(src, constants.EncoderDebounce)
	d.Poll(ms(0))

	src.encoder = 1
	assert.True(t, d.Poll(ms(10)).EncoderStep)

	src.encoder = 2
	assert.False(t, d.Poll(ms(90)).EncoderStep, "exactly the window is still inside it")

	src.encoder = 3
	assert.True(t, d.Poll(ms(91)).EncoderStep)
}
