package types

import (
	"testing"

	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "SPLASH", StateSplash.String())
	assert.Equal(t, "GAME_PLAYING", StateGamePlaying.String())
	assert.Equal(t, "RESULT", StateResult.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}

func TestProgress_cursor(t *testing.T) {
	p := &Progress{Difficulty: maze.Hard}

	p.NextCursor()
	assert.Equal(t, OptionMainMenu, p.Cursor)
	p.NextCursor()
	assert.Equal(t, OptionRestart, p.Cursor)

	p.NextCursor()
	p.ResetSelection()
	assert.Equal(t, 0, p.Cursor)
	assert.Equal(t, maze.Easy, p.Difficulty)
}

func TestProgress_Reset(t *testing.T) {
	p := &Progress{State: StateResult, Difficulty: maze.Normal, Cursor: OptionMainMenu, Level: 10, Score: 100, Victory: true}
	p.Reset()
	assert.Equal(t, Progress{State: StateResult}, *p)
}
