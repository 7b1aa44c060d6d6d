package level

import (
	"testing"
	"time"

	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func loaded(t *testing.T, d maze.Difficulty, index int) *Engine {
	t.Helper()
	e := New()
	require.NoError(t, e.Load(d, index, t0))
	return e
}

func TestEngine_Load(t *testing.T) {
	e := loaded(t, maze.Normal, 0)

	assert.True(t, e.Loaded())
	assert.Equal(t, maze.Point{X: 6, Y: 1}, e.Player())
	assert.Equal(t, maze.Point{X: 1, Y: 5}, e.Exit())
	assert.Equal(t, 45*time.Second, e.Remaining())
	assert.False(t, e.IsComplete())
}

func TestEngine_Load_outOfRange(t *testing.T) {
	e := New()
	err := e.Load(maze.Easy, 10, t0)
	assert.ErrorIs(t, err, maze.ErrOutOfRange)
	assert.False(t, e.Loaded())
	assert.False(t, e.TryMove(maze.Right, t0))
}

func TestEngine_LoadNeverStartsComplete(t *testing.T) {
	for _, d := range maze.Difficulties {
		for i := 0; i < maze.LevelsPerDifficulty; i++ {
			e := loaded(t, d, i)
			assert.False(t, e.IsComplete(), "%s level %d", d, i)
		}
	}
}

func TestEngine_Tick(t *testing.T) {
	e := loaded(t, maze.Hard, 0)

	assert.Equal(t, 30*time.Second, e.Tick(t0))
	assert.Equal(t, 20*time.Second, e.Tick(t0.Add(10*time.Second)))
	assert.Equal(t, time.Duration(0), e.Tick(t0.Add(31*time.Second)))
	assert.Equal(t, time.Duration(0), e.Remaining())
}

func TestEngine_TryMove(t *testing.T) {
	e := loaded(t, maze.Easy, 1)
	now := t0.Add(time.Second)

	require.Equal(t, maze.Point{X: 1, Y: 1}, e.Player())
	assert.True(t, e.TryMove(maze.Right, now))
	assert.Equal(t, maze.Point{X: 2, Y: 1}, e.Player())
	assert.Equal(t, now, e.LastMove())
}

func TestEngine_TryMove_rejectedLeavesStateUnchanged(t *testing.T) {
	e := loaded(t, maze.Easy, 1)
	e.Tick(t0.Add(5 * time.Second))
	before := *e

	for _, d := range []maze.Direction{maze.Up, maze.Left} {
		assert.False(t, e.TryMove(d, t0.Add(6*time.Second)))
	}
	e.TryMove(maze.Right, t0.Add(7*time.Second))
	assert.False(t, e.TryMove(maze.Down, t0.Add(8*time.Second)), "(2,2) is a wall")

	assert.Equal(t, maze.Point{X: 2, Y: 1}, e.Player())
	assert.Equal(t, before.Exit(), e.Exit())
	assert.Equal(t, before.Remaining(), e.Remaining())
	assert.Equal(t, t0.Add(7*time.Second), e.LastMove())
}

func TestEngine_IsComplete(t *testing.T) {
	e := loaded(t, maze.Easy, 0)
	now := t0

	for i := 0; i < 5; i++ {
		require.True(t, e.TryMove(maze.Right, now))
	}
	for i := 0; i < 4; i++ {
		require.True(t, e.TryMove(maze.Down, now))
	}
	assert.Equal(t, e.Exit(), e.Player())
	assert.True(t, e.IsComplete())

	assert.False(t, e.TryMove(maze.Right, now), "(7,5) is the border wall")
}
