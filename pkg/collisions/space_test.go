package collisions

import (
	"testing"

	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace_BlockedMatchesMaze(t *testing.T) {
	for _, d := range maze.Difficulties {
		for level := 0; level < maze.LevelsPerDifficulty; level++ {
			m, err := maze.Get(d, level)
			require.NoError(t, err)

			s := NewMazeSpace(m, maze.Point{X: 1, Y: 1})
			for y := 1; y < m.Height()-1; y++ {
				for x := 1; x < m.Width()-1; x++ {
					p := maze.Point{X: x, Y: y}
					if m.IsWall(p) {
						continue
					}
					s.MoveTo(p)
					for _, dir := range maze.Directions {
						want := m.IsWall(p.Add(dir.Delta()))
						assert.Equal(t, want, s.Blocked(dir), "%s level %d at %s moving %s", d, level, p, dir)
					}
				}
			}
		}
	}
}

func TestSpace_MoveTo(t *testing.T) {
	m, err := maze.Get(maze.Easy, 1)
	require.NoError(t, err)

	s := NewMazeSpace(m, maze.Point{X: 1, Y: 1})
	assert.Equal(t, maze.Point{X: 1, Y: 1}, s.Cell())
	assert.True(t, s.Blocked(maze.Up))
	assert.False(t, s.Blocked(maze.Right))

	s.MoveTo(maze.Point{X: 2, Y: 1})
	assert.Equal(t, maze.Point{X: 2, Y: 1}, s.Cell())
	assert.True(t, s.Blocked(maze.Down), "row 2 is \"# ##   #\"")
}
