package scene

import (
	"testing"
	"time"

	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(s Scene) []string {
	out := make([]string, 0, len(s.Glyphs))
	for _, g := range s.Glyphs {
		out = append(out, g.Text)
	}
	return out
}

func TestDifficultySelect(t *testing.T) {
	s := DifficultySelect(maze.Normal)
	assert.Equal(t, []string{"SELECT MODE", "  EASY", "> NORMAL", "  HARD"}, texts(s))
}

func TestGameStart(t *testing.T) {
	assert.Equal(t, []string{"MODE: HARD", "GAME START!"}, texts(GameStart(maze.Hard)))
}

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		victory  bool
		selected int
		want     []string
	}{
		{name: "game over", selected: 0, want: []string{"> RESTART", "GAME OVER", "SCORE: 20"}},
		{name: "game over second option", selected: 1, want: []string{"  RESTART", "GAME OVER", "SCORE: 20"}},
		{name: "victory", victory: true, selected: 1, want: []string{"  RESTART", "> MAIN MENU", "VICTORY!", "SCORE: 20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(Result(tt.victory, 20, tt.selected)))
		})
	}
}

func TestBuilder_Play(t *testing.T) {
	m, err := maze.Get(maze.Easy, 0)
	require.NoError(t, err)

	b := NewBuilder()
	s := b.Play(PlayView{
		Difficulty: maze.Easy,
		Level:      0,
		Remaining:  59*time.Second + 900*time.Millisecond,
		Score:      30,
		Maze:       m,
		Player:     maze.Point{X: 1, Y: 1},
	})

	got := texts(s)
	assert.Equal(t, []string{"L:1/10", "T:59", "S:30"}, got[:3])
	assert.Equal(t, []string{"P", "[", "]"}, got[len(got)-3:])

	player := s.Glyphs[len(s.Glyphs)-3]
	assert.Equal(t, MazeOriginX+MazeCell, player.X)
	assert.Equal(t, MazeOriginY+MazeCell, player.Y)

	walls, exits := 0, 0
	for _, g := range s.Glyphs[3 : len(s.Glyphs)-3] {
		switch g.Text {
		case "#":
			walls++
		case "E":
			exits++
			assert.Equal(t, MazeOriginX+6*MazeCell, g.X)
			assert.Equal(t, MazeOriginY+5*MazeCell, g.Y)
		}
	}
	assert.Equal(t, 2*8+2*5, walls)
	assert.Equal(t, 1, exits)
}

func TestBuilder_Play_cachesBackground(t *testing.T) {
	m, err := maze.Get(maze.Hard, 3)
	require.NoError(t, err)

	b := NewBuilder()
	v := PlayView{Difficulty: maze.Hard, Level: 3, Maze: m}
	first := b.Play(v)
	require.NotNil(t, b.backgrounds[maze.Hard][3])

	v.Player = maze.Point{X: 2, Y: 1}
	second := b.Play(v)
	assert.Equal(t, len(first.Glyphs), len(second.Glyphs))
	assert.Nil(t, b.backgrounds[maze.Hard][2])
}
