// Package scene describes what the display should show as a list of
// positioned text glyphs, one builder per screen.
package scene

import (
	"fmt"
	"time"

	"github.com/cbodonnell/mazerun/pkg/maze"
)

const (
	ScreenWidth  = 128
	ScreenHeight = 64

	// Play screen maze placement, in pixels.
	MazeOriginX = 65
	MazeOriginY = 5
	MazeCell    = 6
)

// Glyph is a text fragment anchored at a pixel position.
type Glyph struct {
	Text string
	X    int
	Y    int
}

type Scene struct {
	Name   string
	Glyphs []Glyph
}

func (s Scene) String() string {
	return fmt.Sprintf("%s(%d glyphs)", s.Name, len(s.Glyphs))
}

func Splash() Scene {
	return Scene{
		Name: "splash",
		Glyphs: []Glyph{
			{Text: "Maze Run", X: 35, Y: 15},
			{Text: "**********", X: 30, Y: 30},
			{Text: "START GAME", X: 30, Y: 45},
		},
	}
}

func DifficultySelect(selected maze.Difficulty) Scene {
	s := Scene{
		Name:   "difficulty",
		Glyphs: []Glyph{{Text: "SELECT MODE", X: 30, Y: 10}},
	}
	y := 30
	for _, d := range maze.Difficulties {
		s.Glyphs = append(s.Glyphs, Glyph{Text: cursor(d == selected) + d.String(), X: 35, Y: y})
		y += 15
	}
	return s
}

func GameStart(d maze.Difficulty) Scene {
	return Scene{
		Name: "start",
		Glyphs: []Glyph{
			{Text: "MODE: " + d.String(), X: 20, Y: 20},
			{Text: "GAME START!", X: 25, Y: 40},
		},
	}
}

// Result is the end screen. Victory offers RESTART and MAIN MENU, a game over
// only RESTART.
func Result(victory bool, score, selected int) Scene {
	s := Scene{Name: "gameover"}
	title := "GAME OVER"
	options := []string{"RESTART"}
	if victory {
		s.Name = "victory"
		title = "VICTORY!"
		options = append(options, "MAIN MENU")
	}
	y := 40
	for i, option := range options {
		s.Glyphs = append(s.Glyphs, Glyph{Text: cursor(i == selected) + option, X: 20, Y: y})
		y += 15
	}
	s.Glyphs = append(s.Glyphs,
		Glyph{Text: title, X: 35, Y: 10},
		Glyph{Text: fmt.Sprintf("SCORE: %d", score), X: 35, Y: 25},
	)
	return s
}

// PlayView is everything the play screen shows.
type PlayView struct {
	Difficulty maze.Difficulty
	Level      int
	Remaining  time.Duration
	Score      int
	Maze       maze.Maze
	Player     maze.Point
}

// Builder renders play screens, caching the static maze background of every
// (difficulty, level) pair it has drawn.
type Builder struct {
	backgrounds [len(maze.Difficulties)][maze.LevelsPerDifficulty][]Glyph
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Play(v PlayView) Scene {
	s := Scene{
		Name: "play",
		Glyphs: []Glyph{
			{Text: fmt.Sprintf("L:%d/%d", v.Level+1, maze.LevelsPerDifficulty), X: 5, Y: 10},
			{Text: fmt.Sprintf("T:%d", int(v.Remaining/time.Second)), X: 5, Y: 25},
			{Text: fmt.Sprintf("S:%d", v.Score), X: 5, Y: 40},
		},
	}
	s.Glyphs = append(s.Glyphs, b.background(v)...)

	px := MazeOriginX + v.Player.X*MazeCell
	py := MazeOriginY + v.Player.Y*MazeCell
	s.Glyphs = append(s.Glyphs,
		Glyph{Text: "P", X: px, Y: py},
		Glyph{Text: "[", X: px - 2, Y: py},
		Glyph{Text: "]", X: px + 3, Y: py},
	)
	return s
}

func (b *Builder) background(v PlayView) []Glyph {
	if !v.Difficulty.Valid() || v.Level < 0 || v.Level >= maze.LevelsPerDifficulty {
		return mazeBackground(v.Maze)
	}
	cached := &b.backgrounds[v.Difficulty][v.Level]
	if *cached == nil {
		*cached = mazeBackground(v.Maze)
	}
	return *cached
}

func mazeBackground(m maze.Maze) []Glyph {
	var glyphs []Glyph
	for y := 0; y < m.Height() && y < maze.Height; y++ {
		for x := 0; x < m.Width() && x < maze.Width; x++ {
			c := m.Cell(maze.Point{X: x, Y: y})
			if c != maze.Wall && c != maze.Exit {
				continue
			}
			glyphs = append(glyphs, Glyph{
				Text: string(c),
				X:    MazeOriginX + x*MazeCell,
				Y:    MazeOriginY + y*MazeCell,
			})
		}
	}
	return glyphs
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
