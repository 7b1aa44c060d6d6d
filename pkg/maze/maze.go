package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Width is the number of columns in a built-in maze.
	Width = 8
	// Height is the number of rows in a built-in maze.
	Height = 7
	// LevelsPerDifficulty is the number of mazes played per difficulty.
	LevelsPerDifficulty = 10

	// Wall marks an impassable cell. Every other character is floor.
	Wall byte = '#'
	// Start marks the cell the player spawns on.
	Start byte = 'S'
	// Exit marks the cell the player must reach.
	Exit byte = 'E'
)

var (
	ErrOutOfRange      = errors.New("maze index out of range")
	ErrNotFound        = errors.New("marker not found")
	ErrDuplicateMarker = errors.New("marker appears more than once")
	ErrBadShape        = errors.New("maze rows are empty or ragged")
)

// Point is a cell position. X grows to the right, Y grows downwards.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Maze is an immutable rectangular grid of characters.
type Maze struct {
	rows []string
}

// New builds a maze from its rows. All rows must be non-empty and of equal length.
// Markers are not checked here; see Validate.
func New(rows ...string) (Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Maze{}, ErrBadShape
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return Maze{}, fmt.Errorf("row %d has width %d, want %d: %w", i, len(row), len(rows[0]), ErrBadShape)
		}
	}
	cp := make([]string, len(rows))
	copy(cp, rows)
	return Maze{rows: cp}, nil
}

func mustNew(rows ...string) Maze {
	m, err := New(rows...)
	if err != nil {
		panic(fmt.Sprintf("invalid maze literal: %v", err))
	}
	return m
}

func (m Maze) Width() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

func (m Maze) Height() int {
	return len(m.rows)
}

// InBounds reports whether p lies inside the grid.
func (m Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Height()
}

// Cell returns the character at p. p must be in bounds.
func (m Maze) Cell(p Point) byte {
	return m.rows[p.Y][p.X]
}

// IsWall reports whether p is in bounds and holds a wall.
func (m Maze) IsWall(p Point) bool {
	return m.InBounds(p) && m.Cell(p) == Wall
}

// Rows returns a copy of the maze rows.
func (m Maze) Rows() []string {
	cp := make([]string, len(m.rows))
	copy(cp, m.rows)
	return cp
}

func (m Maze) String() string {
	return strings.Join(m.rows, "\n")
}

// FindMarker returns the first cell holding marker in reading order
// (rows top to bottom, columns left to right).
func FindMarker(m Maze, marker byte) (Point, error) {
	for y, row := range m.rows {
		if x := strings.IndexByte(row, marker); x >= 0 {
			return Point{X: x, Y: y}, nil
		}
	}
	return Point{}, fmt.Errorf("%q: %w", marker, ErrNotFound)
}

// Validate checks that m has exactly one start and one exit.
func Validate(m Maze) error {
	for _, marker := range []byte{Start, Exit} {
		n := 0
		for _, row := range m.rows {
			n += strings.Count(row, string(marker))
		}
		switch {
		case n == 0:
			return fmt.Errorf("%q: %w", marker, ErrNotFound)
		case n > 1:
			return fmt.Errorf("%q found %d times: %w", marker, n, ErrDuplicateMarker)
		}
	}
	return nil
}
