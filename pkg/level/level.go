// Package level holds the state of the maze currently being played.
package level

import (
	"fmt"
	"time"

	"github.com/cbodonnell/mazerun/pkg/collisions"
	"github.com/cbodonnell/mazerun/pkg/maze"
)

// Engine owns one maze instance: where the player is, where the exit is and
// how much time is left.
type Engine struct {
	difficulty maze.Difficulty
	index      int
	maze       maze.Maze
	space      *collisions.Space

	player maze.Point
	exit   maze.Point

	budget    time.Duration
	remaining time.Duration
	startedAt time.Time

	// lastMove is when the most recent move was accepted.
	lastMove time.Time
}

func New() *Engine {
	return &Engine{}
}

// Load replaces the current level with maze index of difficulty d and starts
// its countdown at now.
func (e *Engine) Load(d maze.Difficulty, index int, now time.Time) error {
	m, err := maze.Get(d, index)
	if err != nil {
		return fmt.Errorf("failed to get maze: %w", err)
	}
	start, err := maze.FindMarker(m, maze.Start)
	if err != nil {
		return fmt.Errorf("failed to find start: %w", err)
	}
	exit, err := maze.FindMarker(m, maze.Exit)
	if err != nil {
		return fmt.Errorf("failed to find exit: %w", err)
	}

	*e = Engine{
		difficulty: d,
		index:      index,
		maze:       m,
		space:      collisions.NewMazeSpace(m, start),
		player:     start,
		exit:       exit,
		budget:     d.TimeBudget(),
		remaining:  d.TimeBudget(),
		startedAt:  now,
	}
	return nil
}

// Tick recomputes the remaining time. It never goes below zero.
func (e *Engine) Tick(now time.Time) time.Duration {
	remaining := e.budget - now.Sub(e.startedAt)
	if remaining < 0 {
		remaining = 0
	}
	e.remaining = remaining
	return remaining
}

// TryMove moves the player one cell in direction d if the target is inside
// the grid and not a wall. A rejected move leaves the engine untouched.
func (e *Engine) TryMove(d maze.Direction, now time.Time) bool {
	if e.space == nil {
		return false
	}
	target := e.player.Add(d.Delta())
	if !e.maze.InBounds(target) || e.space.Blocked(d) {
		return false
	}
	e.player = target
	e.space.MoveTo(target)
	e.lastMove = now
	return true
}

// IsComplete reports whether the player stands on the exit.
func (e *Engine) IsComplete() bool {
	return e.space != nil && e.player == e.exit
}

func (e *Engine) Loaded() bool {
	return e.space != nil
}

func (e *Engine) Difficulty() maze.Difficulty {
	return e.difficulty
}

func (e *Engine) Index() int {
	return e.index
}

func (e *Engine) Maze() maze.Maze {
	return e.maze
}

func (e *Engine) Player() maze.Point {
	return e.player
}

func (e *Engine) Exit() maze.Point {
	return e.exit
}

func (e *Engine) Remaining() time.Duration {
	return e.remaining
}

// LastMove is when the last move was accepted, zero if none was.
func (e *Engine) LastMove() time.Time {
	return e.lastMove
}
