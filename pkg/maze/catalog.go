package maze

import (
	"fmt"
	"time"
)

// Difficulty selects the maze sequence and the per-level time budget.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard

	difficultyCount = 3
)

// Difficulties lists every difficulty in menu order.
var Difficulties = [difficultyCount]Difficulty{Easy, Normal, Hard}

var timeBudgets = [difficultyCount]time.Duration{
	Easy:   60 * time.Second,
	Normal: 45 * time.Second,
	Hard:   30 * time.Second,
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Normal:
		return "NORMAL"
	case Hard:
		return "HARD"
	}
	return "UNKNOWN"
}

func (d Difficulty) Valid() bool {
	return d >= 0 && d < difficultyCount
}

// TimeBudget is the countdown each level of this difficulty starts with.
func (d Difficulty) TimeBudget() time.Duration {
	if !d.Valid() {
		return 0
	}
	return timeBudgets[d]
}

// Next returns the following difficulty, wrapping after Hard.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % difficultyCount
}

// Get returns the built-in maze for difficulty d at level index level (0-9).
func Get(d Difficulty, level int) (Maze, error) {
	if !d.Valid() {
		return Maze{}, fmt.Errorf("difficulty %d: %w", int(d), ErrOutOfRange)
	}
	if level < 0 || level >= LevelsPerDifficulty {
		return Maze{}, fmt.Errorf("level %d: %w", level, ErrOutOfRange)
	}
	return catalog[d][level], nil
}

// ValidateCatalog checks every built-in maze.
func ValidateCatalog() error {
	for _, d := range Difficulties {
		for level := 0; level < LevelsPerDifficulty; level++ {
			m, err := Get(d, level)
			if err != nil {
				return err
			}
			if m.Width() != Width || m.Height() != Height {
				return fmt.Errorf("%s level %d is %dx%d: %w", d, level, m.Width(), m.Height(), ErrBadShape)
			}
			if err := Validate(m); err != nil {
				return fmt.Errorf("%s level %d: %w", d, level, err)
			}
		}
	}
	return nil
}
