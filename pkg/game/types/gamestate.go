package types

import "github.com/cbodonnell/mazerun/pkg/maze"

// State is the screen the game is on.
type State int

const (
	StateSplash State = iota
	StateDifficultySelect
	StateGameStart
	StateGamePlaying
	StateGameOver
	StateResult
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "SPLASH"
	case StateDifficultySelect:
		return "DIFFICULTY_SELECT"
	case StateGameStart:
		return "GAME_START"
	case StateGamePlaying:
		return "GAME_PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	case StateResult:
		return "RESULT"
	}
	return "UNKNOWN"
}

// Result screen options selected with the encoder.
const (
	OptionRestart  = 0
	OptionMainMenu = 1
	resultOptions  = 2
)

// Progress is the game-wide state that outlives a single level.
type Progress struct {
	// State is the current screen.
	State State
	// Difficulty is the difficulty highlighted or being played.
	Difficulty maze.Difficulty
	// Cursor is the highlighted option on the game over and victory screens.
	Cursor int
	// Level is the index of the maze being played, 0-9.
	Level int
	// Score is the running total of the current game.
	Score int
	// Victory is set once all levels of a difficulty are cleared.
	Victory bool
}

// NextCursor moves the result screen cursor to the other option.
func (p *Progress) NextCursor() {
	p.Cursor = (p.Cursor + 1) % resultOptions
}

// ResetSelection puts both the difficulty and the result cursor back on the
// first entry.
func (p *Progress) ResetSelection() {
	p.Difficulty = maze.Easy
	p.Cursor = 0
}

// Reset puts everything but the current state back to its power-on value.
func (p *Progress) Reset() {
	*p = Progress{State: p.State}
}
