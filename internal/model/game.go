package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateEnded      GameState = "ended"
)

// Reason records why a game ended
type Reason string

const (
	ReasonBoardFull    Reason = "board_full"    // No empty cells remain
	ReasonTwoPasses    Reason = "two_passes"    // Both sides passed consecutively
	ReasonTimeLimit    Reason = "time_limit"    // Mover exhausted its clock
	ReasonIllegalLimit Reason = "illegal_limit" // Mover exhausted its illegal-move budget
)

// IsForfeit returns true if the reason awards the game regardless of score
func (r Reason) IsForfeit() bool {
	return r == ReasonTimeLimit || r == ReasonIllegalLimit
}

// Default settings
const (
	DefaultBoardSize    = 8
	DefaultTimeLimit    = 100 * time.Millisecond
	DefaultIllegalLimit = 3
)

// Settings fixes the board size and per-side budgets for a game
type Settings struct {
	Size         int           `json:"size"`
	TimeLimit    time.Duration `json:"time_limit"`
	IllegalLimit int           `json:"illegal_limit"`
}

// DefaultSettings returns the standard 8x8 settings
func DefaultSettings() Settings {
	return Settings{
		Size:         DefaultBoardSize,
		TimeLimit:    DefaultTimeLimit,
		IllegalLimit: DefaultIllegalLimit,
	}
}

// Validate checks that the settings describe a playable game
func (s Settings) Validate() error {
	if s.Size < 1 || s.Size > 26 {
		return fmt.Errorf("%w: board size %d out of range 1-26", ErrInvalidSettings, s.Size)
	}
	if s.TimeLimit <= 0 {
		return fmt.Errorf("%w: time limit must be positive", ErrInvalidSettings)
	}
	if s.IllegalLimit < 1 {
		return fmt.Errorf("%w: illegal limit must be at least 1", ErrInvalidSettings)
	}
	return nil
}

// Clock holds the remaining time budget for each side. It only ever decreases.
type Clock [2]time.Duration

// Remaining returns the side's remaining budget
func (c Clock) Remaining(side Side) time.Duration {
	return c[side]
}

// IllegalBudget holds the remaining illegal-move allowance for each side
type IllegalBudget [2]int

// Remaining returns the side's remaining allowance
func (b IllegalBudget) Remaining(side Side) int {
	return b[side]
}

// RecordEntry is one completed ply
type RecordEntry struct {
	Side    Side          `json:"side"`
	Move    Move          `json:"move"`
	Elapsed time.Duration `json:"elapsed"`
}

// Outcome is the terminal result of a game
type Outcome struct {
	Winner Side // Meaningless when Draw is set
	Draw   bool
	Reason Reason
}

// WinnerName returns the winning side's name or "DRAW"
func (o Outcome) WinnerName() string {
	if o.Draw {
		return "DRAW"
	}
	return o.Winner.String()
}

// Game is a single match between two agents
type Game struct {
	ID       GameID
	Settings Settings
	State    GameState

	Board   *Board
	Clock   Clock
	Illegal IllegalBudget
	Record  []RecordEntry
	Outcome *Outcome // nil while in progress

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame creates a game in its opening position with full budgets
func NewGame(id GameID, settings Settings, now time.Time) *Game {
	return &Game{
		ID:        id,
		Settings:  settings,
		State:     GameStateInProgress,
		Board:     NewBoard(settings.Size),
		Clock:     Clock{settings.TimeLimit, settings.TimeLimit},
		Illegal:   IllegalBudget{settings.IllegalLimit, settings.IllegalLimit},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsComplete returns true once an outcome has been set
func (g *Game) IsComplete() bool {
	return g.State == GameStateEnded
}

// Moves returns the recorded moves in order
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.Record))
	for i, e := range g.Record {
		moves[i] = e.Move
	}
	return moves
}

// LastTwoPassed returns true if the two most recent plies were both passes
func (g *Game) LastTwoPassed() bool {
	n := len(g.Record)
	return n > 1 && g.Record[n-1].Move.IsPass() && g.Record[n-2].Move.IsPass()
}
