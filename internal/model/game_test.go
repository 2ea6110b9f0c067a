package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{"defaults", DefaultSettings(), false},
		{"smallest board", Settings{Size: 1, TimeLimit: time.Millisecond, IllegalLimit: 1}, false},
		{"largest board", Settings{Size: 26, TimeLimit: time.Second, IllegalLimit: 1}, false},
		{"zero size", Settings{Size: 0, TimeLimit: time.Second, IllegalLimit: 1}, true},
		{"too large", Settings{Size: 27, TimeLimit: time.Second, IllegalLimit: 1}, true},
		{"zero time limit", Settings{Size: 8, TimeLimit: 0, IllegalLimit: 1}, true},
		{"zero illegal limit", Settings{Size: 8, TimeLimit: time.Second, IllegalLimit: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGame(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	settings := Settings{Size: 6, TimeLimit: 250 * time.Millisecond, IllegalLimit: 2}

	g := NewGame("game-1", settings, now)

	assert.Equal(t, GameStateInProgress, g.State)
	assert.False(t, g.IsComplete())
	assert.Nil(t, g.Outcome)
	assert.Equal(t, 6, g.Board.Size())
	assert.Equal(t, 250*time.Millisecond, g.Clock.Remaining(Black))
	assert.Equal(t, 250*time.Millisecond, g.Clock.Remaining(White))
	assert.Equal(t, 2, g.Illegal.Remaining(White))
	assert.Equal(t, now, g.CreatedAt)
	assert.Empty(t, g.Moves())
}

func TestLastTwoPassed(t *testing.T) {
	g := NewGame("game-1", DefaultSettings(), time.Time{})
	assert.False(t, g.LastTwoPassed())

	g.Record = append(g.Record, RecordEntry{Side: Black, Move: Pass})
	assert.False(t, g.LastTwoPassed())

	g.Record = append(g.Record, RecordEntry{Side: White, Move: MustParseMove("A1")})
	assert.False(t, g.LastTwoPassed())

	g.Record = append(g.Record,
		RecordEntry{Side: Black, Move: Pass},
		RecordEntry{Side: White, Move: Pass},
	)
	assert.True(t, g.LastTwoPassed())
	assert.Equal(t, []Move{Pass, MustParseMove("A1"), Pass, Pass}, g.Moves())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "WHITE", Outcome{Winner: White, Reason: ReasonTwoPasses}.WinnerName())
	assert.Equal(t, "DRAW", Outcome{Draw: true, Reason: ReasonBoardFull}.WinnerName())

	assert.True(t, ReasonTimeLimit.IsForfeit())
	assert.True(t, ReasonIllegalLimit.IsForfeit())
	assert.False(t, ReasonBoardFull.IsForfeit())
	assert.False(t, ReasonTwoPasses.IsForfeit())
}
