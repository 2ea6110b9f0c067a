package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PassToken is the text form of a pass
const PassToken = "PASS"

// Move is either a disc placement on a square or a pass. The zero value is
// a pass. Moves are comparable with ==.
type Move struct {
	square Square
	placed bool
}

// Pass is the null move, legal only when the side to move has no placement
var Pass = Move{}

// MoveAt returns a placement move on the given square
func MoveAt(sq Square) Move {
	return Move{square: sq, placed: true}
}

// IsPass returns true if the move is a pass
func (m Move) IsPass() bool {
	return !m.placed
}

// Square returns the target square and false for a pass
func (m Move) Square() (Square, bool) {
	return m.square, m.placed
}

// String returns the move as a token: column letter then 1-based row, or PASS
func (m Move) String() string {
	if !m.placed {
		return PassToken
	}
	if m.square.Col < 0 || m.square.Col >= 26 || m.square.Row < 0 {
		return fmt.Sprintf("(%d,%d)", m.square.Row, m.square.Col)
	}
	return string(rune('A'+m.square.Col)) + strconv.Itoa(m.square.Row+1)
}

// ParseMove parses a move token such as "c4" or "pass", ignoring case and
// surrounding whitespace
func ParseMove(text string) (Move, error) {
	token := strings.ToUpper(strings.TrimSpace(text))
	if token == PassToken {
		return Pass, nil
	}
	if len(token) < 2 || token[0] < 'A' || token[0] > 'Z' {
		return Pass, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	for _, r := range token[1:] {
		if r < '0' || r > '9' {
			return Pass, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
		}
	}
	row, err := strconv.Atoi(token[1:])
	if err != nil || row < 1 {
		return Pass, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	return MoveAt(Square{Row: row - 1, Col: int(token[0] - 'A')}), nil
}

// MustParseMove is like ParseMove but panics on malformed input
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText encodes the move as its token
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a move token
func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
