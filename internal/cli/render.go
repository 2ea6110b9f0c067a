package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
)

const legalGlyph = '*'

// RenderBoard draws the board one row per line, labelled 1..N, with a column
// letter footer. Squares in legal are marked with '*'.
func RenderBoard(b *model.Board, legal []model.Square) string {
	size := b.Size()
	width := len(fmt.Sprint(size))

	var sb strings.Builder
	for row := range size {
		fmt.Fprintf(&sb, "%*d ", width, row+1)
		for col := range size {
			sq := model.Square{Row: row, Col: col}
			sb.WriteByte(cellGlyph(b, sq, slices.Contains(legal, sq)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", width+1))
	for col := range size {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('A' + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func cellGlyph(b *model.Board, sq model.Square, legal bool) byte {
	switch b.Cell(sq) {
	case model.CellBlack:
		return model.Black.Glyph()
	case model.CellWhite:
		return model.White.Glyph()
	}
	if legal {
		return legalGlyph
	}
	return '.'
}

// RenderTranscript replays the game's record from the opening position,
// drawing the board after every ply, then the move list and the result
func RenderTranscript(rules board.ServiceInterface, g *model.Game) (string, error) {
	b := rules.NewBoard(g.Settings.Size)

	var sb strings.Builder
	sb.WriteString(RenderBoard(b, rules.LegalSquares(b, b.Turn)))

	for i, entry := range g.Record {
		if err := rules.Apply(b, entry.Side, entry.Move); err != nil {
			return "", fmt.Errorf("replay ply %d: %w", i+1, err)
		}
		fmt.Fprintf(&sb, "\n%d. %s %s (%d ms)\n", i+1, entry.Side, entry.Move, entry.Elapsed.Milliseconds())
		sb.WriteString(RenderBoard(b, rules.LegalSquares(b, b.Turn)))
	}

	tokens := make([]string, len(g.Record))
	for i, m := range g.Moves() {
		tokens[i] = m.String()
	}
	fmt.Fprintf(&sb, "\nMoves: %s\n", strings.Join(tokens, " "))

	if g.Outcome != nil {
		black, white := rules.Score(g.Board)
		fmt.Fprintf(&sb, "Game Over! Reason: %s\n", strings.ToUpper(string(g.Outcome.Reason)))
		fmt.Fprintf(&sb, "Winner: %s (%d-%d)\n", g.Outcome.WinnerName(), black, white)
	}
	return sb.String(), nil
}
