package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
	"github.com/mcoot/othello-arena/internal/testutil"
)

type RenderSuite struct {
	suite.Suite
	rules *board.Service
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func (s *RenderSuite) SetupTest() {
	s.rules = board.New(testutil.NopLogger())
}

// playThreeByThree plays C2, A3, PASS, C1, PASS, C3, PASS, PASS and records
// each ply as taking 2ms
func (s *RenderSuite) playThreeByThree() *model.Game {
	settings := model.Settings{Size: 3, TimeLimit: time.Second, IllegalLimit: 3}
	g := model.NewGame("game-1", settings, time.Unix(0, 0))

	for _, token := range []string{"C2", "A3", "PASS", "C1", "PASS", "C3", "PASS", "PASS"} {
		side := g.Board.Turn
		move := model.MustParseMove(token)
		s.Require().NoError(s.rules.Apply(g.Board, side, move))
		g.Record = append(g.Record, model.RecordEntry{Side: side, Move: move, Elapsed: 2 * time.Millisecond})
	}
	g.State = model.GameStateEnded
	g.Outcome = &model.Outcome{Winner: model.White, Reason: model.ReasonTwoPasses}
	return g
}

func (s *RenderSuite) TestRenderOpeningWithLegalMarkers() {
	b := s.rules.NewBoard(4)

	out := RenderBoard(b, s.rules.LegalSquares(b, model.Black))

	s.Equal("1 . * . . \n2 * w b . \n3 . b w * \n4 . . * . \n  A B C D\n", out)
}

func (s *RenderSuite) TestRenderWithoutMarkers() {
	b := s.rules.NewBoard(3)

	out := RenderBoard(b, nil)

	s.Equal("1 w b . \n2 b w . \n3 . . . \n  A B C\n", out)
}

func (s *RenderSuite) TestRenderPadsTwoDigitRows() {
	b := s.rules.NewBoard(10)

	lines := strings.Split(strings.TrimSuffix(RenderBoard(b, nil), "\n"), "\n")

	s.Len(lines, 11)
	s.True(strings.HasPrefix(lines[0], " 1 "))
	s.True(strings.HasPrefix(lines[9], "10 "))
	s.Equal("   A B C D E F G H I J", lines[10])
}

func (s *RenderSuite) TestTranscript() {
	g := s.playThreeByThree()

	out, err := RenderTranscript(s.rules, g)
	s.Require().NoError(err)

	s.Contains(out, "\n1. BLACK C2 (2 ms)\n")
	s.Contains(out, "\n3. BLACK PASS (2 ms)\n")
	s.Contains(out, "\n8. WHITE PASS (2 ms)\n")
	s.Contains(out, "Moves: C2 A3 PASS C1 PASS C3 PASS PASS\n")
	s.Contains(out, "Game Over! Reason: TWO_PASSES\n")
	s.True(strings.HasSuffix(out, "Winner: WHITE (0-8)\n"))

	// Final position: White everywhere but the empty B3
	s.Contains(out, "1 w w w \n2 w w w \n3 w . w \n")
}

func (s *RenderSuite) TestTranscriptDraw() {
	g := s.playThreeByThree()
	g.Outcome = &model.Outcome{Draw: true, Reason: model.ReasonBoardFull}

	out, err := RenderTranscript(s.rules, g)
	s.Require().NoError(err)

	s.Contains(out, "Game Over! Reason: BOARD_FULL\n")
	s.Contains(out, "Winner: DRAW (0-8)\n")
}

func (s *RenderSuite) TestTranscriptInProgressHasNoResult() {
	g := model.NewGame("game-2", model.DefaultSettings(), time.Unix(0, 0))

	out, err := RenderTranscript(s.rules, g)
	s.Require().NoError(err)

	s.Contains(out, "Moves: \n")
	s.NotContains(out, "Game Over!")
}

func (s *RenderSuite) TestTranscriptRejectsCorruptRecord() {
	g := model.NewGame("game-3", model.DefaultSettings(), time.Unix(0, 0))
	g.Record = []model.RecordEntry{{Side: model.Black, Move: model.MustParseMove("A1")}}

	_, err := RenderTranscript(s.rules, g)
	s.ErrorIs(err, model.ErrInvalidMove)
	s.ErrorContains(err, "replay ply 1")
}

// Output tests

func (s *RenderSuite) TestOutputJSONMatchResult() {
	var buf bytes.Buffer
	out := NewOutput("json", &buf)

	out.Print(MatchResult{
		ID:     "game-1",
		Size:   3,
		Moves:  []model.Move{model.MustParseMove("C2"), model.Pass},
		Winner: "WHITE",
		Reason: string(model.ReasonTwoPasses),
	})

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Equal("game-1", decoded["id"])
	s.Equal([]any{"C2", "PASS"}, decoded["moves"])
	s.Equal("two_passes", decoded["reason"])
	s.NotContains(decoded, "transcript")
}

func (s *RenderSuite) TestOutputTextStrategies() {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print([]StrategyInfo{
		{Name: "greedy", DisplayName: "Greedy"},
		{Name: "random", DisplayName: "Random"},
	})

	s.Equal("greedy   Greedy\nrandom   Random\n", buf.String())
}

func (s *RenderSuite) TestOutputTextReplayWithoutLegalMoves() {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(ReplayResult{ToMove: "BLACK", Score: Score{Black: 1, White: 6}, board: "board\n"})

	s.Equal("board\n\nScore: 1-6\nTo move: BLACK\nLegal: PASS\n", buf.String())
}
