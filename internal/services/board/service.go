package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/othello-arena/internal/model"
)

// directions are the eight compass steps, in the order flips are collected
var directions = [8]model.Square{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Service is the rules authority for legality, flips and move application
type Service struct {
	logger *slog.Logger
}

// New creates a new board Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// NewBoard creates a board in the opening position
func (s *Service) NewBoard(size int) *model.Board {
	return model.NewBoard(size)
}

// Flips returns the opponent discs that placing side on sq would turn over.
// It is empty if sq is occupied or off the board.
func (s *Service) Flips(board *model.Board, side model.Side, sq model.Square) []model.Square {
	if !board.IsEmpty(sq) {
		return nil
	}
	opponent := side.Opposite()

	var flips []model.Square
	for _, d := range directions {
		var run []model.Square
		cur := model.Square{Row: sq.Row + d.Row, Col: sq.Col + d.Col}
		for board.OccupiedBy(cur, opponent) {
			run = append(run, cur)
			cur = model.Square{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		}
		if len(run) > 0 && board.OccupiedBy(cur, side) {
			flips = append(flips, run...)
		}
	}
	return flips
}

// IsLegal returns true if side may place a disc on sq
func (s *Service) IsLegal(board *model.Board, side model.Side, sq model.Square) bool {
	return len(s.Flips(board, side, sq)) > 0
}

// LegalSquares returns every square side may play, in row-major order
func (s *Service) LegalSquares(board *model.Board, side model.Side) []model.Square {
	var legal []model.Square
	for _, sq := range board.Squares() {
		if s.IsLegal(board, side, sq) {
			legal = append(legal, sq)
		}
	}
	return legal
}

// Apply plays move for side, flipping discs and handing the turn over.
// An illegal move returns an error wrapping model.ErrInvalidMove and leaves
// the board unchanged.
func (s *Service) Apply(board *model.Board, side model.Side, move model.Move) error {
	if side != board.Turn {
		return fmt.Errorf("%w: %s played %s but %s is to move", model.ErrInvalidMove, side, move, board.Turn)
	}

	sq, placed := move.Square()
	if !placed {
		if len(s.LegalSquares(board, side)) > 0 {
			return fmt.Errorf("%w: %s cannot pass while a placement is available", model.ErrInvalidMove, side)
		}
		board.Turn = side.Opposite()
		return nil
	}

	flips := s.Flips(board, side, sq)
	if len(flips) == 0 {
		return fmt.Errorf("%w: %s flips nothing for %s", model.ErrInvalidMove, move, side)
	}
	for _, f := range flips {
		board.Place(f, side)
	}
	board.Place(sq, side)
	board.Turn = side.Opposite()

	s.logger.Debug("move applied",
		slog.String("side", side.String()),
		slog.String("move", move.String()),
		slog.Int("flipped", len(flips)),
	)
	return nil
}

// Score returns the disc count for each side
func (s *Service) Score(board *model.Board) (black, white int) {
	return board.Count(model.Black), board.Count(model.White)
}

// Leader returns the side with strictly more discs; false on a tie
func (s *Service) Leader(board *model.Board) (model.Side, bool) {
	black, white := s.Score(board)
	switch {
	case black > white:
		return model.Black, true
	case white > black:
		return model.White, true
	default:
		return model.Black, false
	}
}

// Rules is the read-only query surface used by agents
type Rules interface {
	LegalSquares(board *model.Board, side model.Side) []model.Square
	Flips(board *model.Board, side model.Side, sq model.Square) []model.Square
}

// Interface for dependency injection
type ServiceInterface interface {
	Rules
	NewBoard(size int) *model.Board
	IsLegal(board *model.Board, side model.Side, sq model.Square) bool
	Apply(board *model.Board, side model.Side, move model.Move) error
	Score(board *model.Board) (black, white int)
	Leader(board *model.Board) (model.Side, bool)
}

var _ ServiceInterface = (*Service)(nil)
