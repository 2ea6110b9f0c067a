package bot

import (
	"context"

	"github.com/mcoot/othello-arena/internal/dependencies/random"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
	"github.com/mcoot/othello-arena/internal/services/game"
)

// Strategy is a move-selection policy usable as a game agent
type Strategy interface {
	game.Agent
	// Name returns the registry name of the strategy
	Name() string
}

// GreedyStrategy plays the legal square that flips the most discs,
// preferring the earliest square in row-major order on ties
type GreedyStrategy struct {
	rules board.Rules
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(rules board.Rules) *GreedyStrategy {
	return &GreedyStrategy{rules: rules}
}

// Name returns "greedy"
func (s *GreedyStrategy) Name() string {
	return model.AgentStrategyGreedy
}

// ChooseMove returns the highest-flip legal square, or a pass if none
func (s *GreedyStrategy) ChooseMove(_ context.Context, b *model.Board, side model.Side, _ model.Clock) model.Move {
	best := model.Pass
	bestFlips := 0
	for _, sq := range s.rules.LegalSquares(b, side) {
		if n := len(s.rules.Flips(b, side, sq)); n > bestFlips {
			best = model.MoveAt(sq)
			bestFlips = n
		}
	}
	return best
}

// RandomStrategy picks uniformly among the legal squares
type RandomStrategy struct {
	rules  board.Rules
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rules board.Rules, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{rules: rules, random: rnd}
}

// Name returns "random"
func (s *RandomStrategy) Name() string {
	return model.AgentStrategyRandom
}

// ChooseMove returns a random legal square, or a pass if none
func (s *RandomStrategy) ChooseMove(_ context.Context, b *model.Board, side model.Side, _ model.Clock) model.Move {
	legal := s.rules.LegalSquares(b, side)
	if len(legal) == 0 {
		return model.Pass
	}
	return model.MoveAt(legal[s.random.Intn(len(legal))])
}

var (
	_ Strategy = (*GreedyStrategy)(nil)
	_ Strategy = (*RandomStrategy)(nil)
)
