package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/othello-arena/internal/dependencies/random"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
	"github.com/mcoot/othello-arena/internal/services/game"
)

// Service resolves strategy names to agents
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a bot Service with the built-in strategies registered
func NewService(rules board.Rules, rnd random.Random, logger *slog.Logger) *Service {
	s := &Service{
		strategies: make(map[string]Strategy),
		logger:     logger.With(slog.String("component", "bot-service")),
	}
	s.Register(NewGreedyStrategy(rules))
	s.Register(NewRandomStrategy(rules, rnd))
	return s
}

// Register adds or replaces a strategy under its own name
func (s *Service) Register(strategy Strategy) {
	s.strategies[strategy.Name()] = strategy
}

// Names returns the registered strategy names in sorted order
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Agent returns the named strategy as a game agent that logs its choices
func (s *Service) Agent(name string) (game.Agent, error) {
	strategy, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (valid: %v)", model.ErrUnknownStrategy, name, s.Names())
	}
	return &loggingAgent{strategy: strategy, logger: s.logger}, nil
}

// loggingAgent records each decision at debug level
type loggingAgent struct {
	strategy Strategy
	logger   *slog.Logger
}

func (a *loggingAgent) ChooseMove(ctx context.Context, b *model.Board, side model.Side, remaining model.Clock) model.Move {
	move := a.strategy.ChooseMove(ctx, b, side, remaining)
	a.logger.Debug("agent chose move",
		slog.String("strategy", a.strategy.Name()),
		slog.String("side", side.String()),
		slog.String("move", move.String()),
		slog.Duration("remaining", remaining.Remaining(side)),
	)
	return move
}
