package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/othello-arena/internal/dependencies/mocks"
	"github.com/mcoot/othello-arena/internal/dependencies/random"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
	"github.com/mcoot/othello-arena/internal/services/bot"
	"github.com/mcoot/othello-arena/internal/services/game"
	"github.com/mcoot/othello-arena/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	rules *board.Service
	ctx   context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.rules = board.New(testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) playMatch(seed uint64, black, white string) *model.Game {
	service := bot.NewService(s.rules, random.NewSeeded(seed), testutil.NopLogger())

	blackAgent, err := service.Agent(black)
	s.Require().NoError(err)
	whiteAgent, err := service.Agent(white)
	s.Require().NoError(err)

	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	g := model.NewGame("match", model.DefaultSettings(), clk.Now())
	c := game.NewController(g, [2]game.Agent{blackAgent, whiteAgent}, s.rules, clk, testutil.NopLogger())
	s.Require().NoError(c.Play(s.ctx))
	return g
}

func (s *ServiceSuite) TestNames() {
	service := bot.NewService(s.rules, mocks.NewMockRandom(), testutil.NopLogger())
	s.Equal([]string{"greedy", "random"}, service.Names())
	s.Equal(model.ValidAgentStrategies(), service.Names())
}

func (s *ServiceSuite) TestAgentUnknownStrategy() {
	service := bot.NewService(s.rules, mocks.NewMockRandom(), testutil.NopLogger())

	_, err := service.Agent("minimax")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ServiceSuite) TestAgentDelegatesToStrategy() {
	service := bot.NewService(s.rules, mocks.NewMockRandom(), testutil.NopLogger())
	agent, err := service.Agent(model.AgentStrategyGreedy)
	s.Require().NoError(err)

	// All four opening moves flip one disc, so greedy takes the first
	move := agent.ChooseMove(s.ctx, model.NewBoard(8), model.Black, model.Clock{})
	s.Equal(model.MustParseMove("D3"), move)
}

func (s *ServiceSuite) TestAgentLogsDecision() {
	logger, buf := testutil.BufferLogger()
	service := bot.NewService(s.rules, mocks.NewMockRandom(), logger)
	agent, err := service.Agent(model.AgentStrategyRandom)
	s.Require().NoError(err)

	agent.ChooseMove(s.ctx, model.NewBoard(8), model.Black, model.Clock{})
	s.Contains(buf.String(), `"strategy":"random"`)
	s.Contains(buf.String(), `"move":"D3"`)
}

func (s *ServiceSuite) TestBotsPlayCompleteGame() {
	g := s.playMatch(42, model.AgentStrategyGreedy, model.AgentStrategyRandom)

	s.Require().NotNil(g.Outcome)
	s.Contains([]model.Reason{model.ReasonBoardFull, model.ReasonTwoPasses}, g.Outcome.Reason)
	s.Equal(model.IllegalBudget{3, 3}, g.Illegal)

	// Replaying the record reproduces the final board
	replay := s.rules.NewBoard(8)
	for _, e := range g.Record {
		s.Require().NoError(s.rules.Apply(replay, e.Side, e.Move))
	}
	s.Equal(g.Board, replay)

	black, white := s.rules.Score(g.Board)
	leader, ok := s.rules.Leader(g.Board)
	s.Equal(!ok, g.Outcome.Draw)
	if ok {
		s.Equal(leader, g.Outcome.Winner)
		s.NotEqual(black, white)
	}
}

func (s *ServiceSuite) TestSeededMatchesAreReproducible() {
	first := s.playMatch(7, model.AgentStrategyRandom, model.AgentStrategyRandom)
	second := s.playMatch(7, model.AgentStrategyRandom, model.AgentStrategyRandom)

	s.Equal(first.Moves(), second.Moves())
	s.Equal(first.Outcome, second.Outcome)
}
