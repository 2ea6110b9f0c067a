package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"time"

	"github.com/mcoot/othello-arena/internal/dependencies/clock"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
)

// Agent chooses moves for one side. The board it receives is a copy; the
// remaining clock is passed for budgeting. The context carries a deadline at
// the side's remaining budget, which agents may honour but the controller
// does not enforce.
type Agent interface {
	ChooseMove(ctx context.Context, board *model.Board, side model.Side, remaining model.Clock) model.Move
}

// AgentFunc adapts a plain function to Agent
type AgentFunc func(ctx context.Context, board *model.Board, side model.Side, remaining model.Clock) model.Move

// ChooseMove calls f
func (f AgentFunc) ChooseMove(ctx context.Context, board *model.Board, side model.Side, remaining model.Clock) model.Move {
	return f(ctx, board, side, remaining)
}

// Controller drives one game's turn loop
type Controller struct {
	game   *model.Game
	agents [2]Agent
	rules  board.ServiceInterface
	clock  clock.Clock
	logger *slog.Logger
}

// NewController creates a Controller for game. agents is indexed by side.
func NewController(
	game *model.Game,
	agents [2]Agent,
	rules board.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		game:   game,
		agents: agents,
		rules:  rules,
		clock:  clock,
		logger: logger.With(slog.String("game_id", string(game.ID))),
	}
}

// Game returns the game being controlled
func (c *Controller) Game() *model.Game {
	return c.game
}

// Done returns true once the game has an outcome
func (c *Controller) Done() bool {
	return c.game.IsComplete()
}

// Outcome returns the result, or nil while the game is in progress
func (c *Controller) Outcome() *model.Outcome {
	return c.game.Outcome
}

// Play advances the game until it ends
func (c *Controller) Play(ctx context.Context) error {
	c.logger.Info("game started",
		slog.Int("size", c.game.Settings.Size),
		slog.Duration("time_limit", c.game.Settings.TimeLimit),
		slog.Int("illegal_limit", c.game.Settings.IllegalLimit),
	)
	for !c.Done() {
		if err := c.Advance(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Advance plays a single ply
func (c *Controller) Advance(ctx context.Context) error {
	if c.Done() {
		return model.ErrGameComplete
	}

	g := c.game
	side := g.Board.Turn

	if g.Board.IsFull() {
		c.finishOnScore(model.ReasonBoardFull)
		return nil
	}

	move := model.Pass
	var elapsed time.Duration

	if legal := c.rules.LegalSquares(g.Board, side); len(legal) > 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			chosen, took := c.ask(ctx, side, g.Clock.Remaining(side)-elapsed)
			elapsed += took

			if elapsed >= g.Clock.Remaining(side) {
				c.logger.Info("time limit exceeded",
					slog.String("side", side.String()),
					slog.Duration("elapsed", elapsed),
					slog.Duration("remaining", g.Clock.Remaining(side)),
				)
				c.forfeit(side, model.ReasonTimeLimit)
				return nil
			}

			sq, placed := chosen.Square()
			if placed && slices.Contains(legal, sq) {
				move = chosen
				break
			}

			g.Illegal[side]--
			c.logger.Warn("illegal move",
				slog.String("side", side.String()),
				slog.String("move", chosen.String()),
				slog.Int("illegal_remaining", g.Illegal.Remaining(side)),
			)
			if g.Illegal.Remaining(side) <= 0 {
				c.forfeit(side, model.ReasonIllegalLimit)
				return nil
			}
		}
	}

	if err := c.rules.Apply(g.Board, side, move); err != nil {
		return fmt.Errorf("apply %s for %s: %w", move, side, err)
	}
	g.Record = append(g.Record, model.RecordEntry{Side: side, Move: move, Elapsed: elapsed})
	g.Clock[side] -= elapsed
	g.UpdatedAt = c.clock.Now()

	c.logger.Debug("ply completed",
		slog.Int("ply", len(g.Record)),
		slog.String("side", side.String()),
		slog.String("move", move.String()),
		slog.Duration("elapsed", elapsed),
	)

	if g.LastTwoPassed() {
		c.finishOnScore(model.ReasonTwoPasses)
	}
	return nil
}

// ask invokes side's agent on a copy of the board and returns its move with
// the wall time the call took. A panicking agent is treated as having passed.
func (c *Controller) ask(ctx context.Context, side model.Side, budget time.Duration) (move model.Move, took time.Duration) {
	callCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	snapshot := c.game.Board.Clone()
	start := c.clock.Now()
	defer func() {
		if err := recover(); err != nil {
			c.logger.Error("agent panic recovered",
				slog.String("side", side.String()),
				slog.Any("error", err),
				slog.String("stack", string(debug.Stack())),
			)
			move = model.Pass
		}
		took = clock.Since(c.clock, start)
	}()

	return c.agents[side].ChooseMove(callCtx, snapshot, side, c.game.Clock), 0
}

// forfeit ends the game in the opponent's favour
func (c *Controller) forfeit(loser model.Side, reason model.Reason) {
	c.finish(model.Outcome{Winner: loser.Opposite(), Reason: reason})
}

// finishOnScore ends the game with the disc leader as winner
func (c *Controller) finishOnScore(reason model.Reason) {
	leader, ok := c.rules.Leader(c.game.Board)
	c.finish(model.Outcome{Winner: leader, Draw: !ok, Reason: reason})
}

func (c *Controller) finish(outcome model.Outcome) {
	g := c.game
	g.Outcome = &outcome
	g.State = model.GameStateEnded
	g.UpdatedAt = c.clock.Now()

	black, white := c.rules.Score(g.Board)
	c.logger.Info("game ended",
		slog.String("reason", string(outcome.Reason)),
		slog.String("winner", outcome.WinnerName()),
		slog.Int("black", black),
		slog.Int("white", white),
		slog.Int("plies", len(g.Record)),
	)
}

// Interface for dependency injection
type ControllerInterface interface {
	Game() *model.Game
	Done() bool
	Outcome() *model.Outcome
	Advance(ctx context.Context) error
	Play(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)
