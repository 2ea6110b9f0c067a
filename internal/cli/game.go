package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello-arena/internal/model"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one match between two agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match := cfg.Match

			ctrl, err := app.NewMatch(match.Settings(), match.Black, match.White)
			if err != nil {
				return err
			}
			if err := ctrl.Play(cmd.Context()); err != nil {
				return err
			}

			result, err := newMatchResult(ctrl.Game(), match.Black, match.White)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	defaults := model.DefaultSettings()
	cmd.Flags().IntVar(&opts.Size, "size", defaults.Size, "Board edge length (env: OTHELLO_SIZE)")
	cmd.Flags().DurationVar(&opts.TimeLimit, "time-limit", defaults.TimeLimit, "Per-side time budget for the game (env: OTHELLO_TIME_LIMIT)")
	cmd.Flags().IntVar(&opts.IllegalLimit, "illegal-limit", defaults.IllegalLimit, "Illegal moves allowed per side (env: OTHELLO_ILLEGAL_LIMIT)")
	cmd.Flags().StringVar(&opts.Black, "black", model.AgentStrategyGreedy, "Strategy for Black (env: OTHELLO_BLACK)")
	cmd.Flags().StringVar(&opts.White, "white", model.AgentStrategyRandom, "Strategy for White (env: OTHELLO_WHITE)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for random agents, 0 for nondeterministic (env: OTHELLO_SEED)")

	return cmd
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Apply a move list from the opening and show the resulting position",
		Example: `  othello replay --size 3 C2 A3 PASS C1
  othello replay D3 C5 F6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := app.BoardService
			b := rules.NewBoard(cfg.Match.Size)

			moves := make([]model.Move, 0, len(args))
			for i, token := range args {
				move, err := model.ParseMove(token)
				if err != nil {
					return fmt.Errorf("ply %d: %w", i+1, err)
				}
				if err := rules.Apply(b, b.Turn, move); err != nil {
					return fmt.Errorf("ply %d: %w", i+1, err)
				}
				moves = append(moves, move)
			}

			legal := rules.LegalSquares(b, b.Turn)
			legalTokens := make([]string, len(legal))
			for i, sq := range legal {
				legalTokens[i] = sq.String()
			}
			black, white := rules.Score(b)

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(ReplayResult{
				Size:   b.Size(),
				Moves:  moves,
				ToMove: b.Turn.String(),
				Legal:  legalTokens,
				Score:  Score{Black: black, White: white},
				board:  RenderBoard(b, legal),
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", model.DefaultBoardSize, "Board edge length (env: OTHELLO_SIZE)")

	return cmd
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available agent strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []StrategyInfo
			for _, name := range app.BotService.Names() {
				result = append(result, StrategyInfo{
					Name:        name,
					DisplayName: model.AgentStrategyDisplayName(name),
				})
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// newMatchResult summarises a finished game
func newMatchResult(g *model.Game, black, white string) (MatchResult, error) {
	rules := app.BoardService

	transcript, err := RenderTranscript(rules, g)
	if err != nil {
		return MatchResult{}, err
	}

	elapsed := make([]int64, len(g.Record))
	for i, entry := range g.Record {
		elapsed[i] = entry.Elapsed.Milliseconds()
	}
	blackDiscs, whiteDiscs := rules.Score(g.Board)

	result := MatchResult{
		ID:           string(g.ID),
		Size:         g.Settings.Size,
		TimeLimitMS:  g.Settings.TimeLimit.Milliseconds(),
		IllegalLimit: g.Settings.IllegalLimit,
		Black:        black,
		White:        white,
		Moves:        g.Moves(),
		ElapsedMS:    elapsed,
		Score:        Score{Black: blackDiscs, White: whiteDiscs},
		ClockRemainingMS: [2]int64{
			g.Clock.Remaining(model.Black).Milliseconds(),
			g.Clock.Remaining(model.White).Milliseconds(),
		},
		IllegalRemaining: [2]int{
			g.Illegal.Remaining(model.Black),
			g.Illegal.Remaining(model.White),
		},
		transcript: transcript,
	}
	if g.Outcome != nil {
		result.Winner = g.Outcome.WinnerName()
		result.Reason = string(g.Outcome.Reason)
	}
	return result, nil
}
