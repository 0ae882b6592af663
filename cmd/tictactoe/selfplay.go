package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

type selfplayResult struct {
	xWins, oWins, draws int64
}

// playGame 从空棋盘开始两个引擎对下，返回终局
func playGame(ctx context.Context, e *engine.Engine, xLevel, oLevel engine.Level) (tictactoe.Board, error) {
	var b tictactoe.Board
	for !b.Outcome().Terminal() {
		if err := ctx.Err(); err != nil {
			return b, err
		}
		p := b.NextPlayer()
		lvl := xLevel
		if p == tictactoe.PlayerO {
			lvl = oLevel
		}
		m, err := e.BestMove(b, p, engine.Options{Level: lvl})
		if err != nil {
			return b, err
		}
		next, ok := b.Apply(m, p)
		if !ok {
			return b, fmt.Errorf("%w: engine played %d on %s", tictactoe.ErrIllegalMove, m, b)
		}
		b = next
	}
	return b, nil
}

func runSelfplay(ctx context.Context, e *engine.Engine, games, workers int, xLevel, oLevel engine.Level) (selfplayResult, error) {
	var res selfplayResult
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < games; i++ {
		g.Go(func() error {
			final, err := playGame(ctx, e, xLevel, oLevel)
			if err != nil {
				return err
			}
			switch final.Outcome() {
			case tictactoe.XWins:
				atomic.AddInt64(&res.xWins, 1)
			case tictactoe.OWins:
				atomic.AddInt64(&res.oWins, 1)
			default:
				atomic.AddInt64(&res.draws, 1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

func newSelfplayCmd(a *app) *cobra.Command {
	var (
		games   int
		workers int
		xLevel  string
		oLevel  string
	)
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play the engine against itself and report results",
		RunE: func(cmd *cobra.Command, args []string) error {
			xl, err := engine.ParseLevel(xLevel)
			if err != nil {
				return err
			}
			ol, err := engine.ParseLevel(oLevel)
			if err != nil {
				return err
			}
			res, err := runSelfplay(cmd.Context(), a.newEngine(), games, workers, xl, ol)
			if err != nil {
				return err
			}
			a.logger.Info("selfplay finished", "games", games, "x", xl, "o", ol)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "X (%s) wins: %d\n", xl, res.xWins)
			fmt.Fprintf(out, "O (%s) wins: %d\n", ol, res.oWins)
			fmt.Fprintf(out, "Draws: %d\n", res.draws)
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 10, "number of games to play")
	cmd.Flags().IntVar(&workers, "workers", 4, "games played in parallel")
	cmd.Flags().StringVar(&xLevel, "x-level", "master", "level for X")
	cmd.Flags().StringVar(&oLevel, "o-level", "master", "level for O")
	return cmd
}
